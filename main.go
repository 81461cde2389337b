package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/hatsmod/hats/internal/assets"
	"github.com/hatsmod/hats/internal/config"
	"github.com/hatsmod/hats/internal/resource"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.hatsmod.hats"
	AppName = "Hats"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	if err := settings.LoadEnv(); err != nil {
		log.Printf("ignoring environment overrides: %v", err)
	}

	handler := resource.NewHandler(resource.Options{
		Dir:                  settings.GetHatsDirectory(),
		Bundle:               assets.BundledHats,
		Logger:               resource.NewStdLogger(log.Default()),
		ParseContributorMeta: settings.GetParseContributorMeta(),
	})

	if err := handler.Init(); err != nil {
		fmt.Printf("hats resources unavailable: %v\n", err)
		os.Exit(1)
	}
	handler.LoadAll()

	// Each argument is a selection string, e.g. "tophat:feather:band"
	for _, details := range os.Args[1:] {
		info, ok := handler.GetAndSetAccessories(details)
		if !ok {
			fmt.Printf("%s: no such hat\n", details)
			continue
		}
		fmt.Printf("%s -> %s %v\n", details, info.Name, info.Accessories())
	}

	for _, info := range handler.Hats() {
		fmt.Printf("%s\t%s\n", info.Name, info.Path)
	}
}
