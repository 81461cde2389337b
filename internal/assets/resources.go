package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	BundleName = "hats.zip"
)

//go:embed hats.zip
var bundledHats []byte

// BundledHats is the hats package shipped with the application. It is
// extracted into the installation directory on first run.
var BundledHats = &fyne.StaticResource{
	StaticName:    BundleName,
	StaticContent: bundledHats,
}
