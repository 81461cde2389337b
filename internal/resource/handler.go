package resource

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/hatsmod/hats/internal/model"
)

// MarkerFile is created under the installation directory once the bundled
// package has been extracted. Only its presence matters.
const MarkerFile = "files.extracted"

// MinExistingFileSize is the size above which an existing file is treated as
// real content and never overwritten by extraction
const MinExistingFileSize = 3

// ContributorPrefix marks contributor hat files
const ContributorPrefix = "(C) "

// Options configures a Handler
type Options struct {
	// Dir is the resolved installation directory
	Dir string

	// Bundle is the packaged hats archive. Nil means nothing to extract.
	Bundle fyne.Resource

	Logger Logger

	// ParseContributorMeta normalises notes of contributor hats on load
	ParseContributorMeta bool
}

// Handler owns the installation directory, the init state and the hat registry
type Handler struct {
	dir                  string
	bundle               fyne.Resource
	log                  Logger
	parseContributorMeta bool

	initMutex sync.Mutex
	attempted bool
	initErr   error

	hats map[string]*model.HatInfo
}

// NewHandler creates a handler for the given installation directory
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = NewStdLogger(nil)
	}
	return &Handler{
		dir:                  opts.Dir,
		bundle:               opts.Bundle,
		log:                  logger,
		parseContributorMeta: opts.ParseContributorMeta,
		hats:                 make(map[string]*model.HatInfo),
	}
}

// Dir returns the installation directory
func (h *Handler) Dir() string {
	return h.dir
}
