package resource

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hatsmod/hats/internal/platform"
)

// Init prepares the installation directory and extracts the bundled hats on
// first run. The first call does the work; every later call returns the same
// result without touching the filesystem, including after a failure.
func (h *Handler) Init() error {
	h.initMutex.Lock()
	defer h.initMutex.Unlock()

	if h.attempted {
		return h.initErr
	}
	h.attempted = true

	if err := h.extract(); err != nil {
		h.log.Fatalf("Error initialising hats resources in %s: %v", h.dir, err)
		h.initErr = fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	return h.initErr
}

// Ready reports whether Init has run and succeeded
func (h *Handler) Ready() bool {
	h.initMutex.Lock()
	defer h.initMutex.Unlock()
	return h.attempted && h.initErr == nil
}

func (h *Handler) extract() error {
	if err := platform.CreateDirectoryIfNotExists(h.dir); err != nil {
		return fmt.Errorf("failed to create hats directory: %w", err)
	}

	marker := filepath.Join(h.dir, MarkerFile)
	if platform.FileExists(marker) {
		return nil
	}

	if err := h.unpackBundle(); err != nil {
		return err
	}

	if err := os.WriteFile(marker, nil, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write extraction marker: %w", err)
	}
	return nil
}

func (h *Handler) unpackBundle() error {
	if h.bundle == nil {
		h.log.Infof("No bundled hats package, nothing to extract")
		return nil
	}
	content := h.bundle.Content()
	if len(content) == 0 {
		h.log.Infof("Bundled hats package %s is empty, nothing to extract", h.bundle.Name())
		return nil
	}

	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return fmt.Errorf("failed to open bundled package %s: %w", h.bundle.Name(), err)
	}

	extracted := 0
	for _, entry := range zr.File {
		target, err := platform.SafeJoin(h.dir, entry.Name)
		if err != nil {
			return fmt.Errorf("invalid bundled entry: %w", err)
		}

		if entry.FileInfo().IsDir() {
			if err := platform.CreateDirectoryIfNotExists(target); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
			continue
		}

		// Never clobber user edits or a previous extraction
		if platform.FileSize(target) > MinExistingFileSize {
			continue
		}

		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(target)); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
		}
		if err := writeEntry(entry, target); err != nil {
			return err
		}
		extracted++
	}

	h.log.Infof("Extracted %d bundled hat files to %s", extracted, h.dir)
	return nil
}

func writeEntry(entry *zip.File, target string) error {
	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to read bundled entry %s: %w", entry.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
