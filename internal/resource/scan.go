package resource

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hatsmod/hats/internal/model"
	"github.com/hatsmod/hats/internal/tabula"
)

// LoadAll rebuilds the registry from every definition file under the
// installation directory and returns how many were loaded
func (h *Handler) LoadAll() int {
	h.hats = make(map[string]*model.HatInfo)

	count := h.scourForHats(h.dir, make(map[string]bool))

	h.log.Infof("Loaded %d hats.", count)
	return count
}

// scourForHats follows symbolic links. visited holds resolved directory
// paths so a link cycle is walked once.
func (h *Handler) scourForHats(dir string, visited map[string]bool) int {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		if visited[resolved] {
			return 0
		}
		visited[resolved] = true
	}

	// A failed listing still returns whatever was read before the error
	entries, err := os.ReadDir(dir)
	if err != nil {
		h.log.Warnf("Unable to list hats directory %s: %v", dir, err)
	}

	count := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				h.log.Warnf("Skipping broken link %s: %v", path, err)
				continue
			}
			mode = info.Mode().Type()
		}
		if mode.IsDir() {
			count += h.scourForHats(path, visited)
			continue
		}
		if !mode.IsRegular() || !strings.HasSuffix(entry.Name(), tabula.Extension) {
			continue
		}
		if err := h.ReadHat(path); err == nil {
			count++
		}
	}
	return count
}

// ReadHat loads one definition file into the registry, migrating it first if
// it uses the legacy format. Failures are logged and leave the registry untouched.
func (h *Handler) ReadHat(path string) error {
	project, err := tabula.ReadFile(path)
	if err != nil {
		h.log.Warnf("Error reading Tabula file: %s: %v", path, err)
		return fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	if project.Tampered {
		h.log.Warnf("This hat file was tampered (which will be loaded anyway): %s", path)
	}

	name := HatName(path)

	if project.Legacy {
		if err := repairOldHat(path, name, project); err != nil {
			h.log.Warnf("Failed to update old Tabula file, skipping: %s: %v", path, err)
			return fmt.Errorf("%w: %s: %w", ErrMigrationRewrite, path, err)
		}
		h.log.Warnf("Loaded an old Tabula file. Updating to new Tabula & Hats format: %s", path)
	}

	if h.parseContributorMeta && strings.HasPrefix(filepath.Base(path), ContributorPrefix) {
		h.parseMeta(path, project)
	}

	h.hats[name] = model.NewHatInfo(name, path, project)
	return nil
}

// HatName is the registry key for a definition file: its name without extension
func HatName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
