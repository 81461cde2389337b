package resource

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hatsmod/hats/internal/model"
	"github.com/hatsmod/hats/internal/tabula"
)

// LegacyPivotOffset is how far old hat templates sit above the current origin
const LegacyPivotOffset = 16

// Contributor note prefixes
const (
	NoteContributorMeta   = "Hats:{"
	NoteContributorUUID   = "hats-contributor-uuid:"
	NoteContributorMiniMe = "hats-contributor-mini-me:"
	NoteRarity            = "hats-rarity"
	NotePool              = "hats-pool"

	DefaultContributorRarity = NoteRarity + ":legendary"
	DefaultContributorPool   = NotePool + ":contributors"
)

// saveProject persists a rewritten project; swapped in tests
var saveProject = tabula.Save

// repairOldHat moves a legacy project onto the current pivot convention and
// rewrites its file. It does nothing for projects that are already current.
func repairOldHat(path, name string, project *model.Project) error {
	if !project.Legacy {
		return nil
	}

	project.Name = name
	project.Author = ""
	project.Version = tabula.CurrentVersion
	project.Legacy = false
	project.Dirty = true
	for _, part := range project.AllParts() {
		part.RotPY -= LegacyPivotOffset
	}

	if err := saveProject(path, project); err != nil {
		return err
	}
	project.Dirty = false
	return nil
}

// parseMeta folds the JSON metadata note of a contributor hat into plain notes
// and makes sure the hat lands in the contributor pool
func (h *Handler) parseMeta(path string, project *model.Project) {
	hasRarity := false
	hasPool := false

	notes := project.Notes
	for i := len(notes) - 1; i >= 0; i-- {
		note := notes[i]
		if strings.HasPrefix(note, NoteContributorMeta) {
			notes = append(notes[:i:i], notes[i+1:]...)

			payload := strings.TrimSpace(note[len(NoteContributorMeta)-1:])
			if !gjson.Valid(payload) || !gjson.Parse(payload).IsObject() {
				h.log.Warnf("Ignoring malformed contributor metadata in %s", path)
			} else {
				meta := gjson.Parse(payload)
				if uuid := meta.Get("uuid"); uuid.Exists() {
					notes = append(notes, NoteContributorUUID+uuid.String())
				}
				if miniMe := meta.Get("isMiniMe"); miniMe.Exists() {
					notes = append(notes, NoteContributorMiniMe+strconv.FormatBool(miniMe.Bool()))
				}
			}
		}
		if strings.HasPrefix(note, NoteRarity) {
			hasRarity = true
		}
		if strings.HasPrefix(note, NotePool) {
			hasPool = true
		}
	}
	if !hasRarity {
		notes = append(notes, DefaultContributorRarity)
	}
	if !hasPool {
		notes = append(notes, DefaultContributorPool)
	}
	project.Notes = notes

	if err := saveProject(path, project); err != nil {
		h.log.Warnf("Failed to save contributor metadata for %s: %v", path, err)
	}
}
