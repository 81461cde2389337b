package resource

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hatsmod/hats/internal/model"
)

// GetHat returns the registered hat with the given name
func (h *Handler) GetHat(name string) (*model.HatInfo, bool) {
	info, ok := h.hats[name]
	return info, ok
}

// Len returns the number of registered hats
func (h *Handler) Len() int {
	return len(h.hats)
}

// Names returns the registered hat names in display order
func (h *Handler) Names() []string {
	names := make([]string, 0, len(h.hats))
	for name := range h.hats {
		names = append(names, name)
	}
	col := collate.New(language.English, collate.IgnoreCase)
	sort.Slice(names, func(i, j int) bool {
		if c := col.CompareString(names[i], names[j]); c != 0 {
			return c < 0
		}
		return names[i] < names[j]
	})
	return names
}

// Hats returns the registered hats in display order
func (h *Handler) Hats() []*model.HatInfo {
	names := h.Names()
	hats := make([]*model.HatInfo, 0, len(names))
	for _, name := range names {
		hats = append(hats, h.hats[name])
	}
	return hats
}
