package model

import "strings"

// DetailsSeparator separates the hat name and accessory ids in a selection string
const DetailsSeparator = ":"

// HatInfo is a registry entry: a loaded project plus the accessories
// currently enabled on it
type HatInfo struct {
	Name    string
	Path    string // file the project was loaded from
	Project *Project

	accessories []string
}

// NewHatInfo creates a hat entry with no accessories enabled
func NewHatInfo(name, path string, project *Project) *HatInfo {
	return &HatInfo{
		Name:        name,
		Path:        path,
		Project:     project,
		accessories: make([]string, 0),
	}
}

// Accessories returns a copy of the enabled accessory ids, in selection order
func (h *HatInfo) Accessories() []string {
	return append([]string(nil), h.accessories...)
}

// SetAccessories replaces the enabled accessories. Order and duplicates are kept as given.
func (h *HatInfo) SetAccessories(accessories []string) {
	h.accessories = append(make([]string, 0, len(accessories)), accessories...)
}

// HasAccessory reports whether id is enabled
func (h *HatInfo) HasAccessory(id string) bool {
	for _, accessory := range h.accessories {
		if accessory == id {
			return true
		}
	}
	return false
}

// ToggleAccessory enables id at the end of the selection, or removes its
// first occurrence if it is already enabled. Returns whether it is now enabled.
func (h *HatInfo) ToggleAccessory(id string) bool {
	for i, accessory := range h.accessories {
		if accessory == id {
			h.accessories = append(h.accessories[:i], h.accessories[i+1:]...)
			return false
		}
	}
	h.accessories = append(h.accessories, id)
	return true
}

// Details encodes the selection as "name:accessory:accessory"
func (h *HatInfo) Details() string {
	if len(h.accessories) == 0 {
		return h.Name
	}
	var b strings.Builder
	b.WriteString(h.Name)
	for _, accessory := range h.accessories {
		b.WriteString(DetailsSeparator)
		b.WriteString(accessory)
	}
	return b.String()
}
