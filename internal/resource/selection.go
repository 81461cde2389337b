package resource

import (
	"strings"

	"github.com/hatsmod/hats/internal/model"
)

// SplitDetails splits a selection string on ':' and returns the trimmed,
// non-empty tokens. "a::b" and " a : b " both yield [a b].
func SplitDetails(details string) []string {
	var tokens []string
	for _, token := range strings.Split(details, model.DetailsSeparator) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// GetAndSetAccessories decodes a selection string "hat:accessory:...", replaces
// the accessory state of the named hat and returns it. Returns false for an
// empty selection or a hat that is not registered.
func (h *Handler) GetAndSetAccessories(details string) (*model.HatInfo, bool) {
	tokens := SplitDetails(details)
	if len(tokens) == 0 {
		return nil, false
	}

	info, ok := h.hats[tokens[0]]
	if !ok {
		return nil, false
	}
	info.SetAccessories(tokens[1:])
	return info, true
}
