package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/strum/internal/ui/layout"
)

// KeyHints turns binding help into footer hints, skipping bindings that are
// disabled or have no help text.
func KeyHints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// BackKey is the global back binding handled by the app.
var BackKey = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "back"),
)
