package components

import (
	"github.com/abhisek/strum/internal/ui/theme"
)

// Toggle renders an on/off setting such as "Diagram [on]".
type Toggle struct {
	Label string
	On    bool
}

// View renders the toggle.
func (t Toggle) View() string {
	state := theme.Off.Render("off")
	if t.On {
		state = theme.On.Render("on")
	}
	return theme.Body.Render(t.Label) + " [" + state + "]"
}
