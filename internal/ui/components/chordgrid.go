package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/strum/internal/chord"
	"github.com/abhisek/strum/internal/ui/theme"
)

// GridColumns is the number of roots per grid row.
const GridColumns = 7

// GridKeyMap holds the grid cursor bindings.
type GridKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// DefaultGridKeys uses arrows and h/j/k/l.
var DefaultGridKeys = GridKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("←↑↓→", "move")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	Left:  key.NewBinding(key.WithKeys("left", "h")),
	Right: key.NewBinding(key.WithKeys("right", "l")),
}

// ChordGrid lays the allow-list out as one row per quality and one column
// per root, with a movable cursor.
type ChordGrid struct {
	names  []chord.Name
	Cursor int
	Keys   GridKeyMap
}

// NewChordGrid creates a grid over every known chord.
func NewChordGrid() ChordGrid {
	return ChordGrid{names: chord.All(), Keys: DefaultGridKeys}
}

// Rows returns the number of grid rows.
func (g ChordGrid) Rows() int {
	return (len(g.names) + GridColumns - 1) / GridColumns
}

// Selected returns the chord under the cursor.
func (g ChordGrid) Selected() chord.Name {
	if g.Cursor < 0 || g.Cursor >= len(g.names) {
		return ""
	}
	return g.names[g.Cursor]
}

// Move shifts the cursor, clamped to the grid edges.
func (g ChordGrid) Move(dRow, dCol int) ChordGrid {
	row := g.Cursor/GridColumns + dRow
	col := g.Cursor%GridColumns + dCol
	row = min(max(row, 0), g.Rows()-1)
	col = min(max(col, 0), GridColumns-1)
	if i := row*GridColumns + col; i < len(g.names) {
		g.Cursor = i
	}
	return g
}

// Update moves the cursor on navigation keys and reports whether it handled
// the message.
func (g ChordGrid) Update(msg tea.Msg) (ChordGrid, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return g, false
	}
	switch {
	case key.Matches(kmsg, g.Keys.Up):
		return g.Move(-1, 0), true
	case key.Matches(kmsg, g.Keys.Down):
		return g.Move(1, 0), true
	case key.Matches(kmsg, g.Keys.Left):
		return g.Move(0, -1), true
	case key.Matches(kmsg, g.Keys.Right):
		return g.Move(0, 1), true
	}
	return g, false
}

// View renders the grid. Chords for which active returns true are
// highlighted; the cursor is drawn only when focused.
func (g ChordGrid) View(active func(chord.Name) bool, focused bool) string {
	var b strings.Builder
	for i, n := range g.names {
		if i > 0 {
			if i%GridColumns == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		style := theme.ChordInactive
		if active != nil && active(n) {
			style = theme.ChordActive
		}
		if focused && i == g.Cursor {
			b.WriteString(CursorCell(n, style))
			continue
		}
		b.WriteString(style.Render(fmt.Sprintf(" %-5s ", n)))
	}
	return b.String()
}

// CursorCell renders the cell under the cursor: bracketed and underlined on
// top of the chord's active or inactive style.
func CursorCell(n chord.Name, base lipgloss.Style) string {
	return base.Inherit(theme.ChordCursor).Render(fmt.Sprintf("[%-5s]", n))
}
