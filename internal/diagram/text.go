package diagram

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const cellWidth = 4

// Text renders the diagram as a monospace fretboard with finger numbers on
// the fretted strings.
func (d Diagram) Text() string {
	return d.render(func(s string) string { return s })
}

// TextStyled is Text with markers rendered through style.
func (d Diagram) TextStyled(marker lipgloss.Style) string {
	return d.render(func(s string) string { return marker.Render(s) })
}

func (d Diagram) render(marker func(string) string) string {
	n := len(d.Tuning.Strings)
	if n == 0 {
		return ""
	}
	frets := d.Frets()

	byCell := make(map[[2]int]string, len(d.Markers))
	for _, m := range d.Markers {
		byCell[[2]int{m.String, m.Fret}] = m.Label
	}

	var b strings.Builder
	for i, note := range d.Tuning.NoteNames() {
		if i < n-1 {
			fmt.Fprintf(&b, "%-*s", cellWidth, note)
		} else {
			b.WriteString(note)
		}
	}
	b.WriteString("\n")
	b.WriteString(ruleLine(n, "╒", "═", "╤", "╕"))

	for f := 1; f <= frets; f++ {
		b.WriteString("\n")
		for s := 0; s < n; s++ {
			cell := "│"
			if label, ok := byCell[[2]int{s, f}]; ok {
				if label == "" {
					label = "●"
				}
				cell = marker(label)
			}
			b.WriteString(cell)
			if s < n-1 {
				b.WriteString(strings.Repeat(" ", cellWidth-1))
			}
		}
		b.WriteString("\n")
		if f < frets {
			b.WriteString(ruleLine(n, "├", "─", "┼", "┤"))
		} else {
			b.WriteString(ruleLine(n, "└", "─", "┴", "┘"))
		}
	}
	return b.String()
}

func ruleLine(strs int, left, fill, mid, right string) string {
	segment := strings.Repeat(fill, cellWidth-1)
	parts := make([]string, strs-1)
	for i := range parts {
		parts[i] = segment
	}
	return left + strings.Join(parts, mid) + right
}
