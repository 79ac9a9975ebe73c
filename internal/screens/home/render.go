package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/strum/internal/screens/history"
	"github.com/abhisek/strum/internal/store"
	"github.com/abhisek/strum/internal/ui/theme"
)

const titleFull = ` ███████╗████████╗██████╗ ██╗   ██╗███╗   ███╗
 ██╔════╝╚══██╔══╝██╔══██╗██║   ██║████╗ ████║
 ███████╗   ██║   ██████╔╝██║   ██║██╔████╔██║
 ╚════██║   ██║   ██╔══██╗██║   ██║██║╚██╔╝██║
 ███████║   ██║   ██║  ██║╚██████╔╝██║ ╚═╝ ██║
 ╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═╝`

const titleCompact = "♫  S · T · R · U · M  ♫"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for the frame border (2) and inner padding (4).
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Selected.Render(art))
}

// renderStatsBar renders the all-time practice totals.
func renderStatsBar(t store.Totals, loaded bool, cw int) string {
	sessions := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	practiced := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	changes := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	stats := theme.Hint.Render("no history")
	if loaded {
		stats = fmt.Sprintf("%s  %s  %s",
			sessions.Render(fmt.Sprintf("♪ %d SESSIONS", t.Sessions)),
			practiced.Render("◷ "+history.FormatDuration(int64(t.Duration.Seconds()))),
			changes.Render(fmt.Sprintf("↻ %d CHANGES", t.Advances)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when compact.
func renderMenu(items []string, selected, cw int, compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	if compact {
		selectedBtn = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
		normalBtn = lipgloss.NewStyle().Foreground(theme.Text)
	}

	buttons := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a double border, centered in the given area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).   // account for border chars
		Height(height-2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
