package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, warm wood tones on a dark fretboard.
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#1C1917") // Stone
	BgCard    = lipgloss.Color("#292524") // Dark Stone
	Border    = lipgloss.Color("#44403C") // Warm Gray
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	On = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Off = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Chords
var (
	// CurrentChord is the large chord name on the practice screen.
	CurrentChord = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Accent).
			Padding(1, 4).
			Align(lipgloss.Center)

	ChordActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Secondary).
			Bold(true)

	ChordInactive = lipgloss.NewStyle().
			Foreground(TextDim)

	// ChordCursor is layered over ChordActive or ChordInactive.
	ChordCursor = lipgloss.NewStyle().
			Underline(true).
			Bold(true)

	FingerMarker = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
