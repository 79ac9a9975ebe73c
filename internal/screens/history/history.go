package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/strum/internal/screen"
	"github.com/abhisek/strum/internal/store"
	"github.com/abhisek/strum/internal/ui/components"
	"github.com/abhisek/strum/internal/ui/layout"
	"github.com/abhisek/strum/internal/ui/theme"
)

// Limit caps how many sessions the screen loads.
const Limit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Totals   store.Totals
	Err      error
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Expand key.Binding
}

// HistoryScreen lists past practice sessions.
type HistoryScreen struct {
	repo     store.SessionRepo
	sessions []store.SessionRecord
	totals   store.Totals
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
	keys     keyMap
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.SessionRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
		keys: keyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "navigate")),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Expand: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "details")),
		},
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.repo.List(ctx, store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		totals, err := s.repo.Totals(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return components.KeyHints(s.keys.Expand, s.keys.Up, components.BackKey)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.totals = msg.Totals
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, s.keys.Down):
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case key.Matches(msg, s.keys.Expand):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered.Render(theme.Hint.Render(FormatTotals(s.totals))))
	b.WriteString("\n\n")

	for i, rec := range s.sessions {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(centered.Render(style.Render(prefix + FormatSession(rec))))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s tuning · %d clicks · %s",
				rec.Tuning, rec.Clicks, strings.Join(rec.Chords, " "))
			b.WriteString(centered.Render(theme.Hint.Render(detail)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatSession renders one history line.
func FormatSession(rec store.SessionRecord) string {
	return fmt.Sprintf("%s  %s  %d changes  every %.2fs",
		rec.StartedAt.Local().Format("Jan 02, 2006 15:04"),
		FormatDuration(rec.Duration().Milliseconds()/1000),
		rec.Advances,
		rec.IntervalSeconds,
	)
}

// FormatTotals renders the all-time summary line.
func FormatTotals(t store.Totals) string {
	noun := "sessions"
	if t.Sessions == 1 {
		noun = "session"
	}
	return fmt.Sprintf("%d %s · %s practiced · %d chord changes",
		t.Sessions, noun, FormatDuration(int64(t.Duration.Seconds())), t.Advances)
}

// FormatDuration renders seconds as m:ss, or h:mm:ss past an hour.
func FormatDuration(secs int64) string {
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
