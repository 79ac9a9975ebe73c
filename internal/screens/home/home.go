package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/diagram"
	"github.com/abhisek/strum/internal/router"
	"github.com/abhisek/strum/internal/screen"
	"github.com/abhisek/strum/internal/screens/chords"
	"github.com/abhisek/strum/internal/screens/history"
	"github.com/abhisek/strum/internal/screens/notice"
	"github.com/abhisek/strum/internal/screens/practice"
	"github.com/abhisek/strum/internal/store"
	"github.com/abhisek/strum/internal/ui/components"
	"github.com/abhisek/strum/internal/ui/layout"
)

// Deps carries what the home screen hands to the screens it opens.
type Deps struct {
	Practice practice.Deps
	Diagram  diagram.Config
	Sessions store.SessionRepo
	Logger   *zap.Logger
}

type totalsLoadedMsg struct {
	Totals store.Totals
	Err    error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
	totals     store.Totals
	loaded     bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(d Deps) *HomeScreen {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	menuLabels := []string{"START PRACTICE", "CHORD LIBRARY", "HISTORY", "QUIT"}

	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return push(practice.New(d.Practice))
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return push(chords.New(d.Diagram, d.Logger))
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if d.Sessions == nil {
				return push(notice.New("History", "History is unavailable without a database."))
			}
			return push(history.New(d.Sessions))
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       d,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) loadTotals() tea.Cmd {
	if h.deps.Sessions == nil {
		return nil
	}
	repo := h.deps.Sessions
	return func() tea.Msg {
		t, err := repo.Totals(context.Background())
		return totalsLoadedMsg{Totals: t, Err: err}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadTotals()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case totalsLoadedMsg:
		if msg.Err != nil {
			h.deps.Logger.Warn("failed to load practice totals", zap.Error(msg.Err))
			return h, nil
		}
		h.totals = msg.Totals
		h.loaded = true
		return h, nil

	case router.ResumedMsg:
		// A finished session may have added history.
		return h, h.loadTotals()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+6) || width < 80
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.totals, h.loaded, cw),
		renderMenu(h.menuLabels, h.menu.Selected, cw, compact),
	}
	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return renderFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := components.KeyHints(h.menu.Keys.Up, h.menu.Keys.Select)
	return append(hints, layout.KeyHint{Key: "ctrl+c", Description: "quit"})
}
