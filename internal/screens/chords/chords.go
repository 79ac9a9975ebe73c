package chords

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/chord"
	"github.com/abhisek/strum/internal/diagram"
	"github.com/abhisek/strum/internal/screen"
	"github.com/abhisek/strum/internal/ui/components"
	"github.com/abhisek/strum/internal/ui/layout"
	"github.com/abhisek/strum/internal/ui/theme"
)

// ChordsScreen browses every chord with its diagram.
type ChordsScreen struct {
	cfg      diagram.Config
	renderer *diagram.Renderer
	grid     components.ChordGrid
	tuning   key.Binding
	log      *zap.Logger
}

var _ screen.Screen = (*ChordsScreen)(nil)
var _ screen.KeyHintProvider = (*ChordsScreen)(nil)
var _ screen.StatusProvider = (*ChordsScreen)(nil)

// New creates a chord browser starting on cfg's tuning.
func New(cfg diagram.Config, log *zap.Logger) *ChordsScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChordsScreen{
		cfg:      cfg,
		renderer: diagram.NewRenderer(cfg),
		grid:     components.NewChordGrid(),
		tuning: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tuning"),
		),
		log: log,
	}
}

func (s *ChordsScreen) Init() tea.Cmd {
	return nil
}

func (s *ChordsScreen) Title() string {
	return "Chord Library"
}

func (s *ChordsScreen) Status() string {
	return s.cfg.Tuning.String() + " tuning"
}

func (s *ChordsScreen) KeyHints() []layout.KeyHint {
	return components.KeyHints(s.grid.Keys.Up, s.tuning, components.BackKey)
}

func (s *ChordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if g, moved := s.grid.Update(kmsg); moved {
		s.grid = g
		return s, nil
	}
	if key.Matches(kmsg, s.tuning) {
		s.cycleTuning()
	}
	return s, nil
}

// cycleTuning switches to the next tuning in C, D, G order.
func (s *ChordsScreen) cycleTuning() {
	all := chord.Tunings()
	next := all[0]
	for i, t := range all {
		if t.Name == s.cfg.Tuning.Name {
			next = all[(i+1)%len(all)]
			break
		}
	}
	s.cfg.Tuning = next
	s.renderer = diagram.NewRenderer(s.cfg)
	s.log.Debug("tuning changed", zap.String("tuning", next.Name))
}

func (s *ChordsScreen) View(width, height int) string {
	detail := s.renderDetail(s.grid.Selected())
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.grid.View(nil, true),
		"    ",
		detail,
	)
	if width < lipgloss.Width(body) {
		body = lipgloss.JoinVertical(lipgloss.Center, s.grid.View(nil, true), "", detail)
	}
	return layout.Center(body, width, height)
}

func (s *ChordsScreen) renderDetail(name chord.Name) string {
	c, err := chord.Parse(name)
	if err != nil {
		return theme.ErrorText.Render(err.Error())
	}
	header := theme.Selected.Render(string(name)) + "  " +
		theme.Hint.Render(fmt.Sprintf("%s · %s", c.Quality.Label(), strings.Join(c.Notes(), " ")))

	d, err := s.renderer.Render(name)
	if err != nil {
		s.log.Warn("chord diagram unavailable", zap.String("chord", string(name)), zap.Error(err))
		return lipgloss.JoinVertical(lipgloss.Left, header, "", theme.ErrorText.Render("no diagram"))
	}

	frets := make([]string, 0, len(d.Fingering.Positions))
	for _, f := range d.Fingering.Frets() {
		frets = append(frets, strconv.Itoa(f))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		theme.Body.Render("frets "+strings.Join(frets, " ")),
		"",
		d.TextStyled(theme.FingerMarker),
	)
}
