package practice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/chord"
	"github.com/abhisek/strum/internal/diagram"
	prac "github.com/abhisek/strum/internal/practice"
	"github.com/abhisek/strum/internal/router"
	"github.com/abhisek/strum/internal/screen"
	"github.com/abhisek/strum/internal/store"
	"github.com/abhisek/strum/internal/ui/components"
	"github.com/abhisek/strum/internal/ui/layout"
)

// Deps carries what a practice session needs. Sessions may be nil, in which
// case nothing is recorded.
type Deps struct {
	Config   prac.Config
	Renderer *diagram.Renderer
	Sessions store.SessionRepo
	Clicker  prac.Clicker
	Logger   *zap.Logger

	// Rand and Now are optional and exist for tests.
	Rand *rand.Rand
	Now  func() time.Time
}

// tickMsg is delivered when a timer period elapses. Only the tick whose
// session and generation match the live timer advances the chord.
type tickMsg struct {
	Session    string
	Generation uint64
}

// PracticeScreen runs one practice session.
type PracticeScreen struct {
	id     string
	deps   Deps
	ctrl   *prac.Controller
	grid   components.ChordGrid
	keys   keyMap
	log    *zap.Logger
	now    func() time.Time
	notice string
	closed bool

	lastDiagramFailure diagramFailure
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)

// New starts a session. The chord timer begins with Init.
func New(d Deps) *PracticeScreen {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	if d.Renderer == nil {
		d.Renderer = diagram.NewRenderer(diagram.DefaultConfig())
	}

	opts := []prac.Option{prac.WithLogger(log), prac.WithClock(now)}
	if d.Rand != nil {
		opts = append(opts, prac.WithRand(d.Rand))
	}
	if d.Clicker != nil {
		opts = append(opts, prac.WithClicker(d.Clicker))
	}

	return &PracticeScreen{
		id:   uuid.NewString(),
		deps: d,
		ctrl: prac.New(d.Config, opts...),
		grid: components.NewChordGrid(),
		keys: defaultKeyMap(),
		log:  log,
		now:  now,
	}
}

// tick schedules the next timer message for h. Ticks are tagged with the
// session so a chain left over from a replaced screen cannot drive this one.
func (s *PracticeScreen) tick(h prac.TimerHandle) tea.Cmd {
	session := s.id
	return tea.Tick(h.Period, func(time.Time) tea.Msg {
		return tickMsg{Session: session, Generation: h.Generation}
	})
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.tick(s.ctrl.Timer())
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) Status() string {
	st := s.ctrl.State()
	return fmt.Sprintf("%.2fs  %d chords", st.IntervalSeconds, len(st.ActiveChords))
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	return components.KeyHints(
		s.grid.Keys.Up, s.keys.Toggle, s.keys.Slower, s.keys.Faster,
		s.keys.Diagram, s.keys.Metronome, s.keys.Restart, s.keys.Back,
	)
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.closed || msg.Session != s.id {
			return s, nil
		}
		if s.ctrl.Fire(msg.Generation) {
			return s, s.tick(s.ctrl.Timer())
		}
		// Stale tick from a replaced timer; its chain ends here.
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if g, ok := s.grid.Update(msg); ok {
		s.grid = g
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Slower):
		return s, s.tick(s.ctrl.IncreaseInterval())

	case key.Matches(msg, s.keys.Faster):
		return s, s.tick(s.ctrl.DecreaseInterval())

	case key.Matches(msg, s.keys.Toggle):
		name := s.grid.Selected()
		if _, err := s.ctrl.ToggleChord(name); err != nil {
			s.log.Warn("toggle chord failed", zap.String("chord", string(name)), zap.Error(err))
			s.notice = err.Error()
			return s, nil
		}
		s.notice = ""

	case key.Matches(msg, s.keys.Diagram):
		s.ctrl.ToggleDiagram()

	case key.Matches(msg, s.keys.Metronome):
		s.ctrl.ToggleMetronome()

	case key.Matches(msg, s.keys.Restart):
		next := New(s.restartDeps())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

// restartDeps carries the current chord set and settings into a new session.
func (s *PracticeScreen) restartDeps() Deps {
	d := s.deps
	st := s.ctrl.State()
	d.Config.IntervalSeconds = st.IntervalSeconds
	d.Config.Chords = st.ActiveChords
	d.Config.CurrentChord = st.CurrentChord
	d.Config.ShowDiagram = st.ShowDiagram
	d.Config.Metronome = st.MetronomeOn
	return d
}

// Close ends the session and records it. Later ticks are ignored.
func (s *PracticeScreen) Close() {
	if s.closed {
		return
	}
	s.closed = true

	st := s.ctrl.State()
	stats := s.ctrl.Stats()
	rec := store.SessionRecord{
		ID:              s.id,
		StartedAt:       stats.StartedAt,
		EndedAt:         s.now(),
		Advances:        stats.Advances,
		Clicks:          stats.Clicks,
		IntervalSeconds: st.IntervalSeconds,
		Tuning:          s.deps.Renderer.Config().Tuning.Name,
		Chords:          chord.Strings(st.ActiveChords),
	}
	s.log.Info("practice session ended",
		zap.String("session", rec.ID),
		zap.Duration("duration", rec.Duration()),
		zap.Int("advances", rec.Advances),
		zap.Int("clicks", rec.Clicks),
		zap.Int("skipped", stats.Skipped),
	)

	if s.deps.Sessions == nil || stats.Advances == 0 {
		return
	}
	if _, err := s.deps.Sessions.Record(context.Background(), rec); err != nil {
		s.log.Error("failed to record practice session", zap.String("session", rec.ID), zap.Error(err))
	}
}
