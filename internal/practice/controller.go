// Package practice holds the chord practice session: the active chord set,
// the change interval, the display toggles, and the recurring timer that
// advances to a random chord.
package practice

import (
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/chord"
)

// Clicker plays one metronome click. Implementations must not block.
type Clicker interface {
	Click()
}

// Controller owns a practice session. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Controller struct {
	cfg     Config
	state   State
	timer   TimerHandle
	rng     *rand.Rand
	clicker Clicker
	log     *zap.Logger
	now     func() time.Time
	stats   Stats
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used by Advance.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithClicker sets the metronome.
func WithClicker(cl Clicker) Option {
	return func(c *Controller) { c.clicker = cl }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock sets the time source used for session stats.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New starts a session from cfg. Chords outside the allow-list are dropped
// and an interval below the floor is raised to it. A zero floor or step
// falls back to DefaultConfig. The recurring timer is live on return.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		cfg: cfg,
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(c.now().UnixNano()), 0))
	}

	def := DefaultConfig()
	if c.cfg.MinIntervalSeconds <= 0 {
		c.cfg.MinIntervalSeconds = def.MinIntervalSeconds
	}
	if c.cfg.IntervalStep <= 0 {
		c.cfg.IntervalStep = def.IntervalStep
	}

	active := make([]chord.Name, 0, len(cfg.Chords))
	for _, n := range cfg.Chords {
		if !chord.IsKnown(n) {
			c.log.Warn("dropping unknown chord from active set", zap.String("chord", string(n)))
			continue
		}
		if !slices.Contains(active, n) {
			active = append(active, n)
		}
	}

	current := cfg.CurrentChord
	if !chord.IsKnown(current) {
		current = "C"
	}

	c.state = State{
		IntervalSeconds: c.clampInterval(cfg.IntervalSeconds),
		ActiveChords:    active,
		CurrentChord:    current,
		ShowDiagram:     cfg.ShowDiagram,
		MetronomeOn:     cfg.Metronome,
	}
	c.stats.StartedAt = c.now()
	c.replaceTimer(c.state.Interval())

	c.log.Info("practice session started",
		zap.Float64("interval_seconds", c.state.IntervalSeconds),
		zap.Strings("chords", chord.Strings(active)),
	)
	return c
}

// State returns a copy of the session state.
func (c *Controller) State() State {
	s := c.state
	s.ActiveChords = slices.Clone(c.state.ActiveChords)
	return s
}

// Timer returns the live timer handle.
func (c *Controller) Timer() TimerHandle {
	return c.timer
}

// Stats returns the session counters.
func (c *Controller) Stats() Stats {
	return c.stats
}

// IncreaseInterval lengthens the interval by one step and restarts the timer.
func (c *Controller) IncreaseInterval() TimerHandle {
	return c.setInterval(c.state.IntervalSeconds + c.cfg.IntervalStep)
}

// DecreaseInterval shortens the interval by one step, never below the
// floor, and restarts the timer.
func (c *Controller) DecreaseInterval() TimerHandle {
	return c.setInterval(c.state.IntervalSeconds - c.cfg.IntervalStep)
}

func (c *Controller) setInterval(seconds float64) TimerHandle {
	c.state.IntervalSeconds = c.clampInterval(seconds)
	h := c.replaceTimer(c.state.Interval())
	c.log.Debug("interval changed",
		zap.Float64("interval_seconds", c.state.IntervalSeconds),
		zap.Uint64("timer", h.Generation),
	)
	return h
}

func (c *Controller) clampInterval(seconds float64) float64 {
	return max(seconds, c.cfg.MinIntervalSeconds)
}

// replaceTimer retires the live timer and installs one with the given
// period in a single step. The waiting period restarts from zero.
func (c *Controller) replaceTimer(period time.Duration) TimerHandle {
	c.timer = TimerHandle{
		Generation: c.timer.Generation + 1,
		Period:     period,
	}
	return c.timer
}

// ToggleChord removes name from the active set if present and appends it
// otherwise. The set may become empty. Names outside the allow-list are
// rejected and leave the set unchanged.
func (c *Controller) ToggleChord(name chord.Name) ([]chord.Name, error) {
	if !chord.IsKnown(name) {
		return slices.Clone(c.state.ActiveChords), &chord.UnknownChordError{Name: string(name), Reason: "not in allow-list"}
	}
	if i := slices.Index(c.state.ActiveChords, name); i >= 0 {
		c.state.ActiveChords = slices.Delete(c.state.ActiveChords, i, i+1)
	} else {
		c.state.ActiveChords = append(c.state.ActiveChords, name)
	}
	c.log.Info("active chords changed", zap.Strings("chords", chord.Strings(c.state.ActiveChords)))
	return slices.Clone(c.state.ActiveChords), nil
}

// ToggleDiagram flips diagram visibility.
func (c *Controller) ToggleDiagram() bool {
	c.state.ShowDiagram = !c.state.ShowDiagram
	return c.state.ShowDiagram
}

// ToggleMetronome flips the metronome.
func (c *Controller) ToggleMetronome() bool {
	c.state.MetronomeOn = !c.state.MetronomeOn
	return c.state.MetronomeOn
}

// Fire is the timer callback. It advances only when generation belongs to
// the live timer and reports whether it did.
func (c *Controller) Fire(generation uint64) bool {
	if generation != c.timer.Generation {
		c.log.Debug("ignoring stale timer",
			zap.Uint64("timer", generation),
			zap.Uint64("live", c.timer.Generation),
		)
		return false
	}
	c.Advance()
	return true
}

// Advance picks the next chord uniformly from the active set and, when the
// metronome is on, signals one click. With an empty set it does nothing and
// the current chord is kept.
func (c *Controller) Advance() {
	n := len(c.state.ActiveChords)
	if n == 0 {
		c.stats.Skipped++
		c.log.Debug("active set empty, keeping chord", zap.String("chord", string(c.state.CurrentChord)))
		return
	}
	c.state.CurrentChord = c.state.ActiveChords[c.rng.IntN(n)]
	c.stats.Advances++

	if c.state.MetronomeOn && c.clicker != nil {
		c.clicker.Click()
		c.stats.Clicks++
	}
}
