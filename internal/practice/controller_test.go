package practice

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/strum/internal/chord"
)

// countingClicker records how often Click was called.
type countingClicker struct {
	clicks int
}

func (c *countingClicker) Click() { c.clicks++ }

func newTestController(t *testing.T, opts ...Option) (*Controller, *countingClicker) {
	t.Helper()
	cl := &countingClicker{}
	base := []Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClicker(cl),
	}
	return New(DefaultConfig(), append(base, opts...)...), cl
}

func TestNewDefaults(t *testing.T) {
	c, _ := newTestController(t)
	s := c.State()

	assert.Equal(t, 2.0, s.IntervalSeconds)
	assert.Equal(t, []chord.Name{"C", "F", "G7", "Am", "G", "D", "A"}, s.ActiveChords)
	assert.Equal(t, chord.Name("C"), s.CurrentChord)
	assert.False(t, s.ShowDiagram)
	assert.False(t, s.MetronomeOn)

	h := c.Timer()
	assert.Equal(t, uint64(1), h.Generation)
	assert.Equal(t, 2*time.Second, h.Period)
}

func TestNewSanitizesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chords = []chord.Name{"C", "Cdim", "C", "G7"}
	cfg.CurrentChord = "H"
	cfg.IntervalSeconds = 0.1

	c := New(cfg)
	s := c.State()

	assert.Equal(t, []chord.Name{"C", "G7"}, s.ActiveChords)
	assert.Equal(t, chord.Name("C"), s.CurrentChord)
	assert.Equal(t, 0.5, s.IntervalSeconds)
	assert.Equal(t, 500*time.Millisecond, c.Timer().Period)
}

func TestNewZeroFloorAndStepUseDefaults(t *testing.T) {
	c := New(Config{Chords: []chord.Name{"C", "G"}})

	assert.Equal(t, 0.5, c.State().IntervalSeconds)
	assert.Equal(t, 500*time.Millisecond, c.Timer().Period)

	h := c.IncreaseInterval()
	assert.Equal(t, 0.75, c.State().IntervalSeconds)
	assert.Equal(t, 750*time.Millisecond, h.Period)

	c.DecreaseInterval()
	c.DecreaseInterval()
	assert.Equal(t, 0.5, c.State().IntervalSeconds)
}

func TestStateIsACopy(t *testing.T) {
	c, _ := newTestController(t)
	s := c.State()
	s.ActiveChords[0] = "B7"
	s.CurrentChord = "B7"

	assert.Equal(t, chord.Name("C"), c.State().ActiveChords[0])
	assert.Equal(t, chord.Name("C"), c.State().CurrentChord)
}

func TestToggleChordMembership(t *testing.T) {
	c, _ := newTestController(t)
	rng := rand.New(rand.NewPCG(7, 7))
	all := chord.All()

	for i := 0; i < 500; i++ {
		name := all[rng.IntN(len(all))]
		before := c.State().Contains(name)

		set, err := c.ToggleChord(name)
		require.NoError(t, err)

		after := c.State().Contains(name)
		assert.Equal(t, !before, after, "toggle %s", name)
		assert.Equal(t, c.State().ActiveChords, set)
	}
}

func TestToggleChordRemoveAndRestore(t *testing.T) {
	c, _ := newTestController(t)

	set, err := c.ToggleChord("C")
	require.NoError(t, err)
	assert.NotContains(t, set, chord.Name("C"))
	assert.Len(t, set, 6)

	set, err = c.ToggleChord("C")
	require.NoError(t, err)
	assert.Contains(t, set, chord.Name("C"))
	assert.Len(t, set, 7)
}

func TestToggleChordRejectsUnknown(t *testing.T) {
	c, _ := newTestController(t)

	set, err := c.ToggleChord("Cdim")
	var unk *chord.UnknownChordError
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, chord.DefaultActive(), set)
	assert.Equal(t, chord.DefaultActive(), c.State().ActiveChords)
}

func TestToggleChordCanEmptySet(t *testing.T) {
	c, _ := newTestController(t)
	for _, n := range chord.DefaultActive() {
		_, err := c.ToggleChord(n)
		require.NoError(t, err)
	}
	assert.Empty(t, c.State().ActiveChords)
}

func TestAdvancePicksFromActiveSet(t *testing.T) {
	c, _ := newTestController(t)
	active := c.State().ActiveChords

	seen := make(map[chord.Name]int)
	for i := 0; i < 700; i++ {
		c.Advance()
		cur := c.State().CurrentChord
		require.Contains(t, active, cur)
		seen[cur]++
	}
	// Every chord should come up with 700 uniform draws over 7 chords.
	assert.Len(t, seen, len(active))
	assert.Equal(t, 700, c.Stats().Advances)
}

func TestAdvanceSingleChord(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chords = []chord.Name{"Bm7"}
	c := New(cfg)

	c.Advance()
	assert.Equal(t, chord.Name("Bm7"), c.State().CurrentChord)
}

func TestAdvanceEmptySetKeepsChord(t *testing.T) {
	c, cl := newTestController(t)
	c.Advance()
	prev := c.State().CurrentChord

	for _, n := range c.State().ActiveChords {
		_, err := c.ToggleChord(n)
		require.NoError(t, err)
	}
	c.ToggleMetronome()

	c.Advance()
	assert.Equal(t, prev, c.State().CurrentChord)
	assert.Equal(t, 0, cl.clicks)
	assert.Equal(t, 1, c.Stats().Skipped)
}

func TestMetronomeClicks(t *testing.T) {
	c, cl := newTestController(t)

	assert.True(t, c.ToggleMetronome())
	c.Advance()
	assert.Equal(t, 1, cl.clicks)

	assert.False(t, c.ToggleMetronome())
	c.Advance()
	assert.Equal(t, 1, cl.clicks)
	assert.Equal(t, 1, c.Stats().Clicks)
}

func TestMetronomeWithoutClicker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metronome = true
	c := New(cfg)

	assert.NotPanics(t, c.Advance)
	assert.Equal(t, 0, c.Stats().Clicks)
}

func TestToggleDiagram(t *testing.T) {
	c, cl := newTestController(t)
	before := c.State()

	assert.True(t, c.ToggleDiagram())
	assert.True(t, c.State().ShowDiagram)
	assert.False(t, c.ToggleDiagram())

	after := c.State()
	assert.Equal(t, before, after)
	assert.Equal(t, 0, cl.clicks)
}

func TestIncreaseInterval(t *testing.T) {
	c, _ := newTestController(t)

	c.IncreaseInterval()
	h := c.IncreaseInterval()

	assert.Equal(t, 2.5, c.State().IntervalSeconds)
	assert.Equal(t, 2500*time.Millisecond, h.Period)
	assert.Equal(t, uint64(3), h.Generation)
	assert.Equal(t, h, c.Timer())
}

func TestDecreaseIntervalFloor(t *testing.T) {
	c, _ := newTestController(t)

	for i := 0; i < 6; i++ {
		c.DecreaseInterval()
	}
	assert.Equal(t, 0.5, c.State().IntervalSeconds)

	gen := c.Timer().Generation
	h := c.DecreaseInterval()
	assert.Equal(t, 0.5, c.State().IntervalSeconds)
	assert.Equal(t, 500*time.Millisecond, h.Period)
	assert.Equal(t, gen+1, h.Generation, "timer restarts even at the floor")
}

func TestFireIgnoresStaleTimer(t *testing.T) {
	c, _ := newTestController(t)
	old := c.Timer()

	live := c.IncreaseInterval()
	require.NotEqual(t, old.Generation, live.Generation)

	assert.False(t, c.Fire(old.Generation))
	assert.Equal(t, 0, c.Stats().Advances)

	assert.True(t, c.Fire(live.Generation))
	assert.Equal(t, 1, c.Stats().Advances)
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(DefaultConfig(), WithRand(rand.New(rand.NewPCG(42, 0))))
	b := New(DefaultConfig(), WithRand(rand.New(rand.NewPCG(42, 0))))

	for i := 0; i < 50; i++ {
		a.Advance()
		b.Advance()
		require.Equal(t, a.State().CurrentChord, b.State().CurrentChord)
	}
}

func TestStatsStartedAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	c := New(DefaultConfig(), WithClock(func() time.Time { return start }))
	assert.Equal(t, start, c.Stats().StartedAt)
}

func TestToggleChordLogsActiveSet(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c, _ := newTestController(t, WithLogger(zap.New(core)))

	_, err := c.ToggleChord("Em")
	require.NoError(t, err)

	entries := logs.FilterMessage("active chords changed").All()
	require.Len(t, entries, 1)
	got := entries[0].ContextMap()["chords"]
	assert.Equal(t, []interface{}{"C", "F", "G7", "Am", "G", "D", "A", "Em"}, got)
}
