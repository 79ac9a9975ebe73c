package practice

import (
	"slices"
	"time"

	"github.com/abhisek/strum/internal/chord"
)

// State is the practice session as the view sees it.
type State struct {
	// IntervalSeconds is the time between chord changes.
	IntervalSeconds float64

	// ActiveChords is the set random picks are drawn from, in the order
	// chords were added.
	ActiveChords []chord.Name

	// CurrentChord is the chord being practiced. Only Advance changes it.
	CurrentChord chord.Name

	// ShowDiagram is true when the fingering diagram is displayed.
	ShowDiagram bool

	// MetronomeOn is true when every chord change clicks.
	MetronomeOn bool
}

// Contains reports whether name is in the active set.
func (s State) Contains(name chord.Name) bool {
	return slices.Contains(s.ActiveChords, name)
}

// Interval returns IntervalSeconds as a duration.
func (s State) Interval() time.Duration {
	return secondsToDuration(s.IntervalSeconds)
}

// TimerHandle identifies the single live recurring timer. A timer fire
// carrying any other Generation belongs to a replaced timer.
type TimerHandle struct {
	Generation uint64
	Period     time.Duration
}

// Stats are running counters for the practice log.
type Stats struct {
	StartedAt time.Time
	Advances  int
	Clicks    int
	Skipped   int // fires with an empty active set
}

// Config holds the initial session settings.
type Config struct {
	IntervalSeconds    float64
	MinIntervalSeconds float64
	IntervalStep       float64
	Chords             []chord.Name
	CurrentChord       chord.Name
	ShowDiagram        bool
	Metronome          bool
}

// DefaultConfig returns the standard session: a two second interval in
// quarter-second steps with a half-second floor.
func DefaultConfig() Config {
	return Config{
		IntervalSeconds:    2.0,
		MinIntervalSeconds: 0.5,
		IntervalStep:       0.25,
		Chords:             chord.DefaultActive(),
		CurrentChord:       "C",
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
