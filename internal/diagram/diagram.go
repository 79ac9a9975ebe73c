// Package diagram turns chord names into fretboard diagrams.
package diagram

import (
	"github.com/abhisek/strum/internal/chord"
)

// Config controls diagram geometry and the tuning chords are voiced on.
type Config struct {
	Tuning chord.Tuning

	// Base is the offset of the first string and of fret 0, in pixels.
	Base int

	// Spacing is the distance between adjacent strings and frets.
	Spacing int

	// Radius is the marker circle radius.
	Radius int

	// MinFrets is the minimum number of frets drawn below the nut.
	MinFrets int
}

// DefaultConfig returns the standard diagram geometry on C tuning.
func DefaultConfig() Config {
	return Config{
		Tuning:   chord.TuningC,
		Base:     50,
		Spacing:  40,
		Radius:   13,
		MinFrets: 4,
	}
}

// Marker is one finger placed on the fretboard.
type Marker struct {
	String int
	Fret   int
	X      int
	Y      int
	Radius int
	Label  string
}

// Diagram is the renderable form of one chord voicing.
type Diagram struct {
	Chord     chord.Name
	Tuning    chord.Tuning
	Fingering chord.Fingering
	Markers   []Marker

	cfg Config
}

// Frets returns the number of frets the diagram spans.
func (d Diagram) Frets() int {
	return max(d.cfg.MinFrets, d.Fingering.MaxFret())
}

// Renderer resolves chords and lays out their markers.
type Renderer struct {
	cfg     Config
	resolve chord.Resolver
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolver replaces the chord-theory collaborator.
func WithResolver(r chord.Resolver) Option {
	return func(rr *Renderer) {
		rr.resolve = r
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(cfg Config, opts ...Option) *Renderer {
	r := &Renderer{cfg: cfg, resolve: chord.Resolve}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render resolves name and emits one marker per fretted string. Open strings
// get no marker. Names outside the allow-list fail with
// *chord.UnknownChordError.
func (r *Renderer) Render(name chord.Name) (Diagram, error) {
	if !chord.IsKnown(name) {
		return Diagram{}, &chord.UnknownChordError{Name: string(name), Reason: "not in allow-list"}
	}
	fingering, err := r.resolve(name, r.cfg.Tuning)
	if err != nil {
		return Diagram{}, err
	}

	markers := make([]Marker, 0, len(fingering.Positions))
	for _, p := range fingering.Positions {
		if p.Fret <= 0 {
			continue
		}
		markers = append(markers, Marker{
			String: p.String,
			Fret:   p.Fret,
			X:      r.cfg.Base + p.String*r.cfg.Spacing,
			Y:      r.cfg.Base + p.Fret*r.cfg.Spacing,
			Radius: r.cfg.Radius,
			Label:  fingerLabel(p.Finger),
		})
	}

	return Diagram{
		Chord:     name,
		Tuning:    r.cfg.Tuning,
		Fingering: fingering,
		Markers:   markers,
		cfg:       r.cfg,
	}, nil
}

func fingerLabel(finger int) string {
	if finger <= 0 {
		return ""
	}
	return string(rune('0' + finger))
}
