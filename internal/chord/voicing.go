package chord

import "slices"

const (
	// MaxFret is the highest fret the voicing search considers.
	MaxFret = 12

	// maxStretch is the largest distance between the lowest and highest
	// fretted positions in a voicing (four frets under four fingers).
	maxStretch = 3
)

// Position is one string of a voicing. Fret 0 is an open string; Finger 0
// means no finger is placed.
type Position struct {
	String int
	Fret   int
	Finger int
}

// Fingering is a playable voicing of a chord on a tuning, one Position per
// string in string order.
type Fingering struct {
	Chord     Name
	Tuning    string
	Positions []Position
}

// Frets returns the fret of every string in string order.
func (f Fingering) Frets() []int {
	out := make([]int, len(f.Positions))
	for i, p := range f.Positions {
		out[i] = p.Fret
	}
	return out
}

// MaxFret returns the highest fret used by the voicing.
func (f Fingering) MaxFret() int {
	hi := 0
	for _, p := range f.Positions {
		hi = max(hi, p.Fret)
	}
	return hi
}

// Resolver turns a chord name into a fingering on a tuning.
type Resolver func(name Name, tuning Tuning) (Fingering, error)

// Resolve finds the easiest voicing of name on tuning. Every string is
// played, every chord tone sounds, and no non-chord tone sounds. Candidates
// are ranked by highest fret, then fretted string count, then fret sum.
func Resolve(name Name, tuning Tuning) (Fingering, error) {
	c, err := Parse(name)
	if err != nil {
		return Fingering{}, err
	}
	if len(tuning.Strings) == 0 {
		return Fingering{}, &UnknownChordError{Name: string(name), Reason: "empty tuning"}
	}

	tones := c.PitchClasses()
	options := make([][]int, len(tuning.Strings))
	for i, open := range tuning.Strings {
		for fret := 0; fret <= MaxFret; fret++ {
			if slices.Contains(tones, (open+fret)%12) {
				options[i] = append(options[i], fret)
			}
		}
	}

	var best []int
	current := make([]int, len(tuning.Strings))
	var search func(str int)
	search = func(str int) {
		if str == len(current) {
			if !playable(current) || !coversAll(current, tuning, tones) {
				return
			}
			if best == nil || voicingLess(current, best) {
				best = slices.Clone(current)
			}
			return
		}
		for _, fret := range options[str] {
			current[str] = fret
			search(str + 1)
		}
	}
	search(0)

	if best == nil {
		return Fingering{}, &UnknownChordError{Name: string(name), Reason: "no playable voicing on " + tuning.Name + " tuning"}
	}
	return Fingering{
		Chord:     name,
		Tuning:    tuning.Name,
		Positions: assignFingers(best),
	}, nil
}

// playable reports whether the fretted positions fit under one hand.
func playable(frets []int) bool {
	lo, hi := 0, 0
	for _, f := range frets {
		if f == 0 {
			continue
		}
		if lo == 0 || f < lo {
			lo = f
		}
		hi = max(hi, f)
	}
	return lo == 0 || hi-lo <= maxStretch
}

func coversAll(frets []int, tuning Tuning, tones []int) bool {
	for _, tone := range tones {
		found := false
		for i, f := range frets {
			if (tuning.Strings[i]+f)%12 == tone {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// voicingLess orders voicings from easiest to hardest.
func voicingLess(a, b []int) bool {
	if ka, kb := slices.Max(a), slices.Max(b); ka != kb {
		return ka < kb
	}
	if ka, kb := fretted(a), fretted(b); ka != kb {
		return ka < kb
	}
	if ka, kb := sum(a), sum(b); ka != kb {
		return ka < kb
	}
	return slices.Compare(a, b) < 0
}

func fretted(frets []int) int {
	n := 0
	for _, f := range frets {
		if f > 0 {
			n++
		}
	}
	return n
}

func sum(frets []int) int {
	n := 0
	for _, f := range frets {
		n += f
	}
	return n
}

// assignFingers places finger 1 on the lowest fretted position and counts
// up by fret distance. Open strings get no finger.
func assignFingers(frets []int) []Position {
	lo := 0
	for _, f := range frets {
		if f > 0 && (lo == 0 || f < lo) {
			lo = f
		}
	}
	out := make([]Position, len(frets))
	for i, f := range frets {
		out[i] = Position{String: i, Fret: f}
		if f > 0 {
			out[i].Finger = min(f-lo+1, 4)
		}
	}
	return out
}
