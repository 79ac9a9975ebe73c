package chord

import "strings"

// Quality is the chord type suffix that follows the root.
type Quality string

const (
	QualityMajor     Quality = ""
	QualityDominant7 Quality = "7"
	QualityMinor     Quality = "m"
	QualityMinor7    Quality = "m7"
	QualitySixth     Quality = "6"
	QualityMajor7    Quality = "maj7"
)

// qualities lists every supported quality in allow-list order.
var qualities = []Quality{
	QualityMajor, QualityDominant7, QualityMinor, QualityMinor7, QualitySixth, QualityMajor7,
}

// intervals maps a quality to its semitone offsets from the root.
var intervals = map[Quality][]int{
	QualityMajor:     {0, 4, 7},
	QualityDominant7: {0, 4, 7, 10},
	QualityMinor:     {0, 3, 7},
	QualityMinor7:    {0, 3, 7, 10},
	QualitySixth:     {0, 4, 7, 9},
	QualityMajor7:    {0, 4, 7, 11},
}

// rootPitch maps the natural note letters to pitch classes (C = 0).
var rootPitch = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// noteNames spells pitch classes with sharps.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Qualities returns the supported qualities in display order.
func Qualities() []Quality {
	out := make([]Quality, len(qualities))
	copy(out, qualities)
	return out
}

// Label is a human readable name for the quality.
func (q Quality) Label() string {
	switch q {
	case QualityMajor:
		return "major"
	case QualityDominant7:
		return "dominant 7th"
	case QualityMinor:
		return "minor"
	case QualityMinor7:
		return "minor 7th"
	case QualitySixth:
		return "6th"
	case QualityMajor7:
		return "major 7th"
	}
	return string(q)
}

// Chord is a parsed chord symbol.
type Chord struct {
	Name    Name
	Root    string
	Quality Quality
}

// Parse splits an allow-listed chord name into root and quality.
func Parse(name Name) (Chord, error) {
	if !IsKnown(name) {
		return Chord{}, &UnknownChordError{Name: string(name), Reason: "not in allow-list"}
	}
	s := string(name)
	if _, ok := rootPitch[s[0]]; !ok {
		return Chord{}, &UnknownChordError{Name: s, Reason: "invalid root"}
	}
	suffix := Quality(strings.TrimPrefix(s, s[:1]))
	if _, ok := intervals[suffix]; !ok {
		return Chord{}, &UnknownChordError{Name: s, Reason: "unsupported quality"}
	}
	return Chord{Name: name, Root: s[:1], Quality: suffix}, nil
}

// PitchClasses returns the chord tones as pitch classes, root first.
func (c Chord) PitchClasses() []int {
	root := rootPitch[c.Root[0]]
	steps := intervals[c.Quality]
	out := make([]int, len(steps))
	for i, st := range steps {
		out[i] = (root + st) % 12
	}
	return out
}

// Notes spells the chord tones.
func (c Chord) Notes() []string {
	pcs := c.PitchClasses()
	out := make([]string, len(pcs))
	for i, pc := range pcs {
		out[i] = NoteName(pc)
	}
	return out
}

// NoteName spells a pitch class using sharps.
func NoteName(pc int) string {
	return noteNames[((pc%12)+12)%12]
}
