package chord

import "slices"

// Name is a chord symbol such as "C", "G7" or "Fmaj7".
type Name string

func (n Name) String() string { return string(n) }

// allowList holds every chord the trainer knows, grouped by quality.
var allowList = [...]Name{
	"C", "D", "E", "F", "G", "A", "B",
	"C7", "D7", "E7", "F7", "G7", "A7", "B7",
	"Cm", "Dm", "Em", "Fm", "Gm", "Am", "Bm",
	"Cm7", "Dm7", "Em7", "Fm7", "Gm7", "Am7", "Bm7",
	"C6", "D6", "E6", "F6", "G6", "A6", "B6",
	"Cmaj7", "Dmaj7", "Emaj7", "Fmaj7", "Gmaj7", "Amaj7", "Bmaj7",
}

// defaultActive is the chord set a fresh session starts with.
var defaultActive = []Name{"C", "F", "G7", "Am", "G", "D", "A"}

// All returns the allow-list in display order.
func All() []Name {
	return slices.Clone(allowList[:])
}

// DefaultActive returns the chords a new session practices.
func DefaultActive() []Name {
	return slices.Clone(defaultActive)
}

// IsKnown reports whether name is on the allow-list.
func IsKnown(name Name) bool {
	return slices.Contains(allowList[:], name)
}

// ParseNames converts raw strings into chord names, rejecting any that are
// not on the allow-list.
func ParseNames(raw []string) ([]Name, error) {
	names := make([]Name, 0, len(raw))
	for _, r := range raw {
		n := Name(r)
		if !IsKnown(n) {
			return nil, &UnknownChordError{Name: r, Reason: "not in allow-list"}
		}
		names = append(names, n)
	}
	return names, nil
}

// Strings converts names back to plain strings.
func Strings(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
