package chord

import (
	"fmt"
	"strings"
)

// Tuning assigns a pitch class to each open string. String 0 is the string
// nearest the player's chin, matching the usual left-to-right chord chart.
type Tuning struct {
	Name    string
	Strings []int
}

var (
	// TuningC is standard soprano/concert/tenor tuning: G C E A.
	TuningC = Tuning{Name: "C", Strings: []int{7, 0, 4, 9}}
	// TuningD is the older D tuning: A D F# B.
	TuningD = Tuning{Name: "D", Strings: []int{9, 2, 6, 11}}
	// TuningG is baritone tuning: D G B E.
	TuningG = Tuning{Name: "G", Strings: []int{2, 7, 11, 4}}
)

var tunings = []Tuning{TuningC, TuningD, TuningG}

// Tunings returns all supported tunings.
func Tunings() []Tuning {
	out := make([]Tuning, len(tunings))
	copy(out, tunings)
	return out
}

// ParseTuning looks a tuning up by name, case-insensitively.
func ParseTuning(s string) (Tuning, error) {
	for _, t := range tunings {
		if strings.EqualFold(t.Name, s) {
			return t, nil
		}
	}
	return Tuning{}, fmt.Errorf("unknown tuning %q (want one of C, D, G)", s)
}

func (t Tuning) String() string { return t.Name }

// NoteNames spells the open strings.
func (t Tuning) NoteNames() []string {
	out := make([]string, len(t.Strings))
	for i, pc := range t.Strings {
		out[i] = NoteName(pc)
	}
	return out
}
