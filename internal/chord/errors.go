package chord

import "fmt"

// UnknownChordError indicates a chord name that cannot be resolved to a
// fingering, either because it is not on the allow-list or because no
// playable voicing exists on the requested tuning.
type UnknownChordError struct {
	Name   string
	Reason string
}

func (e *UnknownChordError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unknown chord %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("unknown chord %q", e.Name)
}
