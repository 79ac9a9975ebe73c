package practice

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/strum/internal/ui/components"
)

type keyMap struct {
	Toggle    key.Binding
	Slower    key.Binding
	Faster    key.Binding
	Diagram   key.Binding
	Metronome key.Binding
	Restart   key.Binding
	Back      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("space", "toggle chord"),
		),
		Slower: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "faster"),
		),
		Diagram: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "diagram"),
		),
		Metronome: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "metronome"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: components.BackKey,
	}
}
