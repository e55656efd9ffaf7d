package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Fire   key.Binding
	Aim    key.Binding
	Select key.Binding
	Reload key.Binding
	Slot   key.Binding
	Move   key.Binding
	Look   key.Binding
	Pause  key.Binding
	Save   key.Binding
	Load   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Fire:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hold/release fire")),
	Aim:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "toggle aim")),
	Select: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "select")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Slot:   key.NewBinding(key.WithKeys("f", "1", "2", "3", "4", "5"), key.WithHelp("f/1-5", "slot")),
	Move:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "move")),
	Look:   key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "turn")),
	Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Save:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "save loadout")),
	Load:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "load loadout")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Aim, k.Select, k.Reload, k.Slot, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Aim, k.Select, k.Reload, k.Slot},
		{k.Move, k.Look, k.Pause, k.Save, k.Load, k.Quit},
	}
}

// slotIndex maps a slot key to its inventory index; f is slot 0.
func slotIndex(s string) int {
	if s == "f" {
		return 0
	}
	return int(s[0] - '0')
}
