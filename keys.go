package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Home      key.Binding
	Submit    key.Binding
	Skip      key.Binding
	AdHint    key.Binding
	AdPowerUp key.Binding
	Hints     []key.Binding // in hint.Types order
	PowerUps  []key.Binding // in powerup.All order
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Skip:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "skip")),
		AdHint:    key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "free hint")),
		AdPowerUp: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "earn power-up")),
		Hints: []key.Binding{
			key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "category")),
			key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "definition")),
			key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "shuffle")),
			key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "letters")),
		},
		PowerUps: []key.Binding{
			key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "time freeze")),
			key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "double points")),
			key.NewBinding(key.WithKeys("f7"), key.WithHelp("F7", "letter reveal")),
			key.NewBinding(key.WithKeys("f8"), key.WithHelp("F8", "word bank")),
			key.NewBinding(key.WithKeys("f9"), key.WithHelp("F9", "shuffle master")),
		},
	}
}

// bindingIndex returns the position of the binding msg matches, or -1.
func bindingIndex(msg tea.KeyMsg, bindings []key.Binding) int {
	for i, b := range bindings {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}
