package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Skip    key.Binding
	Subject key.Binding
	Level   key.Binding
	Theme   key.Binding
	Report  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Skip:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Subject: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "subject")),
		Level:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "focus level")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Report:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pdf report")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Skip, k.Subject, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Skip},
		{k.Subject, k.Level, k.Theme},
		{k.Report, k.Help, k.Quit},
	}
}
