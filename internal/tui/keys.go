package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mobil-koeln/hoverscroll/internal/hoverscroll"
)

type keyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Append key.Binding
	Add    key.Binding
	Reload key.Binding
	Toggle key.Binding
	Scroll hoverscroll.KeyMap
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Append: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append item")),
		Add:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add item")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Toggle: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "toggle panel")),
		Scroll: hoverscroll.DefaultKeyMap(),
	}
}

// forSource enables only the bindings that apply to the source kind.
func (k keyMap) forSource(s sourceKind) keyMap {
	k.Append.SetEnabled(s == sourceList)
	k.Add.SetEnabled(s == sourceList)
	k.Reload.SetEnabled(s == sourceFile)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll.Down, k.Scroll.Right, k.Append, k.Add, k.Reload, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.Scroll.FullHelp(), []key.Binding{k.Append, k.Add, k.Reload, k.Toggle, k.Help, k.Quit})
}
