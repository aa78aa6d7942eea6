package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mobil-koeln/hoverscroll/internal/config"
	"github.com/mobil-koeln/hoverscroll/internal/content"
	"github.com/mobil-koeln/hoverscroll/internal/hoverscroll"
)

type sourceKind int

const (
	sourceList sourceKind = iota
	sourceFile
)

// Model is the root Bubble Tea model hosting one scroll panel.
type Model struct {
	width  int
	height int

	keys   keyMap
	help   help.Model
	zone   *zone.Manager
	scroll hoverscroll.Model

	input  textinput.Model
	adding bool

	source sourceKind
	title  string

	// List source
	items []string

	// File source
	path     string
	language string
	loader   content.Loader
	watcher  *content.Watcher
	err      error
}

func newModel(cfg config.Config, z *zone.Manager) Model {
	ti := textinput.New()
	ti.Placeholder = "New item..."
	ti.CharLimit = 200
	ti.Width = 40

	if z == nil {
		z = zone.New()
	}

	return Model{
		keys:   newKeyMap(),
		help:   help.New(),
		zone:   z,
		scroll: hoverscroll.New(hoverscroll.WithConfig(cfg), hoverscroll.WithZone(z)).Mount(),
		input:  ti,
	}
}

// NewList creates a host showing a list of items.
func NewList(cfg config.Config, items []string, z *zone.Manager) Model {
	m := newModel(cfg, z)
	m.source = sourceList
	m.title = "List"
	m.items = append([]string(nil), items...)
	m.scroll = m.scroll.SetContent(content.JoinItems(m.items))
	return m
}

// NewFile creates a host showing a file loaded by loader. A non-nil watcher
// reloads the file whenever it changes on disk.
func NewFile(cfg config.Config, f content.File, loader content.Loader, w *content.Watcher, z *zone.Manager) Model {
	m := newModel(cfg, z)
	m.source = sourceFile
	m.title = f.Path
	m.path = f.Path
	m.language = f.Language
	m.loader = loader
	m.watcher = w
	m.scroll = m.scroll.SetContent(f.Text)
	return m
}

// Init starts waiting for file changes when following.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForChange(m.watcher)
	}
	return nil
}

// Scroll returns the hosted scroll panel.
func (m Model) Scroll() hoverscroll.Model {
	return m.scroll
}

// Items returns the list items.
func (m Model) Items() []string {
	return m.items
}
