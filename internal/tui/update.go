package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/hoverscroll/internal/content"
	"github.com/mobil-koeln/hoverscroll/internal/logging"
)

const (
	headerHeight = 1
	borderSize   = 2
	inputChrome  = len("Add: > ") + 1
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.scroll, cmd = m.scroll.Update(msg)
		return m, cmd

	case fileChangedMsg:
		return m, tea.Batch(reloadFile(m.loader, m.path), waitForChange(m.watcher))

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.scroll, cmd = m.scroll.Update(msg)
	cmds = append(cmds, cmd)
	if m.adding {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// layout sizes the scroll panel to fill the space between the header and
// the footer, inside the panel border.
func (m *Model) layout() {
	// status bar and input line must stay single-row
	m.help.Width = max(m.width-1, 0)
	m.input.Width = max(m.width-inputChrome, 1)

	footer := lipgloss.Height(m.renderFooter())
	width := max(m.width-borderSize, 0)
	height := max(m.height-headerHeight-borderSize-footer, 0)
	m.scroll = m.scroll.SetSize(width, height).SetOrigin(1, headerHeight+1)
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	m.err = msg.err
	if msg.err != nil {
		logging.WithError(msg.err, "reload "+m.path)
		return m, nil
	}
	m.language = msg.file.Language
	m.scroll = m.scroll.SetContent(msg.file.Text)
	logging.Debug("reloaded %s (%d bytes)", m.path, len(msg.file.Text))
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleInputKeys(msg)
	}

	keys := m.keys.forSource(m.source)
	switch {
	case key.Matches(msg, keys.Quit):
		m.scroll = m.scroll.Unmount()
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, keys.Append):
		next := content.DemoItems(len(m.items) + 1)
		m.setItems(append(m.items, next[len(next)-1]))
		return m, nil

	case key.Matches(msg, keys.Add):
		m.adding = true
		m.input.SetValue("")
		m.layout()
		return m, m.input.Focus()

	case key.Matches(msg, keys.Reload):
		return m, reloadFile(m.loader, m.path)

	case key.Matches(msg, keys.Toggle):
		if m.scroll.Mounted() {
			m.scroll = m.scroll.Unmount()
		} else {
			m.scroll = m.scroll.Mount()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.scroll, cmd = m.scroll.Update(msg)
	return m, cmd
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if item := strings.TrimSpace(m.input.Value()); item != "" {
			m.setItems(append(m.items, item))
		}
		m.closeInput()
		return m, nil

	case "esc":
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.input.Blur()
	m.layout()
}

// setItems replaces the list; the panel recomputes its thumbs for the new
// content even when its size is unchanged.
func (m *Model) setItems(items []string) {
	m.items = items
	m.scroll = m.scroll.SetContent(content.JoinItems(m.items))
}
