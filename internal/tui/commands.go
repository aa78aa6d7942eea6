package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/hoverscroll/internal/content"
)

// waitForChange blocks until the watcher reports a change.
func waitForChange(w *content.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// reloadFile returns a tea.Cmd that loads the file again.
func reloadFile(loader content.Loader, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := loader.Load(path)
		return fileLoadedMsg{file: f, err: err}
	}
}
