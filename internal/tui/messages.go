package tui

import "github.com/mobil-koeln/hoverscroll/internal/content"

// fileChangedMsg is sent when the followed file was written.
type fileChangedMsg struct{}

// fileLoadedMsg carries a reloaded file back to the model.
type fileLoadedMsg struct {
	file content.File
	err  error
}
