package hoverscroll

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// hideAfter returns a tea.Cmd that delivers msg once the hide delay elapses.
func hideAfter(d time.Duration, msg hideTimeoutMsg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// settleAfter returns a tea.Cmd that delivers msg once the settle delay elapses.
func settleAfter(d time.Duration, msg settleMsg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
