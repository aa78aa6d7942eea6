package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
)

// View renders the entire TUI and registers the panel's zone.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	panel := m.renderPanel()
	footer := m.renderFooter()

	return m.zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, panel, footer))
}

func (m Model) renderHeader() string {
	title := styleTitle.Render(truncate(m.title, max(m.width/2, 1)))

	info := ""
	if m.language != "" {
		info = styleMuted.Render(" " + m.language)
	}

	metrics := m.scroll.Metrics()
	pos := fmt.Sprintf("line %d/%d  col %d/%d",
		min(metrics.ScrollTop+1, metrics.ScrollHeight), metrics.ScrollHeight,
		metrics.ScrollLeft, metrics.Extent(geometry.Horizontal).MaxOffset())
	if m.scroll.Dragging() {
		pos = "dragging  " + pos
	}

	left := title + info
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(pos), 1)
	return left + fmt.Sprintf("%*s", gap, "") + styleHeader.Render(pos)
}

func (m Model) renderPanel() string {
	width := m.scroll.Width()
	height := m.scroll.Height()

	body := m.scroll.View()
	switch {
	case !m.scroll.Mounted():
		body = styleMuted.Render(" panel unmounted, press u to mount")
	case m.err != nil:
		body = styleError.Render(" Error: "+m.err.Error()) + "\n" + body
	}

	return stylePanel.
		Width(width).
		Height(height).
		MaxHeight(height + borderSize).
		Render(body)
}

func (m Model) renderFooter() string {
	bar := styleStatusBar.Width(m.width).Render(" " + m.help.View(m.keys.forSource(m.source)))
	if !m.adding {
		return bar
	}
	input := styleHeader.Render("Add: ") + m.input.View()
	return lipgloss.JoinVertical(lipgloss.Left, input, bar)
}

// truncate shortens s to width cells, ending with an ellipsis when cut.
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
