package hoverscroll

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
)

// View renders the viewport with the visible thumbs drawn over its right
// column and bottom row.
func (m Model) View() string {
	if m.vp.width == 0 || m.vp.height == 0 {
		return ""
	}

	lines := m.vp.render()
	if m.s.mounted {
		if m.ThumbVisible(geometry.Horizontal) {
			m.overlayHorizontal(lines)
		}
		if m.ThumbVisible(geometry.Vertical) {
			m.overlayVertical(lines)
		}
	}

	out := strings.Join(lines, "\n")
	if m.zone != nil {
		out = m.zone.Mark(m.ZoneID(), out)
	}
	return out
}

func (m Model) overlayVertical(lines []string) {
	th := m.s.thumbs[geometry.Vertical]
	glyph := m.styles.Thumb.Render(m.styles.VerticalGlyph)
	col := m.vp.width - 1
	for y := th.Offset; y < th.Offset+th.Size && y < len(lines); y++ {
		lines[y] = ansi.Cut(lines[y], 0, col) + glyph
	}
}

func (m Model) overlayHorizontal(lines []string) {
	th := m.s.thumbs[geometry.Horizontal]
	row := len(lines) - 1
	end := min(th.Offset+th.Size, m.vp.width)
	bar := m.styles.Thumb.Render(strings.Repeat(m.styles.HorizontalGlyph, end-th.Offset))
	lines[row] = ansi.Cut(lines[row], 0, th.Offset) + bar + ansi.Cut(lines[row], end, m.vp.width)
}
