package hoverscroll

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
)

// viewport is the scrollable region: the content lines, the box they are shown
// in and the current scroll offsets. It is the only writer-facing holder of
// scroll state; every write goes through scrollTo so offsets stay in range.
type viewport struct {
	content     string
	lines       []string
	scrollWidth int

	width  int
	height int

	top  int
	left int
}

// setContent replaces the content. It reports whether the content changed,
// which callers treat as the content-size-changed signal.
func (v *viewport) setContent(s string) bool {
	if s == v.content && v.lines != nil {
		return false
	}
	v.content = s
	v.lines = splitLines(s)
	v.scrollWidth = 0
	for _, line := range v.lines {
		if w := ansi.StringWidth(line); w > v.scrollWidth {
			v.scrollWidth = w
		}
	}
	v.clamp()
	return true
}

func (v *viewport) setSize(w, h int) {
	v.width = max(w, 0)
	v.height = max(h, 0)
	v.clamp()
}

func (v *viewport) metrics() geometry.Metrics {
	return geometry.Metrics{
		ClientHeight: v.height,
		ClientWidth:  v.width,
		ScrollHeight: len(v.lines),
		ScrollWidth:  v.scrollWidth,
		ScrollTop:    v.top,
		ScrollLeft:   v.left,
	}
}

func (v *viewport) offset(a geometry.Axis) int {
	if a == geometry.Horizontal {
		return v.left
	}
	return v.top
}

// scrollTo sets the offset along a, clamped into range, and reports whether
// it moved.
func (v *viewport) scrollTo(a geometry.Axis, offset int) bool {
	limit := v.metrics().Extent(a).MaxOffset()
	offset = min(max(offset, 0), limit)
	if offset == v.offset(a) {
		return false
	}
	if a == geometry.Horizontal {
		v.left = offset
	} else {
		v.top = offset
	}
	return true
}

func (v *viewport) scrollBy(a geometry.Axis, delta int) bool {
	return v.scrollTo(a, v.offset(a)+delta)
}

func (v *viewport) clamp() {
	for _, a := range geometry.Axes {
		v.scrollTo(a, v.offset(a))
	}
}

// render returns exactly height lines, each exactly width cells wide.
func (v *viewport) render() []string {
	out := make([]string, v.height)
	for i := range out {
		var line string
		if idx := v.top + i; idx < len(v.lines) {
			line = ansi.Cut(v.lines[idx], v.left, v.left+v.width)
		}
		if pad := v.width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, "\t", "    ")
	}
	return lines
}
