package hoverscroll

import (
	"image"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
	"github.com/mobil-koeln/hoverscroll/internal/logging"
)

const wheelStep = 3

// Update handles mouse, keyboard and timer messages. Messages for another
// widget, or arriving while unmounted, are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.s.mounted {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case hideTimeoutMsg:
		if msg.id != m.id || msg.epoch != m.epoch {
			return m, nil
		}
		m.s.vis[msg.axis].expire(msg.gen, m.s.dragging)
		return m, nil

	case settleMsg:
		if msg.id != m.id || msg.epoch != m.epoch || msg.seq != m.s.settleSeq {
			return m, nil
		}
		if !m.s.dragging {
			m.s.lastSettle = m.currentPosition()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	pt := image.Pt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if a, delta, ok := wheelDelta(msg); ok {
			if !pt.In(m.viewRect()) {
				return m, nil
			}
			return m.scroll(a, delta)
		}
		if msg.Button == tea.MouseButtonLeft {
			return m.pointerDown(pt)
		}

	case tea.MouseActionMotion:
		return m.pointerMove(pt)

	case tea.MouseActionRelease:
		return m.pointerUp(pt)
	}

	return m, nil
}

func wheelDelta(msg tea.MouseMsg) (geometry.Axis, int, bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			return geometry.Horizontal, -wheelStep, true
		}
		return geometry.Vertical, -wheelStep, true
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			return geometry.Horizontal, wheelStep, true
		}
		return geometry.Vertical, wheelStep, true
	case tea.MouseButtonWheelLeft:
		return geometry.Horizontal, -wheelStep, true
	case tea.MouseButtonWheelRight:
		return geometry.Horizontal, wheelStep, true
	}
	return geometry.Vertical, 0, false
}

// pointerDown starts a drag when the press lands on a thumb.
func (m Model) pointerDown(pt image.Point) (Model, tea.Cmd) {
	for _, a := range geometry.Axes {
		thumb := m.thumbRect(a)
		if thumb.Empty() || !pt.In(thumb) {
			continue
		}
		// a new press always starts a new session
		for _, other := range geometry.Axes {
			m.s.drags[other].end()
		}
		m.s.dragging = true
		m.s.vis[a].cancel()
		session := m.s.drags[a].begin(m.viewRect(), thumb, pt)
		logging.Debug("hoverscroll %d: %s drag #%d bounds [%d, %d]",
			m.id, a, session.seq, session.bounds.Start, session.bounds.End)
		return m, nil
	}
	return m, nil
}

// pointerMove drives an active drag and tracks hover over the widget and
// its thumbs.
func (m Model) pointerMove(pt image.Point) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, a := range geometry.Axes {
		offset, ok := m.s.drags[a].move(pt, m.vp.metrics().Extent(a))
		if !ok {
			continue
		}
		if m.vp.scrollTo(a, offset) {
			var cmd tea.Cmd
			m, cmd = m.scrolled()
			cmds = append(cmds, cmd)
		}
	}

	inside := pt.In(m.viewRect())
	switch {
	case inside && !m.s.hovered:
		m.s.hovered = true
		cmds = append(cmds, m.showAll())
	case !inside && m.s.hovered:
		m.s.hovered = false
		m.hideAll()
	}

	for _, a := range geometry.Axes {
		thumb := m.thumbRect(a)
		over := !thumb.Empty() && pt.In(thumb)
		if over && !m.s.overThumb[a] {
			cmds = append(cmds, m.show(a))
		}
		m.s.overThumb[a] = over
	}

	return m, tea.Batch(cmds...)
}

// pointerUp ends the active drag. A release outside the widget hides both
// thumbs; inside, visible thumbs get a fresh hide timer.
func (m Model) pointerUp(pt image.Point) (Model, tea.Cmd) {
	ended := false
	for _, a := range geometry.Axes {
		if m.s.drags[a].end() {
			ended = true
		}
	}
	if !ended {
		return m, nil
	}

	m.s.dragging = false
	m.s.lastSettle = m.currentPosition()
	logging.Debug("hoverscroll %d: drag ended at %+v", m.id, m.s.lastSettle)

	if !pt.In(m.viewRect()) {
		m.s.hovered = false
		m.hideAll()
		return m, nil
	}

	var cmds []tea.Cmd
	for _, a := range geometry.Axes {
		if m.s.vis[a].visible() {
			cmds = append(cmds, m.show(a))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	page := max(m.vp.height, 1)
	metrics := m.vp.metrics()

	switch {
	case key.Matches(msg, m.keys.Up):
		return m.scroll(geometry.Vertical, -1)
	case key.Matches(msg, m.keys.Down):
		return m.scroll(geometry.Vertical, 1)
	case key.Matches(msg, m.keys.Left):
		return m.scroll(geometry.Horizontal, -1)
	case key.Matches(msg, m.keys.Right):
		return m.scroll(geometry.Horizontal, 1)
	case key.Matches(msg, m.keys.PageUp):
		return m.scroll(geometry.Vertical, -page)
	case key.Matches(msg, m.keys.PageDown):
		return m.scroll(geometry.Vertical, page)
	case key.Matches(msg, m.keys.Home):
		return m.scroll(geometry.Vertical, -metrics.ScrollTop)
	case key.Matches(msg, m.keys.End):
		return m.scroll(geometry.Vertical, metrics.Extent(geometry.Vertical).MaxOffset()-metrics.ScrollTop)
	}
	return m, nil
}

// scroll applies a native scroll (wheel or key) and emits the scroll signal
// when the offset actually moved.
func (m Model) scroll(a geometry.Axis, delta int) (Model, tea.Cmd) {
	if !m.vp.scrollBy(a, delta) {
		return m, nil
	}
	return m.scrolled()
}

// scrolled is the scroll signal: thumbs are repositioned at once, both axes
// are shown unless a drag is writing the offsets, and the settle timer is
// restarted.
func (m Model) scrolled() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if !m.s.dragging {
		cmds = append(cmds, m.showAll())
	}
	m.position()

	m.s.settleSeq++
	cmds = append(cmds, settleAfter(m.cfg.SettleDelay(), settleMsg{
		id:    m.id,
		epoch: m.epoch,
		seq:   m.s.settleSeq,
	}))
	return m, tea.Batch(cmds...)
}

func (m *Model) show(a geometry.Axis) tea.Cmd {
	gen := m.s.vis[a].show()
	return hideAfter(m.cfg.HideDelay(), hideTimeoutMsg{
		id:    m.id,
		epoch: m.epoch,
		axis:  a,
		gen:   gen,
	})
}

func (m *Model) showAll() tea.Cmd {
	return tea.Batch(m.show(geometry.Horizontal), m.show(geometry.Vertical))
}

func (m *Model) hideAll() {
	for _, a := range geometry.Axes {
		m.s.vis[a].hide(m.s.dragging)
	}
}
