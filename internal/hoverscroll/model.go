package hoverscroll

import (
	"fmt"
	"image"
	"sync/atomic"

	zone "github.com/lrstanley/bubblezone"
	"github.com/mobil-koeln/hoverscroll/internal/config"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
	"github.com/mobil-koeln/hoverscroll/internal/logging"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Position is a pair of scroll offsets.
type Position struct {
	Top  int
	Left int
}

// state is everything that only exists while the widget is mounted.
type state struct {
	mounted bool

	resize resizeWatcher
	drags  [2]dragController
	vis    [2]visibility
	thumbs [2]geometry.Thumb

	dragging   bool
	hovered    bool
	overThumb  [2]bool
	settleSeq  int
	lastSettle Position
}

func newState() state {
	s := state{mounted: true}
	for _, a := range geometry.Axes {
		s.drags[a].axis = a
		s.vis[a].axis = a
	}
	return s
}

// Model is a scrollable viewport with auto-hiding, draggable scrollbar thumbs
// on both axes.
type Model struct {
	id     int
	epoch  int
	cfg    config.Config
	keys   KeyMap
	styles Styles
	zone   *zone.Manager

	origin image.Point
	vp     viewport
	s      state
}

// Option configures a Model.
type Option func(*Model)

// WithConfig sets timing and appearance. Styles are rebuilt from it.
func WithConfig(cfg config.Config) Option {
	return func(m *Model) {
		m.cfg = cfg
		m.styles = DefaultStyles(cfg)
	}
}

// WithKeyMap replaces the keyboard bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithStyles replaces the thumb styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithZone lets the widget find its own screen origin through a shared zone
// manager. The host must Scan its final view with the same manager.
func WithZone(z *zone.Manager) Option {
	return func(m *Model) { m.zone = z }
}

// New creates an unmounted widget.
func New(opts ...Option) Model {
	cfg := config.Default()
	m := Model{
		id:     nextID(),
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(cfg),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.vp.setContent("")
	return m
}

// ID returns the widget's unique id.
func (m Model) ID() int {
	return m.id
}

// ZoneID returns the bubblezone id the widget marks its view with.
func (m Model) ZoneID() string {
	return fmt.Sprintf("hoverscroll-%d", m.id)
}

// Mount creates the instance state and attaches the resize watcher. Mounting
// a mounted widget does nothing.
func (m Model) Mount() Model {
	if m.s.mounted {
		return m
	}
	m.epoch++
	m.s = newState()
	m.s.resize.attach()
	if m.s.resize.observe(m.vp.width, m.vp.height) {
		m.measure()
	}
	logging.Debug("hoverscroll %d mounted (%dx%d)", m.id, m.vp.width, m.vp.height)
	return m
}

// Unmount drops the instance state. Pending timers become stale and every
// later message is ignored until the next Mount.
func (m Model) Unmount() Model {
	if !m.s.mounted {
		return m
	}
	m.s.resize.detach()
	m.s = state{}
	m.epoch++
	logging.Debug("hoverscroll %d unmounted", m.id)
	return m
}

// Mounted reports whether the widget has live state.
func (m Model) Mounted() bool {
	return m.s.mounted
}

// SetSize sets the box the viewport occupies.
func (m Model) SetSize(width, height int) Model {
	m.vp.setSize(width, height)
	if m.s.mounted && m.s.resize.observe(m.vp.width, m.vp.height) {
		m.measure()
	}
	return m
}

// SetOrigin sets the screen cell of the widget's top-left corner. It is used
// for pointer hit-testing when no zone manager resolves the origin.
func (m Model) SetOrigin(x, y int) Model {
	m.origin = image.Pt(x, y)
	return m
}

// SetContent replaces the child content. A change in content always forces a
// geometry recompute, even when the box size stays the same.
func (m Model) SetContent(s string) Model {
	if m.vp.setContent(s) && m.s.mounted {
		m.measure()
	}
	return m
}

// Content returns the current child content.
func (m Model) Content() string {
	return m.vp.content
}

// Width returns the box width.
func (m Model) Width() int {
	return m.vp.width
}

// Height returns the box height.
func (m Model) Height() int {
	return m.vp.height
}

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Metrics returns the current viewport metrics.
func (m Model) Metrics() geometry.Metrics {
	return m.vp.metrics()
}

// Thumb returns the last computed thumb geometry for the axis. An unmounted
// widget reports a zero thumb.
func (m Model) Thumb(a geometry.Axis) geometry.Thumb {
	return m.s.thumbs[a]
}

// VerticalThumb returns the vertical thumb geometry.
func (m Model) VerticalThumb() geometry.Thumb {
	return m.Thumb(geometry.Vertical)
}

// HorizontalThumb returns the horizontal thumb geometry.
func (m Model) HorizontalThumb() geometry.Thumb {
	return m.Thumb(geometry.Horizontal)
}

// Opacity returns the axis opacity, 0 or 1.
func (m Model) Opacity(a geometry.Axis) int {
	return m.s.vis[a].opacity
}

// ThumbVisible reports whether the axis thumb is drawn: it must be shown and
// the axis must overflow.
func (m Model) ThumbVisible(a geometry.Axis) bool {
	return m.s.vis[a].visible() && m.s.thumbs[a].Visible()
}

// Dragging reports whether a thumb drag is in progress.
func (m Model) Dragging() bool {
	return m.s.dragging
}

// LastKnownPosition returns the settled scroll position.
func (m Model) LastKnownPosition() Position {
	return m.s.lastSettle
}

// measure recomputes thumb sizes and offsets for both axes.
func (m *Model) measure() {
	metrics := m.vp.metrics()
	for _, a := range geometry.Axes {
		m.s.thumbs[a] = geometry.Compute(metrics.Extent(a), m.cfg.MinThumb)
	}
}

// position recomputes thumb offsets from the stored sizes.
func (m *Model) position() {
	metrics := m.vp.metrics()
	for _, a := range geometry.Axes {
		m.s.thumbs[a].Offset = geometry.ThumbOffset(metrics.Extent(a), m.s.thumbs[a].Size)
	}
}

func (m Model) currentPosition() Position {
	return Position{Top: m.vp.top, Left: m.vp.left}
}

// screenOrigin prefers the zone position when the host has scanned a view
// containing this widget.
func (m Model) screenOrigin() image.Point {
	if m.zone != nil {
		if z := m.zone.Get(m.ZoneID()); z != nil && !z.IsZero() {
			return image.Pt(z.StartX, z.StartY)
		}
	}
	return m.origin
}

func (m Model) viewRect() image.Rectangle {
	o := m.screenOrigin()
	return image.Rect(o.X, o.Y, o.X+m.vp.width, o.Y+m.vp.height)
}

// thumbRect returns the screen rectangle of the axis thumb. The vertical
// track is the last column, the horizontal track the last row.
func (m Model) thumbRect(a geometry.Axis) image.Rectangle {
	r := m.viewRect()
	th := m.s.thumbs[a]
	if th.Size <= 0 || r.Empty() {
		return image.Rectangle{}
	}
	if a == geometry.Horizontal {
		return image.Rect(r.Min.X+th.Offset, r.Max.Y-1, r.Min.X+th.Offset+th.Size, r.Max.Y)
	}
	return image.Rect(r.Max.X-1, r.Min.Y+th.Offset, r.Max.X, r.Min.Y+th.Offset+th.Size)
}
