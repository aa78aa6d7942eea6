package hoverscroll

import (
	"image"

	"github.com/mobil-koeln/hoverscroll/internal/geometry"
)

// dragSession lives from a press on a thumb to the next release anywhere.
type dragSession struct {
	axis   geometry.Axis
	bounds geometry.Bounds
	seq    int
}

// dragController turns pointer motion on one axis into scroll offsets.
type dragController struct {
	axis    geometry.Axis
	session *dragSession
	seq     int
}

func (d *dragController) active() bool {
	return d.session != nil
}

// begin opens a fresh session. view and thumb are screen rectangles; the
// bounds are derived once here and stay fixed for the whole drag.
func (d *dragController) begin(view, thumb image.Rectangle, pointer image.Point) *dragSession {
	viewStart, viewLength := d.axis.Span(view)
	thumbStart, thumbSize := d.axis.Span(thumb)
	d.seq++
	d.session = &dragSession{
		axis:   d.axis,
		bounds: geometry.TrackBounds(viewStart, viewLength, thumbStart, thumbSize, d.axis.Coord(pointer)),
		seq:    d.seq,
	}
	return d.session
}

// move maps the pointer to a scroll offset for the active session.
func (d *dragController) move(pointer image.Point, e geometry.Extent) (int, bool) {
	if d.session == nil {
		return 0, false
	}
	return geometry.OffsetAt(d.session.bounds, d.axis.Coord(pointer), e), true
}

// end closes the session and reports whether one was open.
func (d *dragController) end() bool {
	if d.session == nil {
		return false
	}
	d.session = nil
	return true
}
