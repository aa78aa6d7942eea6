package hoverscroll

import "github.com/mobil-koeln/hoverscroll/internal/geometry"

// visibility is the show/hide state of one axis. gen counts show() calls; a
// hide timer only acts if it was armed by the latest one.
type visibility struct {
	axis    geometry.Axis
	opacity int
	gen     int
}

// show makes the axis visible and returns the generation for the new timer.
func (v *visibility) show() int {
	v.opacity = 1
	v.gen++
	return v.gen
}

// hide is a no-op while a drag is in progress.
func (v *visibility) hide(dragging bool) {
	if dragging {
		return
	}
	v.opacity = 0
}

// cancel invalidates the pending timer without touching opacity.
func (v *visibility) cancel() {
	v.gen++
}

// expire handles a fired timer. Stale generations are ignored.
func (v *visibility) expire(gen int, dragging bool) bool {
	if gen != v.gen {
		return false
	}
	v.hide(dragging)
	return true
}

func (v *visibility) visible() bool {
	return v.opacity == 1
}
