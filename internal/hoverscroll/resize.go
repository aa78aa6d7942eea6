package hoverscroll

// resizeWatcher observes the widget box. It only reports changes while
// attached, and it is attached once per mount.
type resizeWatcher struct {
	attached bool
	observed bool
	width    int
	height   int
}

// attach starts observation. It reports false if already attached.
func (r *resizeWatcher) attach() bool {
	if r.attached {
		return false
	}
	r.attached = true
	r.observed = false
	return true
}

func (r *resizeWatcher) detach() {
	*r = resizeWatcher{}
}

// observe records the box size and reports whether it differs from the last
// observation. The first observation after attach always counts as a change.
func (r *resizeWatcher) observe(w, h int) bool {
	if !r.attached {
		return false
	}
	if r.observed && r.width == w && r.height == h {
		return false
	}
	r.observed = true
	r.width, r.height = w, h
	return true
}
