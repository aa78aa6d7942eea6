package hoverscroll

import "github.com/mobil-koeln/hoverscroll/internal/geometry"

// hideTimeoutMsg fires when an axis' auto-hide timer expires. gen identifies
// the show() call that armed it; anything older is stale.
type hideTimeoutMsg struct {
	id    int
	epoch int
	axis  geometry.Axis
	gen   int
}

// settleMsg fires once scroll activity has been quiet for the settle delay.
// seq is used for stale-tick detection, so only the last scroll counts.
type settleMsg struct {
	id    int
	epoch int
	seq   int
}
