package geometry

import (
	"image"
	"math"
)

// Axis identifies a scroll dimension.
type Axis int

const (
	// Vertical is the top-to-bottom axis (scrollTop, clientHeight).
	Vertical Axis = iota
	// Horizontal is the left-to-right axis (scrollLeft, clientWidth).
	Horizontal
)

// Axes lists both axes in render order.
var Axes = [...]Axis{Vertical, Horizontal}

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Coord returns the component of p that lies along the axis.
func (a Axis) Coord(p image.Point) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Span returns the start and length of r along the axis.
func (a Axis) Span(r image.Rectangle) (start, length int) {
	if a == Horizontal {
		return r.Min.X, r.Dx()
	}
	return r.Min.Y, r.Dy()
}

// Metrics is a snapshot of a viewport's extents and scroll offsets, in cells.
type Metrics struct {
	ClientHeight int
	ClientWidth  int
	ScrollHeight int
	ScrollWidth  int
	ScrollTop    int
	ScrollLeft   int
}

// Extent projects the metrics onto one axis.
func (m Metrics) Extent(a Axis) Extent {
	if a == Horizontal {
		return Extent{Client: m.ClientWidth, Scroll: m.ScrollWidth, Offset: m.ScrollLeft}
	}
	return Extent{Client: m.ClientHeight, Scroll: m.ScrollHeight, Offset: m.ScrollTop}
}

// Extent is the per-axis view of Metrics.
type Extent struct {
	Client int // visible length
	Scroll int // content length
	Offset int // current scroll offset
}

// Overflow returns how far the content extends past the visible region.
// It is negative when the content is smaller than the viewport.
func (e Extent) Overflow() int {
	return e.Scroll - e.Client
}

// MaxOffset returns the largest valid scroll offset.
func (e Extent) MaxOffset() int {
	if o := e.Overflow(); o > 0 {
		return o
	}
	return 0
}

// OverflowPercent returns the overflow as a rounded percentage of the content
// length. Zero-length content yields 0.
func (e Extent) OverflowPercent() int {
	if e.Scroll == 0 {
		return 0
	}
	return round(float64(e.Overflow()) / float64(e.Scroll) * 100)
}

// Thumb is the size and translation of a scrollbar thumb along its track.
// A zero Size means the axis does not overflow and the thumb stays hidden.
type Thumb struct {
	Size   int
	Offset int
}

// Visible reports whether the thumb has anything to draw.
func (t Thumb) Visible() bool {
	return t.Size > 0
}

// ThumbSize computes the thumb length for the extent. The result is 0 when the
// computed thumb would cover the whole content. When the axis overflows but the
// proportional size rounds below minThumb, the thumb is raised to minThumb
// (never beyond the client length).
func ThumbSize(e Extent, minThumb int) int {
	track := round(float64(e.Client) * float64(e.OverflowPercent()) / 100)
	size := e.Client - track
	if size >= e.Scroll {
		return 0
	}
	if size < minThumb {
		size = minThumb
	}
	if size > e.Client {
		size = e.Client
	}
	return size
}

// ThumbOffset computes the thumb translation for a thumb of the given size.
func ThumbOffset(e Extent, size int) int {
	overflow := e.Overflow()
	if overflow <= 0 || size <= 0 {
		return 0
	}
	percent := clamp(round(float64(e.Offset)/float64(overflow)*100), 0, 100)
	remainder := e.Client - size
	if remainder <= 0 {
		return 0
	}
	return round(float64(remainder) * float64(percent) / 100)
}

// Compute returns the thumb geometry for the extent.
func Compute(e Extent, minThumb int) Thumb {
	size := ThumbSize(e, minThumb)
	return Thumb{Size: size, Offset: ThumbOffset(e, size)}
}

// Bounds is the range of pointer coordinates that maps onto the full scroll
// range during a drag. Start maps to offset 0, End to the maximum offset.
type Bounds struct {
	Start int
	End   int
}

// Length returns the number of cells between Start and End.
func (b Bounds) Length() int {
	return b.End - b.Start
}

// Clamp limits c to [Start, End].
func (b Bounds) Clamp(c int) int {
	return clamp(c, b.Start, b.End)
}

// TrackBounds derives drag bounds from the viewport span, the thumb span and
// the pointer coordinate at drag start. The bounds are shifted by the grab
// point inside the thumb so the cell under the pointer stays under it.
func TrackBounds(viewStart, viewLength, thumbStart, thumbSize, pointer int) Bounds {
	grab := pointer - thumbStart
	return Bounds{
		Start: viewStart + grab,
		End:   viewStart + viewLength - thumbSize + grab,
	}
}

// OffsetAt maps a pointer coordinate to a scroll offset. Coordinates outside
// the bounds are clamped to the nearest edge first.
func OffsetAt(b Bounds, coord int, e Extent) int {
	length := b.Length()
	if length <= 0 {
		return 0
	}
	pct := float64(b.Clamp(coord)-b.Start) / float64(length)
	return round(pct * float64(e.MaxOffset()))
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
