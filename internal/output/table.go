package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mobil-koeln/hoverscroll/internal/geometry"
)

// maxTrackWidth caps the drawn track so long axes fit a terminal line.
const maxTrackWidth = 60

// AxisReport is the computed thumb geometry for one axis.
type AxisReport struct {
	Axis            string `json:"axis"`
	Client          int    `json:"client"`
	Scroll          int    `json:"scroll"`
	Offset          int    `json:"offset"`
	OverflowPercent int    `json:"overflow_percent"`
	ThumbSize       int    `json:"thumb_size"`
	ThumbOffset     int    `json:"thumb_offset"`
	Visible         bool   `json:"visible"`
}

// TableOptions configures the table output
type TableOptions struct {
	Colors    *Colors
	ShowTrack bool
}

// Report computes the thumb geometry for both axes of m.
func Report(m geometry.Metrics, minThumb int) []AxisReport {
	reports := make([]AxisReport, 0, len(geometry.Axes))
	for _, a := range geometry.Axes {
		e := m.Extent(a)
		th := geometry.Compute(e, minThumb)
		reports = append(reports, AxisReport{
			Axis:            a.String(),
			Client:          e.Client,
			Scroll:          e.Scroll,
			Offset:          e.Offset,
			OverflowPercent: max(e.OverflowPercent(), 0),
			ThumbSize:       th.Size,
			ThumbOffset:     th.Offset,
			Visible:         th.Visible(),
		})
	}
	return reports
}

// RenderGeometry renders axis reports as a formatted table
func RenderGeometry(w io.Writer, reports []AxisReport, opts TableOptions) {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(w, "No axes to report.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintln(w, c.Header("%-10s %7s %7s %7s %9s %6s %7s", "AXIS", "CLIENT", "SCROLL", "OFFSET", "OVERFLOW", "THUMB", "AT"))

	for _, r := range reports {
		thumb := c.Hidden("%6s", "hidden")
		if r.Visible {
			thumb = c.Thumb("%6d", r.ThumbSize)
		}

		_, _ = fmt.Fprintf(w, "%s %s %s %s %s %s %s\n",
			c.Axis("%-10s", r.Axis),
			c.Value("%7d", r.Client),
			c.Value("%7d", r.Scroll),
			c.Value("%7d", r.Offset),
			c.Value("%8d%%", r.OverflowPercent),
			thumb,
			c.Value("%7d", r.ThumbOffset),
		)

		if opts.ShowTrack && r.Visible {
			_, _ = fmt.Fprintf(w, "%11s%s\n", "", RenderTrack(r, c))
		}
	}
}

// RenderTrack draws the axis track with the thumb in place, scaled down when
// the client length exceeds maxTrackWidth.
func RenderTrack(r AxisReport, c *Colors) string {
	if c == nil {
		c = NewColors(ColorNever)
	}
	if r.Client <= 0 {
		return ""
	}

	width := min(r.Client, maxTrackWidth)
	scale := func(v int) int {
		return v * width / r.Client
	}
	start := scale(r.ThumbOffset)
	size := max(scale(r.ThumbSize), 1)
	if start+size > width {
		start = width - size
	}

	var b strings.Builder
	b.WriteString(c.Muted("%s", strings.Repeat("·", start)))
	b.WriteString(c.Thumb("%s", strings.Repeat("█", size)))
	b.WriteString(c.Muted("%s", strings.Repeat("·", width-start-size)))
	return "[" + b.String() + "]"
}

// RenderJSON writes the reports as indented JSON.
func RenderJSON(w io.Writer, reports []AxisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
