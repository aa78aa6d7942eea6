package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
	"github.com/mobil-koeln/hoverscroll/internal/testutil"
)

func halfOverflow() geometry.Metrics {
	return geometry.Metrics{
		ClientHeight: 300,
		ScrollHeight: 600,
		ScrollTop:    300,
		ClientWidth:  40,
		ScrollWidth:  40,
	}
}

func TestReport(t *testing.T) {
	reports := Report(halfOverflow(), 1)
	testutil.AssertLen(t, reports, 2)

	v := reports[0]
	testutil.AssertEqual(t, v.Axis, "vertical")
	testutil.AssertEqual(t, v.OverflowPercent, 50)
	testutil.AssertEqual(t, v.ThumbSize, 150)
	testutil.AssertEqual(t, v.ThumbOffset, 150)
	testutil.AssertTrue(t, v.Visible)

	h := reports[1]
	testutil.AssertEqual(t, h.Axis, "horizontal")
	testutil.AssertEqual(t, h.ThumbSize, 0)
	testutil.AssertFalse(t, h.Visible)
}

func TestReport_NegativeOverflowShownAsZero(t *testing.T) {
	reports := Report(geometry.Metrics{ClientHeight: 20, ScrollHeight: 5}, 1)
	testutil.AssertEqual(t, reports[0].OverflowPercent, 0)
}

func TestRenderGeometry_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderGeometry(&buf, nil, TableOptions{Colors: NewColors(ColorNever)})
	testutil.AssertContains(t, buf.String(), "No axes to report")
}

func TestRenderGeometry_Table(t *testing.T) {
	var buf bytes.Buffer
	RenderGeometry(&buf, Report(halfOverflow(), 1), TableOptions{Colors: NewColors(ColorNever)})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertLen(t, lines, 3)
	testutil.AssertContains(t, lines[0], "AXIS")
	testutil.AssertContains(t, lines[0], "THUMB")
	testutil.AssertContains(t, lines[1], "vertical")
	testutil.AssertContains(t, lines[1], "150")
	testutil.AssertContains(t, lines[1], "50%")
	testutil.AssertContains(t, lines[2], "horizontal")
	testutil.AssertContains(t, lines[2], "hidden")
}

func TestRenderGeometry_WithTrack(t *testing.T) {
	var buf bytes.Buffer
	RenderGeometry(&buf, Report(halfOverflow(), 1), TableOptions{ShowTrack: true})

	out := buf.String()
	// only the visible axis gets a track
	testutil.AssertEqual(t, strings.Count(out, "["), 1)
	testutil.AssertContains(t, out, "█")
}

func TestRenderGeometry_ColorsAreStrippable(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	var plain, colored bytes.Buffer
	reports := Report(halfOverflow(), 1)
	RenderGeometry(&plain, reports, TableOptions{Colors: NewColors(ColorNever)})
	RenderGeometry(&colored, reports, TableOptions{Colors: NewColors(ColorAlways)})

	testutil.AssertEqual(t, ansi.Strip(colored.String()), plain.String())
}

func TestRenderTrack(t *testing.T) {
	tests := []struct {
		name   string
		report AxisReport
		want   string
	}{
		{
			name:   "thumb at end",
			report: AxisReport{Client: 10, ThumbSize: 5, ThumbOffset: 5, Visible: true},
			want:   "[·····█████]",
		},
		{
			name:   "thumb at start",
			report: AxisReport{Client: 8, ThumbSize: 2, ThumbOffset: 0, Visible: true},
			want:   "[██······]",
		},
		{
			name:   "scaled down",
			report: AxisReport{Client: 300, ThumbSize: 150, ThumbOffset: 150, Visible: true},
			want:   "[" + strings.Repeat("·", 30) + strings.Repeat("█", 30) + "]",
		},
		{
			name:   "tiny thumb keeps one cell",
			report: AxisReport{Client: 600, ThumbSize: 1, ThumbOffset: 599, Visible: true},
			want:   "[" + strings.Repeat("·", 59) + "█]",
		},
		{
			name:   "no client",
			report: AxisReport{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, RenderTrack(tt.report, NewColors(ColorNever)), tt.want)
		})
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNil(t, RenderJSON(&buf, Report(halfOverflow(), 1)))

	var got []AxisReport
	testutil.AssertNil(t, json.Unmarshal(buf.Bytes(), &got))
	testutil.AssertLen(t, got, 2)
	testutil.AssertEqual(t, got[0].ThumbSize, 150)
	testutil.AssertContains(t, buf.String(), `"thumb_offset": 150`)
}
