package output

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/mobil-koeln/hoverscroll/internal/testutil"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},        // default
		{"invalid", ColorAuto}, // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseColorMode(tt.input)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestNewColors_NeverMode(t *testing.T) {
	// Save and restore color state
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Header("AXIS"), "AXIS")
	testutil.AssertEqual(t, c.Axis("vertical"), "vertical")
	testutil.AssertEqual(t, c.Value("300"), "300")
	testutil.AssertEqual(t, c.Thumb("150"), "150")
	testutil.AssertEqual(t, c.Hidden("hidden"), "hidden")
	testutil.AssertEqual(t, c.Muted("·"), "·")
}

func TestNewColors_AlwaysMode(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	c := NewColors(ColorAlways)

	result := c.Thumb("150")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertEqual(t, ansi.Strip(result), "150")

	result = c.Axis("vertical")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertEqual(t, ansi.Strip(result), "vertical")
}

func TestColors_Sprintf(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()
	color.NoColor = true

	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Value("%7d", 42), "     42")
	testutil.AssertEqual(t, c.Axis("%-10s|", "vertical"), "vertical  |")
}
