package hoverscroll

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/hoverscroll/internal/config"
)

// Styles controls how the thumbs are drawn.
type Styles struct {
	Thumb           lipgloss.Style
	VerticalGlyph   string
	HorizontalGlyph string
}

// DefaultStyles builds styles from the configured glyphs and color.
func DefaultStyles(cfg config.Config) Styles {
	return Styles{
		Thumb:           lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ThumbColor)),
		VerticalGlyph:   cfg.VerticalGlyph,
		HorizontalGlyph: cfg.HorizontalGlyph,
	}
}
