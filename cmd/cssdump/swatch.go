package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/csscascade/css"
)

// swatch renders a small color sample for literal colors, and "" for
// anything else. Terminals without color support get blanks.
func swatch(v css.Value) string {
	c, ok := v.(*css.Color)
	if !ok {
		return ""
	}
	rgba, ok := c.RGBA()
	if !ok {
		return ""
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(hex(rgba)))
	return " " + style.Render("    ")
}

func hex(c css.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
