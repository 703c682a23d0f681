package ui

import (
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rule is a single CSS rule: one selector and its property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel", "button.active" or ".dark .navbar"
	Props    map[string]string // e.g. "background" -> "#333"
	sel      selector
}

// Stylesheet is a list of rules. Order matters: later overrides earlier.
type Stylesheet struct {
	Rules []Rule
}

// Align is horizontal text alignment inside a node.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ComputedStyle holds resolved values used for drawing.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Accent     color.RGBA // slider fill and thumb
	Width      int32
	Height     int32
	Padding    int32
	FontSize   int32
	TextAlign  Align
	Hidden     bool
}

// DefaultComputedStyle returns a transparent box with dark 16px text.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:    color.RGBA{R: 30, G: 41, B: 59, A: 255},
		Border:   color.RGBA{A: 255},
		Accent:   color.RGBA{R: 59, G: 130, B: 246, A: 255},
		Padding:  4,
		FontSize: 16,
	}
}

// ParseColor parses #RGB, #RRGGBB or "transparent".
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" || s == "none" {
		return color.RGBA{}, true
	}
	if len(s) == 4 && s[0] == '#' {
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// ParsePx parses a number, with optional "px" suffix. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "accent-color":
			if c, ok := ParseColor(v); ok {
				out.Accent = c
			}
		case "border", "border-color":
			// "1px solid #ccc" and "#ccc" both work; the last colour token wins.
			for _, tok := range strings.Fields(v) {
				if c, ok := ParseColor(tok); ok {
					out.Border = c
					out.HasBorder = c.A > 0
				}
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "text-align":
			switch strings.TrimSpace(v) {
			case "center":
				out.TextAlign = AlignCenter
			case "right":
				out.TextAlign = AlignRight
			default:
				out.TextAlign = AlignLeft
			}
		case "display":
			out.Hidden = strings.TrimSpace(v) == "none"
		}
	}
	return out
}
