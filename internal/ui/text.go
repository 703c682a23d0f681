package ui

import "strings"

// Wrap breaks text into lines no wider than width at the given font size. Words wider
// than width get a line of their own.
func Wrap(m Measurer, text string, size, width float32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			next := line + " " + w
			if m.MeasureText(next, size) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}

// ApproxMeasurer estimates text width as half the font size per byte. It stands in for
// a real font before the window exists.
type ApproxMeasurer struct{}

// MeasureText implements Measurer.
func (ApproxMeasurer) MeasureText(s string, size float32) float32 {
	return float32(len(s)) * size / 2
}
