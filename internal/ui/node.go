package ui

import (
	"image/color"
	"strings"
)

// Kind is what a node draws as and which CSS type selector matches it.
type Kind int

const (
	Panel Kind = iota
	Label
	Button
	Option
	Swatch
	Slider
	Link
	Viewport
)

var kindNames = [...]string{"panel", "label", "button", "option", "swatch", "slider", "link", "viewport"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "panel"
	}
	return kindNames[k]
}

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Local maps (x, y) to 0..1 fractions of r.
func (r Rect) Local(x, y float32) (fx, fy float32) {
	if r.W > 0 {
		fx = (x - r.X) / r.W
	}
	if r.H > 0 {
		fy = (y - r.Y) / r.H
	}
	return clamp01(fx), clamp01(fy)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Node is a single UI element. Class may hold several space-separated classes; Active and
// Pressed add the "active" and "pressed" state classes for styling.
type Node struct {
	Kind    Kind
	Class   string
	ID      string
	Bounds  Rect
	Text    string
	Value   float32    // slider position, 0..1
	Fill    color.RGBA // swatch colour
	Active  bool
	Pressed bool
	Label   string // accessible name, defaults to Text

	// OnClick runs when a press lands inside Bounds. fx and fy are 0..1 within Bounds.
	OnClick func(fx, fy float32)
}

// NewNode creates a node with kind and optional class, id and text.
func NewNode(kind Kind, class, id, text string) *Node {
	return &Node{Kind: kind, Class: class, ID: id, Text: text}
}

// Classes returns the node's class list including state classes.
func (n *Node) Classes() []string {
	out := strings.Fields(n.Class)
	if n.Active {
		out = append(out, "active")
	}
	if n.Pressed {
		out = append(out, "pressed")
	}
	return out
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return hasString(n.Classes(), c)
}

// AccessibleName is Label, or Text when no label is set.
func (n *Node) AccessibleName() string {
	if n.Label != "" {
		return n.Label
	}
	return n.Text
}

// signature identifies everything style resolution depends on.
func (n *Node) signature() string {
	return n.Kind.String() + "|" + strings.Join(n.Classes(), " ") + "|" + n.ID
}
