package ui

import (
	"fmt"
	"image/color"
	"os"
	"strings"
)

// Measurer reports the rendered width of text.
type Measurer interface {
	MeasureText(s string, size float32) float32
}

// Painter draws primitives for the engine. The raylib implementation lives in the render package.
type Painter interface {
	Measurer
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	Text(s string, x, y, size float32, c color.RGBA)
}

// Engine holds the current stylesheet and nodes. Draw order is node order and hit testing
// runs in reverse, so later nodes sit on top. Resolved styles are cached per node signature
// and dropped when the sheet or root classes change.
type Engine struct {
	sheet  *Stylesheet
	nodes  []*Node
	root   []string
	styles map[string]ComputedStyle
}

// New creates an empty UI engine.
func New() *Engine {
	return &Engine{styles: make(map[string]ComputedStyle)}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly. Rules built by hand are compiled from their
// Selector text; rules with unsupported selectors never match.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	if sheet != nil {
		for i := range sheet.Rules {
			if !sheet.Rules[i].sel.valid {
				sheet.Rules[i].sel, _ = parseSelector(sheet.Rules[i].Selector)
			}
		}
	}
	e.sheet = sheet
	e.invalidate()
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// HasStylesheet reports whether any rules are loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// SetRootClass sets the classes of the implicit page root, matched by ancestor selectors
// such as ".dark .navbar".
func (e *Engine) SetRootClass(class string) {
	e.root = strings.Fields(class)
	e.invalidate()
}

// RootClass returns the page root classes.
func (e *Engine) RootClass() string {
	return strings.Join(e.root, " ")
}

func (e *Engine) invalidate() {
	e.styles = make(map[string]ComputedStyle)
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// AddNode appends a node.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
}

// Nodes returns the current nodes in draw order.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// resolveProps merges the properties of every matching rule; last wins.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	typ := n.Kind.String()
	classes := n.Classes()
	for _, rule := range e.sheet.Rules {
		if !rule.sel.valid {
			continue
		}
		if rule.sel.ancestor != nil && !rule.sel.ancestor.matches("", e.root, "") {
			continue
		}
		if !rule.sel.subject.matches(typ, classes, n.ID) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// Style returns the computed style for n.
func (e *Engine) Style(n *Node) ComputedStyle {
	key := n.signature()
	if s, ok := e.styles[key]; ok {
		return s
	}
	s := ResolveProps(e.resolveProps(n))
	e.styles[key] = s
	return s
}

// HitTest returns the topmost visible clickable node containing (x, y), or nil.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.OnClick == nil || !n.Bounds.Contains(x, y) {
			continue
		}
		if e.Style(n).Hidden {
			continue
		}
		return n
	}
	return nil
}

// Click dispatches a press at (x, y) to the node under it. It reports whether a node took it.
func (e *Engine) Click(x, y float32) bool {
	n := e.HitTest(x, y)
	if n == nil {
		return false
	}
	n.OnClick(n.Bounds.Local(x, y))
	return true
}

// Draw paints every node in order: background, border, then slider track or text.
func (e *Engine) Draw(p Painter) {
	for _, n := range e.nodes {
		style := e.Style(n)
		if style.Hidden {
			continue
		}
		b := n.Bounds
		bg := style.Background
		if n.Kind == Swatch {
			bg = n.Fill
		}
		if bg.A > 0 {
			p.FillRect(b, bg)
		}
		if style.HasBorder && b.W > 0 && b.H > 0 {
			p.StrokeRect(b, style.Border)
		}
		if n.Kind == Slider {
			drawSlider(p, n, style)
			continue
		}
		if n.Text == "" {
			continue
		}
		size := float32(style.FontSize)
		pad := float32(style.Padding)
		x := b.X + pad
		switch style.TextAlign {
		case AlignCenter:
			x = b.X + (b.W-p.MeasureText(n.Text, size))/2
		case AlignRight:
			x = b.X + b.W - pad - p.MeasureText(n.Text, size)
		}
		y := b.Y + pad
		if b.H > 0 {
			y = b.Y + (b.H-size)/2
		}
		p.Text(n.Text, x, y, size, style.Color)
	}
}

const (
	trackHeight = 6
	thumbWidth  = 12
)

func drawSlider(p Painter, n *Node, style ComputedStyle) {
	b := n.Bounds
	track := Rect{X: b.X, Y: b.Y + (b.H-trackHeight)/2, W: b.W, H: trackHeight}
	p.FillRect(track, color.RGBA{R: 203, G: 213, B: 225, A: 255})
	v := clamp01(n.Value)
	p.FillRect(Rect{X: track.X, Y: track.Y, W: track.W * v, H: trackHeight}, style.Accent)
	thumbX := b.X + (b.W-thumbWidth)*v
	p.FillRect(Rect{X: thumbX, Y: b.Y, W: thumbWidth, H: b.H}, style.Accent)
}
