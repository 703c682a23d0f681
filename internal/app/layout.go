package app

import (
	"geometry-explorer/internal/nav"
	"geometry-explorer/internal/panel"
	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/ui"

	"github.com/chewxy/math32"
)

// Layout metrics in pixels.
const (
	navbarHeight    = 56
	sidebarWidth    = 240
	contentPad      = 24
	maxContentWidth = 896
	rowHeight       = 36
	gap             = 16
	controlsHeight  = 104
	minViewerHeight = 220
	maxViewerHeight = 384
	cardHeight      = 132
	themeButtonW    = 96
	swatchSize      = 20
	labelHeight     = 20
)

// viewerClass is always on the viewer container; Options.ViewerClass adds more.
const viewerClass = "viewer"

// layout rebuilds every node for the current route, theme, sidebar and panel state,
// and moves the viewer surface to its box.
func (a *App) layout() {
	a.dirty = false
	w, h := a.width, a.height
	nodes := []*ui.Node{{Kind: ui.Panel, Class: "page", Bounds: ui.Rect{W: w, H: h}}}
	nodes = a.layoutNavbar(nodes, w)
	nodes = a.layoutSidebar(nodes, h)

	x := float32(sidebarWidth + contentPad)
	cw := math32.Min(w-x-contentPad, maxContentWidth)
	y := float32(navbarHeight + contentPad)
	page := a.pages[a.router.Current().Path]

	title := &ui.Node{Kind: ui.Label, Class: "page-title", ID: "title", Text: page.Title}
	title.Bounds = ui.Rect{X: x, Y: y, W: cw, H: 36}
	nodes = append(nodes, title)
	y += 44
	nodes, y = a.appendText(nodes, "page-text", page.Description, x, y, cw)
	y += gap

	a.slider, a.view = nil, nil
	if a.router.IsActive(nav.RouteExplorer) {
		nodes, y = a.layoutControls(nodes, x, y, cw)
		y += gap
		cardsTop := h - contentPad - cardHeight
		vh := math32.Max(minViewerHeight, math32.Min(maxViewerHeight, cardsTop-gap-y))
		a.viewport = ui.Rect{X: x, Y: y, W: cw, H: vh}
		a.view = &ui.Node{Kind: ui.Viewport, Class: viewerClass + " " + a.opts.ViewerClass, Bounds: a.viewport}
		if a.session != nil {
			a.view.Label = a.session.Label()
		}
		nodes = append(nodes, a.view)
		a.opts.Surface.SetBounds(a.viewport)
		y += vh + gap
		nodes = a.layoutCards(nodes, page.Cards, x, y, cw)
	} else {
		a.viewport = ui.Rect{}
	}
	a.engine.SetNodes(nodes)
}

func (a *App) layoutNavbar(nodes []*ui.Node, w float32) []*ui.Node {
	bar := &ui.Node{Kind: ui.Panel, Class: "navbar", Bounds: ui.Rect{W: w, H: navbarHeight}}
	title := &ui.Node{Kind: ui.Link, Class: "navbar-title", Text: a.navbar.Title,
		Bounds: ui.Rect{W: sidebarWidth, H: navbarHeight}}
	title.OnClick = func(float32, float32) { a.navigate(nav.RouteHome) }
	theme := &ui.Node{Kind: ui.Button, Class: "theme-button", Text: a.navbar.ThemeButton,
		Bounds: ui.Rect{X: w - themeButtonW - contentPad, Y: 10, W: themeButtonW, H: navbarHeight - 20}}
	theme.Label = "Switch to " + otherTheme(a.navbar.Theme()).String() + " theme"
	theme.OnClick = func(float32, float32) { a.navbar.ToggleTheme() }
	return append(nodes, bar, title, theme)
}

func otherTheme(t nav.Theme) nav.Theme {
	if t == nav.Dark {
		return nav.Light
	}
	return nav.Dark
}

func (a *App) layoutSidebar(nodes []*ui.Node, h float32) []*ui.Node {
	top := float32(navbarHeight)
	nodes = append(nodes, &ui.Node{Kind: ui.Panel, Class: "sidebar",
		Bounds: ui.Rect{Y: top, W: sidebarWidth, H: h - top}})
	y := top + 12
	for _, row := range a.sidebar.Rows() {
		bounds := ui.Rect{X: 12, Y: y, W: sidebarWidth - 24, H: rowHeight}
		switch row.Kind {
		case nav.HeaderRow:
			i := row.Section
			header := &ui.Node{Kind: ui.Button, Class: "section", Text: a.sidebar.Sections[i].Title, Bounds: bounds}
			header.OnClick = func(float32, float32) {
				a.sidebar.Toggle(i)
				a.dirty = true
			}
			indicator := &ui.Node{Kind: ui.Label, Class: "indicator", Text: a.sidebar.Indicator(i), Bounds: bounds}
			nodes = append(nodes, header, indicator)
		case nav.LinkRow:
			route := row.Item.Route
			link := &ui.Node{Kind: ui.Link, Class: "nav-link", Text: row.Item.Label, Bounds: bounds,
				Active: a.router.IsActive(route)}
			link.OnClick = func(float32, float32) { a.navigate(route) }
			nodes = append(nodes, link)
		}
		y += rowHeight + 4
	}
	return nodes
}

// appendText adds one label per wrapped line and returns the y below the text.
func (a *App) appendText(nodes []*ui.Node, class, text string, x, y, width float32) ([]*ui.Node, float32) {
	if text == "" {
		return nodes, y
	}
	probe := &ui.Node{Kind: ui.Label, Class: class}
	size := float32(a.engine.Style(probe).FontSize)
	lh := size + 6
	for _, line := range ui.Wrap(a.opts.Text, text, size, width) {
		nodes = append(nodes, &ui.Node{Kind: ui.Label, Class: class, Text: line,
			Bounds: ui.Rect{X: x, Y: y, W: width, H: lh}})
		y += lh
	}
	return nodes, y
}

// layoutControls lays out the four control columns: shape, colour, scale, rotation.
func (a *App) layoutControls(nodes []*ui.Node, x, y, cw float32) ([]*ui.Node, float32) {
	nodes = append(nodes, &ui.Node{Kind: ui.Panel, Class: "controls",
		Bounds: ui.Rect{X: x, Y: y, W: cw, H: controlsHeight}})
	inner := ui.Rect{X: x + gap, Y: y + gap, W: cw - 2*gap, H: controlsHeight - 2*gap}
	colW := (inner.W - 3*gap) / 4
	col := func(i int) float32 { return inner.X + float32(i)*(colW+gap) }
	fieldY := inner.Y + labelHeight + 8
	fieldH := inner.H - labelHeight - 8
	st := a.panel.State()

	// Shape selector.
	nodes = append(nodes, controlLabel(panel.ShapeLabel, col(0), inner.Y, colW))
	opts := a.panel.Options()
	optW := colW / float32(len(opts))
	for i, opt := range opts {
		value := opt.Value
		n := &ui.Node{Kind: ui.Option, Class: "shape-option", Text: opt.Label,
			Bounds: ui.Rect{X: col(0) + float32(i)*optW, Y: fieldY, W: optW, H: fieldH},
			Active: value == a.panel.ShapeValue()}
		n.OnClick = func(float32, float32) { a.run(a.panel.SelectShape(value)) }
		nodes = append(nodes, n)
	}

	// Colour picker: swatches in two rows plus the hex value.
	nodes = append(nodes, controlLabel(panel.ColorLabel, col(1), inner.Y, colW))
	perRow := (len(Palette) + 1) / 2
	for i, hex := range Palette {
		value := hex
		sx := col(1) + float32(i%perRow)*(swatchSize+6)
		sy := fieldY + float32(i/perRow)*(swatchSize+4)
		n := &ui.Node{Kind: ui.Swatch, Class: "swatch", Fill: scene.MustHex(hex), Label: hex,
			Bounds: ui.Rect{X: sx, Y: sy, W: swatchSize, H: swatchSize},
			Active: value == st.Color}
		n.OnClick = func(float32, float32) { a.run(a.panel.PickColor(value)) }
		nodes = append(nodes, n)
	}
	hexX := col(1) + float32(perRow)*(swatchSize+6)
	nodes = append(nodes, &ui.Node{Kind: ui.Label, Class: "color-value", Text: a.panel.ColorValue(),
		Bounds: ui.Rect{X: hexX, Y: fieldY, W: col(1) + colW - hexX, H: swatchSize}})

	// Scale slider.
	nodes = append(nodes, controlLabel(a.panel.ScaleLabel(), col(2), inner.Y, colW))
	slider := &ui.Node{Kind: ui.Slider, Class: "scale", Value: panel.ScaleFraction(st.Scale),
		Label:  a.panel.ScaleLabel(),
		Bounds: ui.Rect{X: col(2), Y: fieldY + (fieldH-20)/2, W: colW, H: 20}}
	slider.OnClick = func(fx, _ float32) {
		a.sliderHeld = true
		a.setScale(panel.ScaleAt(fx))
	}
	a.slider = slider
	nodes = append(nodes, slider)

	// Rotation toggle.
	rotate := &ui.Node{Kind: ui.Button, Class: "rotate-button", Text: a.panel.RotationLabel(),
		Pressed: a.panel.RotationPressed(),
		Bounds:  ui.Rect{X: col(3), Y: fieldY, W: colW, H: fieldH}}
	rotate.OnClick = func(float32, float32) { a.run(a.panel.ToggleRotation()) }
	nodes = append(nodes, rotate)

	return nodes, y + controlsHeight
}

func controlLabel(text string, x, y, w float32) *ui.Node {
	return &ui.Node{Kind: ui.Label, Class: "control-label", Text: text,
		Bounds: ui.Rect{X: x, Y: y, W: w, H: labelHeight}}
}

func (a *App) layoutCards(nodes []*ui.Node, cards []Card, x, y, cw float32) []*ui.Node {
	if len(cards) == 0 {
		return nodes
	}
	n := float32(len(cards))
	cardW := (cw - (n-1)*gap) / n
	for i, c := range cards {
		cx := x + float32(i)*(cardW+gap)
		nodes = append(nodes, &ui.Node{Kind: ui.Panel, Class: "card",
			Bounds: ui.Rect{X: cx, Y: y, W: cardW, H: cardHeight}})
		nodes = append(nodes, &ui.Node{Kind: ui.Label, Class: "card-title", Text: c.Title,
			Bounds: ui.Rect{X: cx + gap, Y: y + 12, W: cardW - 2*gap, H: 24}})
		nodes, _ = a.appendText(nodes, "card-text", c.Text, cx+gap, y+42, cardW-2*gap)
	}
	return nodes
}

// navigate switches route and logs failures.
func (a *App) navigate(path string) {
	a.run(a.router.Navigate(path))
}

func (a *App) setScale(v float32) {
	_, err := a.panel.SlideScale(v)
	a.run(err)
}

// run logs a handler error and schedules a relayout so labels follow the new state.
func (a *App) run(err error) {
	a.dirty = true
	if err != nil {
		a.slog.Warn("control update failed", "err", err)
	}
}
