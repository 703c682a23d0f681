package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"geometry-explorer/internal/config"
	"geometry-explorer/internal/fonts"
	"geometry-explorer/internal/frame"
	"geometry-explorer/internal/logger"
	"geometry-explorer/internal/nav"
	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"
	"geometry-explorer/internal/ui"
	"geometry-explorer/internal/viewer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	renders  int
	disposed bool
	w, h     int
}

func (r *fakeRenderer) SetSize(w, h int)                   { r.w, r.h = w, h }
func (r *fakeRenderer) Render(*scene.Scene, *scene.Camera) { r.renders++ }
func (r *fakeRenderer) Dispose()                           { r.disposed = true }

type fakeBackend struct {
	made []*fakeRenderer
}

func (b *fakeBackend) NewRenderer(w, h int, _ viewer.RendererOptions) (viewer.Renderer, error) {
	r := &fakeRenderer{w: w, h: h}
	b.made = append(b.made, r)
	return r, nil
}

type fakeSurface struct {
	bounds    ui.Rect
	attached  []viewer.Renderer
	observers map[int]func(w, h int)
	next      int
	last      [2]int
	draws     int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{observers: map[int]func(w, h int){}}
}

func (s *fakeSurface) Size() (int, int)         { return int(s.bounds.W), int(s.bounds.H) }
func (s *fakeSurface) SetBounds(r ui.Rect)      { s.bounds = r }
func (s *fakeSurface) Draw()                    { s.draws++ }
func (s *fakeSurface) Attach(r viewer.Renderer) { s.attached = append(s.attached, r) }
func (s *fakeSurface) Detach(r viewer.Renderer) {
	for i, cur := range s.attached {
		if cur == r {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			return
		}
	}
}
func (s *fakeSurface) Observe(fn func(w, h int)) func() {
	id := s.next
	s.next++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}
func (s *fakeSurface) Notify() {
	w, h := s.Size()
	if [2]int{w, h} == s.last {
		return
	}
	s.last = [2]int{w, h}
	for _, fn := range s.observers {
		fn(w, h)
	}
}

type harness struct {
	app     *App
	backend *fakeBackend
	surface *fakeSurface
	frames  *frame.Scheduler
	log     *logger.Logger
	grid    []bool
	w, h    float32
}

func newHarness(t *testing.T, prefs config.Prefs) *harness {
	t.Helper()
	h := &harness{
		backend: &fakeBackend{},
		surface: newFakeSurface(),
		frames:  frame.New(),
		log:     logger.New("-"),
		w:       1280,
		h:       900,
	}
	a, err := New(Options{
		Prefs:       prefs,
		ConfigPath:  filepath.Join(t.TempDir(), "explorer.yaml"),
		Backend:     h.backend,
		Frames:      h.frames,
		Surface:     h.surface,
		Log:         h.log,
		ViewerClass: "rounded shadow",
		SetGrid:     func(show bool) { h.grid = append(h.grid, show) },
	})
	require.NoError(t, err)
	h.app = a
	h.tick()
	return h
}

// tick runs one window loop iteration without input.
func (h *harness) tick() {
	h.app.Update(Input{Width: h.w, Height: h.h})
	h.frames.Flush()
}

func (h *harness) find(t *testing.T, kind ui.Kind, text string) *ui.Node {
	t.Helper()
	for _, n := range h.app.Engine().Nodes() {
		if n.Kind == kind && n.Text == text {
			return n
		}
	}
	t.Fatalf("no %s node %q", kind, text)
	return nil
}

func (h *harness) click(t *testing.T, kind ui.Kind, text string) {
	t.Helper()
	b := h.find(t, kind, text).Bounds
	h.app.Update(Input{Width: h.w, Height: h.h, Clicked: true, ClickX: b.X + b.W/2, ClickY: b.Y + b.H/2})
	h.frames.Flush()
}

func (h *harness) openExplorer(t *testing.T) {
	t.Helper()
	if !h.app.Sidebar().Sections[0].Open {
		h.click(t, ui.Button, "Mathematics")
	}
	h.click(t, ui.Link, "3D Explorer")
	h.tick()
}

func TestStartsOnHome(t *testing.T) {
	h := newHarness(t, config.Default())
	assert.Equal(t, nav.RouteHome, h.app.Router().Current().Path)
	assert.Nil(t, h.app.Session())
	assert.Equal(t, "", h.app.AccessibleLabel())
	h.find(t, ui.Link, "Final Project")
	h.find(t, ui.Button, "Theme")
	h.find(t, ui.Label, "Welcome")
	assert.Equal(t, []bool{false}, h.grid)
}

func TestSidebarNavigationMountsViewer(t *testing.T) {
	h := newHarness(t, config.Default())
	h.click(t, ui.Button, "Mathematics")
	assert.Equal(t, "-", h.find(t, ui.Label, "-").Text)
	h.click(t, ui.Link, "3D Explorer")
	h.tick()

	s := h.app.Session()
	require.NotNil(t, s)
	assert.Equal(t, "3D view of cube with automatic rotation", h.app.AccessibleLabel())
	assert.True(t, h.find(t, ui.Link, "3D Explorer").Active)
	h.find(t, ui.Label, "3D Shape Explorer")
	h.find(t, ui.Label, "Rotation")
	h.find(t, ui.Label, "Scale")
	h.find(t, ui.Label, "Shapes")

	require.Len(t, h.backend.made, 1)
	assert.Greater(t, h.backend.made[0].renders, 0)
	assert.Len(t, h.surface.attached, 1)

	var view *ui.Node
	for _, n := range h.app.Engine().Nodes() {
		if n.Kind == ui.Viewport {
			view = n
		}
	}
	require.NotNil(t, view)
	assert.Equal(t, []string{"viewer", "rounded", "shadow"}, view.Classes())
	assert.Equal(t, h.app.AccessibleLabel(), view.AccessibleName())
}

func TestControlsDriveSession(t *testing.T) {
	h := newHarness(t, config.Default())
	h.openExplorer(t)
	s := h.app.Session()
	require.NotNil(t, s)

	h.click(t, ui.Option, "Sphere")
	assert.Equal(t, shapes.SpherePrimitive, s.Primitive().Geometry.Desc.Primitive)
	assert.True(t, h.find(t, ui.Option, "Sphere").Active)

	h.click(t, ui.Button, "Pause Rotation")
	assert.False(t, s.State().AutoRotate)
	assert.False(t, h.find(t, ui.Button, "Resume Rotation").Pressed)
	assert.Equal(t, "3D view of sphere with manual rotation", h.app.AccessibleLabel())

	var swatch *ui.Node
	for _, n := range h.app.Engine().Nodes() {
		if n.Kind == ui.Swatch && n.Label == "#3b82f6" {
			swatch = n
		}
	}
	require.NotNil(t, swatch)
	b := swatch.Bounds
	h.app.Update(Input{Width: h.w, Height: h.h, Clicked: true, ClickX: b.X + 1, ClickY: b.Y + 1})
	assert.Equal(t, "#3b82f6", s.State().Color)
	h.find(t, ui.Label, "#3b82f6")
}

func TestSliderSetsScale(t *testing.T) {
	h := newHarness(t, config.Default())
	h.openExplorer(t)
	s := h.app.Session()
	require.NotNil(t, s)

	var slider *ui.Node
	for _, n := range h.app.Engine().Nodes() {
		if n.Kind == ui.Slider {
			slider = n
		}
	}
	require.NotNil(t, slider)
	b := slider.Bounds
	h.app.Update(Input{Width: h.w, Height: h.h, Clicked: true, ClickX: b.X + b.W - 0.5, ClickY: b.Y + 1})
	assert.InDelta(t, 3.0, s.State().Scale, 1e-6)
	h.find(t, ui.Label, "Scale: 3.0")
}

func TestLeavingExplorerTearsDown(t *testing.T) {
	h := newHarness(t, config.Default())
	h.openExplorer(t)
	s := h.app.Session()
	require.NotNil(t, s)
	h.click(t, ui.Option, "Cylinder")

	h.click(t, ui.Link, "Final Project")
	assert.Equal(t, nav.RouteHome, h.app.Router().Current().Path)
	assert.Nil(t, h.app.Session())
	assert.True(t, s.Closed())
	r := h.backend.made[0]
	assert.True(t, r.disposed)
	assert.Empty(t, h.surface.attached)
	assert.Empty(t, h.surface.observers)

	renders := r.renders
	for i := 0; i < 5; i++ {
		h.tick()
	}
	assert.Equal(t, renders, r.renders)
	assert.Equal(t, 0, h.frames.Pending())

	h.openExplorer(t)
	again := h.app.Session()
	require.NotNil(t, again)
	assert.NotSame(t, s, again)
	assert.Equal(t, shapes.Cylinder, again.State().Shape, "panel state survives remount")
	assert.Equal(t, 2, h.app.Mounts())

	h.app.Shutdown()
	assert.True(t, again.Closed())
}

func TestThemeButton(t *testing.T) {
	h := newHarness(t, config.Default())
	assert.Equal(t, "light", h.app.Engine().RootClass())
	h.click(t, ui.Button, "Theme")
	assert.Equal(t, "dark", h.app.Engine().RootClass())
	assert.Equal(t, "dark", h.app.Prefs().Theme)
}

func TestConsoleCommands(t *testing.T) {
	h := newHarness(t, config.Default())
	term := h.app.Terminal()

	term.Submit("shape cylinder")
	term.Submit("scale 9")
	term.Submit("rotate off")
	term.Submit("color #FF0000")
	st := h.app.Panel().State()
	assert.Equal(t, shapes.Cylinder, st.Shape)
	assert.InDelta(t, 3.0, st.Scale, 1e-6)
	assert.False(t, st.AutoRotate)
	assert.Equal(t, "#ff0000", st.Color)

	term.Submit("route /geometry-3d")
	h.tick()
	require.NotNil(t, h.app.Session())
	assert.Equal(t, "3D view of cylinder with manual rotation", h.app.AccessibleLabel())

	term.Submit("theme dark")
	assert.Equal(t, nav.Dark, h.app.Navbar().Theme())
	term.Submit("grid on")
	assert.Equal(t, []bool{false, true}, h.grid)
	term.Submit("fps")
	assert.True(t, h.app.Debug().ShowFPS)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	term.Submit("save -path " + path)
	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cylinder", saved.Viewer.Shape)
	assert.Equal(t, "dark", saved.Theme)
	assert.True(t, saved.ShowGrid)
	assert.True(t, saved.ShowFPS)

	term.Submit("route /nowhere")
	lines := h.log.Lines()
	assert.Contains(t, lines[len(lines)-1], "unknown route")
}

func TestPrefsSeedState(t *testing.T) {
	p := config.Default()
	p.Viewer.Shape = "sphere"
	p.Viewer.AutoRotate = false
	p.Theme = "dark"
	h := newHarness(t, p)
	assert.Equal(t, "dark", h.app.Engine().RootClass())
	h.openExplorer(t)
	assert.Equal(t, "3D view of sphere with manual rotation", h.app.AccessibleLabel())
}

type fakeFonts struct{}

func (fakeFonts) Install(_ context.Context, family string) (fonts.Match, error) {
	if family == "Missing" {
		return fonts.Match{}, errors.New("not found")
	}
	return fonts.Match{Rel: family + "-Regular.ttf", Full: "/fonts/" + family + "-Regular.ttf"}, nil
}

func TestFontCommandLoadsInBackground(t *testing.T) {
	var loaded []string
	a, err := New(Options{
		Prefs:    config.Default(),
		Backend:  &fakeBackend{},
		Frames:   frame.New(),
		Surface:  newFakeSurface(),
		Fonts:    fakeFonts{},
		LoadFont: func(path string) bool { loaded = append(loaded, path); return true },
	})
	require.NoError(t, err)

	a.Terminal().Submit("font Open Sans")
	assert.True(t, a.FontPending())
	a.Terminal().Submit("font Inter")
	require.Eventually(t, func() bool {
		a.Update(Input{Width: 1280, Height: 900})
		return !a.FontPending()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"/fonts/Open Sans-Regular.ttf"}, loaded)
	assert.Equal(t, "Open Sans", a.Prefs().Font)

	a.Terminal().Submit("font Missing")
	require.Eventually(t, func() bool {
		a.Update(Input{Width: 1280, Height: 900})
		return !a.FontPending()
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "Open Sans", a.Prefs().Font)
}
