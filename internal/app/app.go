package app

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"geometry-explorer/internal/commands"
	"geometry-explorer/internal/config"
	"geometry-explorer/internal/controls"
	"geometry-explorer/internal/debug"
	"geometry-explorer/internal/fonts"
	"geometry-explorer/internal/frame"
	"geometry-explorer/internal/logger"
	"geometry-explorer/internal/nav"
	"geometry-explorer/internal/panel"
	"geometry-explorer/internal/terminal"
	"geometry-explorer/internal/ui"
	"geometry-explorer/internal/viewer"
)

//go:embed explorer.css
var defaultCSS string

// Surface is the viewer container as the app sees it: a layout box it can move,
// whose size changes it delivers between frames, and whose contents it can draw.
type Surface interface {
	viewer.Container
	SetBounds(r ui.Rect)
	Notify()
	Draw()
}

// FontSource resolves a font family to a local file, fetching it if needed.
type FontSource interface {
	Install(ctx context.Context, family string) (fonts.Match, error)
}

// Options wires the app to its platform.
type Options struct {
	Prefs       config.Prefs
	ConfigPath  string // where "save" writes prefs; empty disables saving
	CSSPath     string // optional stylesheet replacing the built-in one
	ViewerClass string // extra classes for the viewer container
	Backend     viewer.Backend
	Frames      *frame.Scheduler
	Surface     Surface
	Log         *logger.Logger
	Text        ui.Measurer // used for wrapping; nil estimates widths
	PixelRatio  float32
	SetGrid     func(show bool)
	Fonts       FontSource             // nil disables the font command
	LoadFont    func(path string) bool // applies a font file to the UI
}

type fontResult struct {
	family string
	match  fonts.Match
	err    error
}

// Input is one frame of platform input.
type Input struct {
	Width, Height  float32
	Pointer        controls.PointerState
	Clicked        bool
	ClickX, ClickY float32
	Keys           terminal.Keys
	FPS            int32
}

// App composes the navigation shell, the routed pages and the 3D viewer.
// All methods must be called from the window thread.
type App struct {
	opts  Options
	prefs config.Prefs
	log   *logger.Logger
	slog  *slog.Logger

	engine  *ui.Engine
	navbar  *nav.Navbar
	sidebar *nav.Sidebar
	router  *nav.Router
	panel   *panel.Panel
	pages   map[string]Page

	registry *commands.Registry
	term     *terminal.Terminal
	debug    *debug.Debug
	pointer  controls.Pointer

	session   *viewer.Session
	wantMount bool
	mounts    int

	width, height float32
	dirty         bool
	viewport      ui.Rect
	slider        *ui.Node
	sliderHeld    bool
	view          *ui.Node
	fps           int32

	ctx      context.Context
	cancel   context.CancelFunc
	fontDone chan fontResult
	fontBusy bool
}

// New builds the app in its start state: home page, theme and viewer state from prefs.
func New(opts Options) (*App, error) {
	if opts.Backend == nil || opts.Frames == nil || opts.Surface == nil {
		return nil, errors.New("app: backend, frames and surface are required")
	}
	if opts.Log == nil {
		opts.Log = logger.New("-")
	}
	if opts.Text == nil {
		opts.Text = ui.ApproxMeasurer{}
	}
	prefs := opts.Prefs.Validate()
	a := &App{
		opts:     opts,
		prefs:    prefs,
		log:      opts.Log,
		slog:     opts.Log.Slog(slog.LevelInfo),
		engine:   ui.New(),
		navbar:   nav.NewNavbar(prefs.ThemeValue()),
		sidebar:  nav.NewSidebar(),
		router:   nav.NewRouter(nav.DefaultRoutes(), nav.RouteHome),
		panel:    panel.New(prefs.State()),
		pages:    Pages(),
		registry: commands.NewRegistry(),
		debug:    debug.New(),
		dirty:    true,
		fontDone: make(chan fontResult, 1),
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.term = terminal.New(a.log, a.registry)
	a.debug.ShowFPS = prefs.ShowFPS

	if err := a.loadStyles(); err != nil {
		return nil, err
	}
	a.engine.SetRootClass(a.navbar.Theme().String())
	a.navbar.OnThemeChange(func(t nav.Theme) {
		a.engine.SetRootClass(t.String())
		a.prefs.Theme = t.String()
		a.slog.Info("theme changed", "theme", t.String())
	})
	a.router.OnChange(a.routeChanged)
	if opts.SetGrid != nil {
		opts.SetGrid(prefs.ShowGrid)
	}
	a.registerCommands()
	return a, nil
}

func (a *App) loadStyles() error {
	if a.opts.CSSPath != "" {
		err := a.engine.LoadCSS(a.opts.CSSPath)
		if err == nil {
			return nil
		}
		a.slog.Warn("stylesheet not loaded, using built-in", "path", a.opts.CSSPath, "err", err)
	}
	sheet, err := ui.ParseCSS(defaultCSS)
	if err != nil {
		return fmt.Errorf("app: built-in stylesheet: %w", err)
	}
	a.engine.SetStylesheet(sheet)
	return nil
}

func (a *App) routeChanged(from, to nav.Route) {
	a.dirty = true
	if from.Path == nav.RouteExplorer {
		a.unmount()
	}
	if to.Path == nav.RouteExplorer {
		a.wantMount = true
	}
	a.slog.Info("navigated", "from", from.Path, "to", to.Path)
}

// mount creates the viewer session once the surface has been laid out.
func (a *App) mount() {
	if !a.wantMount || a.session != nil {
		return
	}
	s, err := viewer.Mount(a.opts.Surface, a.panel.State(), viewer.Options{
		Backend:    a.opts.Backend,
		Frames:     a.opts.Frames,
		PixelRatio: a.opts.PixelRatio,
		Logger:     a.slog,
	})
	if errors.Is(err, viewer.ErrNoContainer) {
		// Window too small for now; retry after the next layout.
		return
	}
	a.wantMount = false
	if err != nil {
		a.slog.Error("viewer mount failed", "err", err)
		return
	}
	a.session = s
	a.mounts++
	a.panel.Bind(s)
	a.dirty = true
}

func (a *App) unmount() {
	a.wantMount = false
	a.sliderHeld = false
	a.pointer.Reset()
	if a.session == nil {
		return
	}
	a.panel.Bind(nil)
	a.session.Teardown()
	a.session = nil
	a.dirty = true
}

// Update processes one frame of input: console keys, layout, clicks and orbit gestures.
// Call it before flushing the frame scheduler.
func (a *App) Update(in Input) {
	a.term.Update(in.Keys)
	a.fps = in.FPS
	a.pollFont()

	if in.Width != a.width || in.Height != a.height {
		a.width, a.height = in.Width, in.Height
		a.dirty = true
	}
	if a.dirty {
		a.layout()
	}
	a.opts.Surface.Notify()
	a.mount()
	if a.dirty {
		a.layout()
	}

	if in.Clicked && in.ClickY < a.term.Top(a.height) {
		if a.engine.Click(in.ClickX, in.ClickY) {
			a.dirty = true
		}
	}
	if a.sliderHeld {
		if !in.Pointer.Down || a.slider == nil {
			a.sliderHeld = false
		} else {
			fx, _ := a.slider.Bounds.Local(in.Pointer.X, in.Pointer.Y)
			a.setScale(panel.ScaleAt(fx))
		}
	}
	if a.session != nil && !a.sliderHeld {
		b := a.viewport
		a.pointer.Feed(in.Pointer, controls.Bounds{X: b.X, Y: b.Y, W: b.W, H: b.H}, a.session.Controls())
	}
	if a.dirty {
		a.layout()
	}
}

// fetchFont resolves family in the background; pollFont picks up the result.
func (a *App) fetchFont(family string) error {
	if a.opts.Fonts == nil || a.opts.LoadFont == nil {
		return errors.New("font: no font source")
	}
	if a.fontBusy {
		return errors.New("font: a download is already running")
	}
	a.fontBusy = true
	a.log.Log("fetching font " + family)
	go func() {
		m, err := a.opts.Fonts.Install(a.ctx, family)
		a.fontDone <- fontResult{family: family, match: m, err: err}
	}()
	return nil
}

func (a *App) pollFont() {
	select {
	case r := <-a.fontDone:
		a.fontBusy = false
		if r.err != nil {
			a.slog.Warn("font not installed", "family", r.family, "err", r.err)
			return
		}
		if !a.opts.LoadFont(r.match.Full) {
			a.slog.Warn("font failed to load", "path", r.match.Full)
			return
		}
		a.prefs.Font = r.family
		a.dirty = true
		a.slog.Info("font loaded", "family", r.family, "path", r.match.Rel)
	default:
	}
}

// FontPending reports whether a font download is in flight.
func (a *App) FontPending() bool { return a.fontBusy }

// Draw paints the page, the viewer output and the overlays.
func (a *App) Draw(p ui.Painter) {
	a.engine.Draw(p)
	if a.session != nil {
		a.opts.Surface.Draw()
	}
	a.debug.Draw(p, a.width, navbarHeight, a.stats())
	a.term.Draw(p, a.width, a.height)
}

func (a *App) stats() debug.Stats {
	st := debug.Stats{FPS: a.fps}
	if a.session != nil {
		st.Frames = a.session.Frames()
		if r, ok := a.session.Renderer().(interface{ LiveMeshes() int }); ok {
			st.Meshes = r.LiveMeshes()
		}
	}
	return st
}

// Shutdown tears the viewer down while the GL context still exists and cancels
// any font download.
func (a *App) Shutdown() {
	a.cancel()
	a.unmount()
	a.slog.Info("shutdown", "mounts", a.mounts)
}

// Prefs returns the preferences with the current panel, theme and overlay settings.
func (a *App) Prefs() config.Prefs {
	p := a.prefs
	st := a.panel.State()
	p.Viewer = config.Viewer{
		Shape:      st.Shape.String(),
		Color:      st.Color,
		Scale:      st.Scale,
		AutoRotate: st.AutoRotate,
	}
	p.Theme = a.navbar.Theme().String()
	p.ShowFPS = a.debug.ShowFPS
	return p
}

// SetPixelRatio sets the device pixel ratio used by the next viewer mount.
func (a *App) SetPixelRatio(r float32) { a.opts.PixelRatio = r }

// AccessibleLabel describes the viewer for assistive tech, or "" when it is not mounted.
func (a *App) AccessibleLabel() string {
	if a.session == nil {
		return ""
	}
	return a.session.Label()
}

// Session returns the mounted viewer session, or nil.
func (a *App) Session() *viewer.Session { return a.session }

// Panel returns the control panel.
func (a *App) Panel() *panel.Panel { return a.panel }

// Router returns the router.
func (a *App) Router() *nav.Router { return a.router }

// Navbar returns the navbar.
func (a *App) Navbar() *nav.Navbar { return a.navbar }

// Sidebar returns the sidebar.
func (a *App) Sidebar() *nav.Sidebar { return a.sidebar }

// Engine returns the UI engine.
func (a *App) Engine() *ui.Engine { return a.engine }

// Terminal returns the console.
func (a *App) Terminal() *terminal.Terminal { return a.term }

// Debug returns the overlay settings.
func (a *App) Debug() *debug.Debug { return a.debug }

// Mounts returns how many viewer sessions have been created.
func (a *App) Mounts() int { return a.mounts }
