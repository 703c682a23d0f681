package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"geometry-explorer/internal/app"
	"geometry-explorer/internal/config"
	"geometry-explorer/internal/env"
	"geometry-explorer/internal/fonts"
	"geometry-explorer/internal/frame"
	"geometry-explorer/internal/graphics"
	"geometry-explorer/internal/logger"
	"geometry-explorer/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}

	configPath := flag.String("config", config.Path(), "preferences file")
	cssPath := flag.String("css", "", "stylesheet replacing the built-in one")
	width := flag.Int("width", 0, "window width (overrides config)")
	height := flag.Int("height", 0, "window height (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	flag.Parse()

	prefs, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	prefs = prefs.ApplyEnv()
	if *width > 0 {
		prefs.Window.Width = int32(*width)
	}
	if *height > 0 {
		prefs.Window.Height = int32(*height)
	}
	if *fullscreen {
		prefs.Window.Fullscreen = true
	}

	log := logger.New(prefs.LogFile)
	slogger := log.Slog(slog.LevelInfo)
	frames := frame.New()
	backend := render.NewBackend(slogger)
	surface := render.NewSurface()
	painter := &render.Painter{}

	a, err := app.New(app.Options{
		Prefs:      prefs,
		ConfigPath: *configPath,
		CSSPath:    *cssPath,
		Backend:    backend,
		Frames:     frames,
		Surface:    surface,
		Log:        log,
		Text:       painter,
		SetGrid:    func(show bool) { backend.ShowGrid = show },
		Fonts:      fonts.NewInstaller(fonts.InstallDir),
		LoadFont:   painter.LoadFont,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	started := false
	update := func() {
		if !started {
			started = true
			a.SetPixelRatio(render.PixelRatio())
			loadFont(painter, prefs.Font, slogger)
		}
		in := app.Input{
			Width:   float32(rl.GetScreenWidth()),
			Height:  float32(rl.GetScreenHeight()),
			Pointer: render.ReadPointer(),
			Keys:    render.ReadKeys(),
			FPS:     rl.GetFPS(),
		}
		in.ClickX, in.ClickY, in.Clicked = render.Clicked()
		a.Update(in)
	}
	draw := func() { a.Draw(painter) }
	shutdown := func() {
		a.Shutdown()
		painter.Unload()
	}

	graphics.Run(graphics.Options{
		Width:      prefs.Window.Width,
		Height:     prefs.Window.Height,
		Title:      prefs.Window.Title,
		Fullscreen: prefs.Window.Fullscreen,
		TargetFPS:  prefs.Window.TargetFPS,
	}, frames, update, draw, shutdown)
}

// loadFont finds search among the system fonts and loads it; raylib's default font
// stays in use when nothing matches.
func loadFont(p *render.Painter, search string, log *slog.Logger) {
	if search == "" {
		return
	}
	m, err := fonts.FindFont(search)
	if err != nil {
		log.Warn("font not found", "search", search, "err", err)
		return
	}
	if !p.LoadFont(m.Full) {
		log.Warn("font failed to load", "path", m.Full)
		return
	}
	log.Info("font loaded", "path", m.Rel)
}
