package graphics

import (
	"geometry-explorer/internal/frame"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Smallest window the page layout still fits in.
const (
	minWidth  = 640
	minHeight = 480
)

// Options configures the window.
type Options struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
}

// Run opens the window and drives the main loop until the window is closed. Each
// iteration it calls update (input, layout), flushes frames (offscreen rendering paced
// by the display), then clears the screen and calls draw (2D composition). shutdown
// runs before the GL context goes away so GPU resources can be released.
func Run(opts Options, frames *frame.Scheduler, update, draw, shutdown func()) {
	var flags uint32 = rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint
	rl.SetConfigFlags(flags)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(minWidth, minHeight)
	if opts.Fullscreen {
		// Monitor size is only known once the window exists.
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
		rl.ToggleFullscreen()
	}

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via window button
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update()
		frames.Flush()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}
