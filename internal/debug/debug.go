package debug

import (
	"fmt"
	"image/color"
	"runtime"

	"geometry-explorer/internal/ui"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

var overlayColor = color.RGBA{R: 22, G: 163, B: 74, A: 255}

// Stats is the per-frame data the overlay can show.
type Stats struct {
	FPS    int32
	Frames uint64 // render loop frames of the mounted viewer
	Meshes int    // geometries holding GPU buffers
}

// Debug holds runtime overlays (FPS, viewer stats, heap). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowStats    bool
	ShowMemAlloc bool

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
	readMem    func(*runtime.MemStats)
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{readMem: runtime.ReadMemStats}
}

// Enabled reports whether any overlay is visible.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowStats || d.ShowMemAlloc
}

// Lines returns the overlay text for st. Text is only rebuilt every updateInterval
// calls, or when the set of visible overlays changes.
func (d *Debug) Lines(st Stats) []string {
	d.frameCount++
	want := 0
	if d.ShowFPS {
		want++
	}
	if d.ShowStats {
		want += 2
	}
	if d.ShowMemAlloc {
		want++
	}
	if len(d.lines) == want && d.frameCount%updateInterval != 0 {
		return d.lines
	}
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", st.FPS))
	}
	if d.ShowStats {
		d.lines = append(d.lines,
			fmt.Sprintf("Frames: %d", st.Frames),
			fmt.Sprintf("Meshes: %d", st.Meshes))
	}
	if d.ShowMemAlloc {
		d.readMem(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	return d.lines
}

// Draw renders the enabled overlays right-aligned at the top of the screen, below top px.
func (d *Debug) Draw(p ui.Painter, screenW, top float32, st Stats) {
	y := top + padding
	for _, line := range d.Lines(st) {
		x := screenW - p.MeasureText(line, fontSize) - padding
		p.Text(line, x, y, fontSize, overlayColor)
		y += lineHeight
	}
}
