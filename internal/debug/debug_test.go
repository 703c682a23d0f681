package debug

import (
	"image/color"
	"runtime"
	"testing"

	"geometry-explorer/internal/ui"

	"github.com/stretchr/testify/assert"
)

func TestHiddenByDefault(t *testing.T) {
	d := New()
	assert.False(t, d.Enabled())
	assert.Empty(t, d.Lines(Stats{FPS: 60}))
}

func TestLinesRefreshOnInterval(t *testing.T) {
	d := New()
	d.ShowFPS = true
	assert.Equal(t, []string{"FPS: 60"}, d.Lines(Stats{FPS: 60}))
	assert.Equal(t, []string{"FPS: 60"}, d.Lines(Stats{FPS: 59}), "cached between refreshes")

	for i := 0; i < updateInterval; i++ {
		d.Lines(Stats{FPS: 30})
	}
	assert.Equal(t, []string{"FPS: 30"}, d.Lines(Stats{FPS: 30}))
}

func TestToggleRebuildsImmediately(t *testing.T) {
	d := New()
	d.readMem = func(m *runtime.MemStats) { m.Alloc = 3 * 1024 * 1024 }
	d.ShowFPS = true
	d.Lines(Stats{FPS: 60})

	d.ShowStats = true
	d.ShowMemAlloc = true
	assert.Equal(t, []string{"FPS: 60", "Frames: 42", "Meshes: 2", "Mem: 3.00 MiB"},
		d.Lines(Stats{FPS: 60, Frames: 42, Meshes: 2}))
}

type recorder struct{ texts []string }

func (r *recorder) FillRect(ui.Rect, color.RGBA)                 {}
func (r *recorder) StrokeRect(ui.Rect, color.RGBA)               {}
func (r *recorder) Text(s string, _, _, _ float32, _ color.RGBA) { r.texts = append(r.texts, s) }
func (r *recorder) MeasureText(s string, size float32) float32   { return float32(len(s)) * size / 2 }

func TestDraw(t *testing.T) {
	d := New()
	d.ShowFPS = true
	p := &recorder{}
	d.Draw(p, 800, 56, Stats{FPS: 60})
	assert.Equal(t, []string{"FPS: 60"}, p.texts)
}
