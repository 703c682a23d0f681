package render

import (
	"geometry-explorer/internal/controls"
	"geometry-explorer/internal/ui"
	"geometry-explorer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is the layout box the viewer mounts into. The app moves it with SetBounds
// during layout; size changes are queued and delivered by Notify, which the app calls
// outside frame callbacks.
type Surface struct {
	bounds    ui.Rect
	attached  []viewer.Renderer
	observers map[int]func(w, h int)
	nextID    int
	notified  [2]int
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{observers: make(map[int]func(w, h int))}
}

// Size implements viewer.Container.
func (s *Surface) Size() (int, int) {
	return int(s.bounds.W), int(s.bounds.H)
}

// Bounds returns the box in window pixels.
func (s *Surface) Bounds() ui.Rect {
	return s.bounds
}

// ControlBounds returns the box in the form orbit pointer input expects.
func (s *Surface) ControlBounds() controls.Bounds {
	return controls.Bounds{X: s.bounds.X, Y: s.bounds.Y, W: s.bounds.W, H: s.bounds.H}
}

// SetBounds moves or resizes the box. Observers hear about size changes on the next Notify.
func (s *Surface) SetBounds(r ui.Rect) {
	s.bounds = r
}

// Notify delivers the current size to every observer if it changed since the last delivery.
func (s *Surface) Notify() {
	w, h := s.Size()
	if [2]int{w, h} == s.notified {
		return
	}
	s.notified = [2]int{w, h}
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.observers[id]; ok {
			fn(w, h)
		}
	}
}

// Attach implements viewer.Container.
func (s *Surface) Attach(r viewer.Renderer) {
	for _, cur := range s.attached {
		if cur == r {
			return
		}
	}
	s.attached = append(s.attached, r)
}

// Detach implements viewer.Container.
func (s *Surface) Detach(r viewer.Renderer) {
	for i, cur := range s.attached {
		if cur == r {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			return
		}
	}
}

// Attached returns how many renderer outputs the surface shows.
func (s *Surface) Attached() int {
	return len(s.attached)
}

// Observe implements viewer.Container.
func (s *Surface) Observe(fn func(w, h int)) func() {
	id := s.nextID
	s.nextID++
	if len(s.observers) == 0 {
		s.notified[0], s.notified[1] = s.Size()
	}
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// Observers returns how many size observers are registered.
func (s *Surface) Observers() int {
	return len(s.observers)
}

// Draw composites every attached raylib renderer's output into the box.
func (s *Surface) Draw() {
	dst := rl.NewRectangle(s.bounds.X, s.bounds.Y, s.bounds.W, s.bounds.H)
	for _, r := range s.attached {
		rr, ok := r.(*Renderer)
		if !ok || rr.Texture().ID == 0 {
			continue
		}
		tex := rr.Texture()
		// Render textures are stored bottom-up.
		src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
		rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}
}
