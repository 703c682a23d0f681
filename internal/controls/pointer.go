package controls

// Bounds is the screen area that accepts pointer input, in pixels.
type Bounds struct {
	X, Y, W, H float32
}

func (b Bounds) contains(x, y float32) bool {
	return x >= b.X && y >= b.Y && x < b.X+b.W && y < b.Y+b.H
}

// PointerState is one frame of pointer input.
type PointerState struct {
	X, Y  float32
	Down  bool    // primary button held
	Wheel float32 // wheel steps this frame, positive away from the user
}

// Pointer turns raw pointer frames into orbit gestures. A drag starts only when the
// button goes down inside the bounds, then follows the pointer anywhere until release.
// Wheel input counts only while the pointer is inside.
type Pointer struct {
	dragging bool
	lastX    float32
	lastY    float32
	wasDown  bool
}

// Dragging reports whether a drag gesture is in progress.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// Feed applies one frame of input to o and reports whether the frame was consumed
// by the orbit (a drag in progress or a wheel step inside bounds).
func (p *Pointer) Feed(st PointerState, b Bounds, o *Orbit) bool {
	consumed := false
	pressed := st.Down && !p.wasDown
	p.wasDown = st.Down

	switch {
	case pressed && b.contains(st.X, st.Y):
		p.dragging = true
		consumed = true
	case p.dragging && st.Down:
		o.Drag(st.X-p.lastX, st.Y-p.lastY, b.H)
		consumed = true
	case !st.Down:
		p.dragging = false
	}
	p.lastX, p.lastY = st.X, st.Y

	if st.Wheel != 0 && b.contains(st.X, st.Y) {
		o.Zoom(st.Wheel)
		consumed = true
	}
	return consumed
}

// Reset drops any gesture in progress, e.g. when the viewer unmounts.
func (p *Pointer) Reset() {
	*p = Pointer{}
}
