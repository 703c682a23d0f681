package controls

import (
	"testing"

	"geometry-explorer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestOrbit() *Orbit {
	cam := scene.NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.LookAt(mgl32.Vec3{})
	return NewOrbit(cam)
}

func TestPointerDragStartsInsideBounds(t *testing.T) {
	o := newTestOrbit()
	var p Pointer
	b := Bounds{X: 100, Y: 100, W: 200, H: 200}

	assert.False(t, p.Feed(PointerState{X: 10, Y: 10, Down: true}, b, o))
	assert.False(t, p.Dragging())
	assert.False(t, p.Feed(PointerState{X: 150, Y: 150, Down: true}, b, o), "held from outside does not start a drag")
	p.Feed(PointerState{X: 150, Y: 150}, b, o)

	assert.True(t, p.Feed(PointerState{X: 150, Y: 150, Down: true}, b, o))
	assert.True(t, p.Dragging())
	assert.True(t, p.Feed(PointerState{X: 400, Y: 150, Down: true}, b, o), "drag continues outside")
	assert.True(t, o.Update())

	p.Feed(PointerState{X: 400, Y: 150}, b, o)
	assert.False(t, p.Dragging())
}

func TestPointerWheelOnlyInside(t *testing.T) {
	o := newTestOrbit()
	var p Pointer
	b := Bounds{W: 100, H: 100}

	assert.False(t, p.Feed(PointerState{X: 200, Y: 50, Wheel: 1}, b, o))
	assert.True(t, o.Settled())
	assert.True(t, p.Feed(PointerState{X: 50, Y: 50, Wheel: 1}, b, o))
	before := o.camera.Position.Len()
	o.Update()
	assert.Less(t, o.camera.Position.Len(), before)
}

func TestPointerReset(t *testing.T) {
	o := newTestOrbit()
	var p Pointer
	b := Bounds{W: 100, H: 100}
	p.Feed(PointerState{X: 5, Y: 5, Down: true}, b, o)
	p.Reset()
	assert.False(t, p.Dragging())
}
