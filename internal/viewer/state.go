package viewer

import "geometry-explorer/internal/shapes"

// Slider limits for the primitive's uniform scale.
const (
	MinScale  = 0.1
	MaxScale  = 3.0
	ScaleStep = 0.1
)

// DefaultColor is the primitive colour at mount.
const DefaultColor = "#22c55e"

// State is what the control panel edits and the session presents.
type State struct {
	Shape      shapes.Kind
	Color      string
	Scale      float32
	AutoRotate bool
}

// DefaultState returns a rotating green unit cube.
func DefaultState() State {
	return State{
		Shape:      shapes.Cube,
		Color:      DefaultColor,
		Scale:      1,
		AutoRotate: true,
	}
}

// RotationMode names the rotation mode for accessibility text.
func (s State) RotationMode() string {
	if s.AutoRotate {
		return "automatic"
	}
	return "manual"
}
