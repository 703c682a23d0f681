package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	resource
	Color     color.RGBA
	Intensity float32
}

// NewAmbientLight returns an ambient light.
func NewAmbientLight(c color.RGBA, intensity float32) *AmbientLight {
	return &AmbientLight{Color: c, Intensity: intensity}
}

func (*AmbientLight) object() {}

// DirectionalLight shines from Position toward the origin, like the sun.
type DirectionalLight struct {
	resource
	Color      color.RGBA
	Intensity  float32
	Position   mgl32.Vec3
	CastShadow bool
}

// NewDirectionalLight returns a directional light placed at pos.
func NewDirectionalLight(c color.RGBA, intensity float32, pos mgl32.Vec3) *DirectionalLight {
	return &DirectionalLight{Color: c, Intensity: intensity, Position: pos}
}

// Direction returns the normalised vector from the origin toward the light.
func (l *DirectionalLight) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

func (*DirectionalLight) object() {}
