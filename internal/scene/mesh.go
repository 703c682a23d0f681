package scene

import (
	"image/color"

	"geometry-explorer/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is a shape descriptor plus the lifetime of whatever vertex buffers a
// backend builds for it.
type Geometry struct {
	resource
	Desc shapes.Geometry
}

// NewGeometry wraps desc. No backend memory is allocated until a renderer uploads it.
func NewGeometry(desc shapes.Geometry) *Geometry {
	return &Geometry{Desc: desc}
}

// Material is a physically-based surface description. Backends that lack a full PBR
// pipeline approximate Roughness and ignore Metalness.
type Material struct {
	resource
	Color     color.RGBA
	Roughness float32
	Metalness float32
}

// NewMaterial returns a material with the given base colour.
func NewMaterial(c color.RGBA, roughness, metalness float32) *Material {
	return &Material{Color: c, Roughness: roughness, Metalness: metalness}
}

// SetColor changes the base colour in place.
func (m *Material) SetColor(c color.RGBA) {
	m.Color = c
}

// Transform is position, XYZ Euler rotation (radians) and per-axis scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// SetScalar sets a uniform scale.
func (t *Transform) SetScalar(s float32) {
	t.Scale = mgl32.Vec3{s, s, s}
}

// Matrix returns T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(t.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Mesh is a drawable node: geometry, material and transform.
type Mesh struct {
	Geometry      *Geometry
	Material      *Material
	Transform     Transform
	CastShadow    bool
	ReceiveShadow bool
}

// NewMesh returns a mesh with an identity transform.
func NewMesh(g *Geometry, m *Material) *Mesh {
	return &Mesh{Geometry: g, Material: m, Transform: Identity()}
}

// Dispose releases the geometry and material. It reports whether anything was released.
func (m *Mesh) Dispose() bool {
	released := false
	if m.Geometry != nil && m.Geometry.Dispose() {
		released = true
	}
	if m.Material != nil && m.Material.Dispose() {
		released = true
	}
	return released
}

// Disposed reports whether both the geometry and material are released.
func (m *Mesh) Disposed() bool {
	return (m.Geometry == nil || m.Geometry.Disposed()) &&
		(m.Material == nil || m.Material.Disposed())
}

func (*Mesh) object() {}
