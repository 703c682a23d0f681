package shapes

// Mesh resolution and size defaults. Radius 0.5 keeps sphere and cylinder the same
// overall size as the unit cube.
const (
	CubeEdge        = 1.0
	SphereRadius    = 0.5
	SphereSegments  = 32
	CylinderRadius  = 0.5
	CylinderHeight  = 1.0
	CylinderRadials = 32

	GroundSize = 10.0
	GroundY    = -1.0
)

// Primitive is the mesh family a Geometry describes.
type Primitive int

const (
	BoxPrimitive Primitive = iota
	SpherePrimitive
	CylinderPrimitive
	PlanePrimitive
)

// Geometry is a backend-neutral description of a primitive mesh. Only the fields that
// matter for Primitive are set; backends generate vertex data from them.
type Geometry struct {
	Primitive Primitive

	// Box
	Width, Height, Depth float32

	// Sphere
	Radius         float32
	WidthSegments  int
	HeightSegments int

	// Cylinder (Height is shared with Box)
	RadiusTop      float32
	RadiusBottom   float32
	RadialSegments int
}

// New returns the geometry for kind. Unknown kinds fall back to the cube.
func New(kind Kind) Geometry {
	switch kind {
	case Sphere:
		return Geometry{
			Primitive:      SpherePrimitive,
			Radius:         SphereRadius,
			WidthSegments:  SphereSegments,
			HeightSegments: SphereSegments,
		}
	case Cylinder:
		return Geometry{
			Primitive:      CylinderPrimitive,
			RadiusTop:      CylinderRadius,
			RadiusBottom:   CylinderRadius,
			Height:         CylinderHeight,
			RadialSegments: CylinderRadials,
		}
	default:
		return Geometry{
			Primitive: BoxPrimitive,
			Width:     CubeEdge,
			Height:    CubeEdge,
			Depth:     CubeEdge,
		}
	}
}

// Ground returns the static shadow-receiving plane placed under the primitive.
// The plane lies in XZ; callers position it at GroundY.
func Ground() Geometry {
	return Geometry{
		Primitive: PlanePrimitive,
		Width:     GroundSize,
		Depth:     GroundSize,
	}
}

// HalfHeight returns half the vertical extent of g at unit scale.
func (g Geometry) HalfHeight() float32 {
	switch g.Primitive {
	case SpherePrimitive:
		return g.Radius
	case PlanePrimitive:
		return 0
	default:
		return g.Height / 2
	}
}
