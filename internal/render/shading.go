package render

import (
	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// frameLight is the lighting of one rendered frame.
type frameLight struct {
	viewPos   mgl32.Vec3
	dir       mgl32.Vec3 // toward the light
	color     [3]float32
	intensity float32
	ambient   [3]float32
	shadows   bool
}

// lightFor collects the first directional light and the summed ambient term.
// Without a directional light the scene is lit from straight above at zero intensity.
func lightFor(s *scene.Scene, cam *scene.Camera) frameLight {
	fl := frameLight{
		viewPos: cam.Position,
		dir:     mgl32.Vec3{0, 1, 0},
		color:   [3]float32{1, 1, 1},
		ambient: s.Ambient(),
	}
	if suns := s.DirectionalLights(); len(suns) > 0 {
		sun := suns[0]
		c := scene.Linear(sun.Color)
		fl.dir = sun.Direction()
		fl.color = [3]float32{c[0], c[1], c[2]}
		fl.intensity = sun.Intensity
		fl.shadows = sun.CastShadow
	}
	return fl
}

// surface is the Blinn-Phong approximation of a PBR material.
type surface struct {
	specularPower    float32
	specularStrength float32
}

// surfaceFor maps roughness to highlight tightness: smooth surfaces get small sharp
// highlights, rough ones broad dim ones. Metalness adds a little strength.
func surfaceFor(m *scene.Material) surface {
	r := math32.Max(0, math32.Min(1, m.Roughness))
	smooth := 1 - r
	return surface{
		specularPower:    4 + 124*smooth*smooth,
		specularStrength: 0.5*smooth + 0.25*math32.Max(0, math32.Min(1, m.Metalness)),
	}
}

// modelOffset recentres raylib meshes that are not generated around the origin.
func modelOffset(g shapes.Geometry) mgl32.Mat4 {
	if g.Primitive == shapes.CylinderPrimitive {
		return mgl32.Translate3D(0, -g.Height/2, 0)
	}
	return mgl32.Ident4()
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout. Both number elements
// down the columns, so M<i> is m[i].
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// genMesh builds GPU vertex data for g. raylib uploads generated meshes immediately.
func genMesh(g shapes.Geometry) rl.Mesh {
	switch g.Primitive {
	case shapes.SpherePrimitive:
		return rl.GenMeshSphere(g.Radius, g.HeightSegments, g.WidthSegments)
	case shapes.CylinderPrimitive:
		return rl.GenMeshCylinder(g.RadiusBottom, g.Height, g.RadialSegments)
	case shapes.PlanePrimitive:
		return rl.GenMeshPlane(g.Width, g.Depth, 1, 1)
	default:
		return rl.GenMeshCube(g.Width, g.Height, g.Depth)
	}
}
