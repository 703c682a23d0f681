package scene

import "github.com/go-gl/mathgl/mgl32"

// shadowLift keeps projected shadows just above the receiving plane to avoid z-fighting.
const shadowLift = 0.002

// ShadowMatrix flattens geometry onto the horizontal plane y = planeY along lightDir,
// the direction from the scene toward a directional light. Multiply it on the left of a
// model matrix to get the shadow caster's footprint. lightDir must point upward.
//
//	x' = x - dx/dy * (y - planeY)
//	y' = planeY
//	z' = z - dz/dy * (y - planeY)
func ShadowMatrix(lightDir mgl32.Vec3, planeY float32) mgl32.Mat4 {
	dy := lightDir.Y()
	if dy <= 0 {
		dy = 1e-4
	}
	kx := lightDir.X() / dy
	kz := lightDir.Z() / dy
	y := planeY + shadowLift
	// Column-major.
	return mgl32.Mat4{
		1, 0, 0, 0,
		-kx, 0, -kz, 0,
		0, 0, 1, 0,
		kx * planeY, y, kz * planeY, 1,
	}
}
