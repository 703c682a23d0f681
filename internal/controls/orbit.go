package controls

import (
	"geometry-explorer/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// polarEpsilon keeps the camera off the poles so the up vector stays valid.
	polarEpsilon = 1e-3
	// settleEpsilon is the remaining angular velocity below which damping stops.
	settleEpsilon = 1e-6
	// moveEpsilon absorbs float32 noise from the spherical round trip.
	moveEpsilon = 1e-4
)

// Orbit rotates and dollies a camera around a target, like a turntable. Input adds
// angular velocity; Update applies it. With damping enabled the velocity decays by
// DampingFactor each Update, so Update must run every frame for the motion to settle.
type Orbit struct {
	camera *scene.Camera

	Target        mgl32.Vec3
	EnableDamping bool
	DampingFactor float32
	RotateSpeed   float32
	ZoomSpeed     float32
	MinDistance   float32
	MaxDistance   float32

	thetaDelta float32
	phiDelta   float32
	scale      float32
	disposed   bool
}

// NewOrbit attaches controls to cam, orbiting cam.Target.
func NewOrbit(cam *scene.Camera) *Orbit {
	return &Orbit{
		camera:        cam,
		Target:        cam.Target,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0.5,
		MaxDistance:   100,
		scale:         1,
	}
}

// Drag converts a pointer movement in pixels into orbit velocity. A drag across the
// full viewport height turns the camera once around.
func (o *Orbit) Drag(dx, dy, viewportHeight float32) {
	if o.disposed || viewportHeight <= 0 {
		return
	}
	o.thetaDelta -= 2 * math32.Pi * dx / viewportHeight * o.RotateSpeed
	o.phiDelta -= 2 * math32.Pi * dy / viewportHeight * o.RotateSpeed
}

// Zoom dollies toward the target for positive steps and away for negative ones.
func (o *Orbit) Zoom(steps float32) {
	if o.disposed || steps == 0 {
		return
	}
	factor := math32.Pow(0.95, o.ZoomSpeed*math32.Abs(steps))
	if steps > 0 {
		o.scale *= factor
	} else {
		o.scale /= factor
	}
}

// Update moves the camera by the pending velocity and reports whether it moved.
func (o *Orbit) Update() bool {
	if o.disposed {
		return false
	}
	offset := o.camera.Position.Sub(o.Target)
	radius := offset.Len()
	if radius == 0 {
		radius = o.MinDistance
	}
	theta := math32.Atan2(offset.X(), offset.Z())
	phi := math32.Acos(clamp(offset.Y()/radius, -1, 1))

	dTheta, dPhi := o.thetaDelta, o.phiDelta
	if o.EnableDamping {
		dTheta *= o.DampingFactor
		dPhi *= o.DampingFactor
	}
	theta += dTheta
	phi = clamp(phi+dPhi, polarEpsilon, math32.Pi-polarEpsilon)
	radius = clamp(radius*o.scale, o.MinDistance, o.MaxDistance)

	sinPhi := math32.Sin(phi)
	next := o.Target.Add(mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	})
	moved := !next.ApproxEqualThreshold(o.camera.Position, moveEpsilon)
	o.camera.Position = next
	o.camera.LookAt(o.Target)

	if o.EnableDamping {
		o.thetaDelta *= 1 - o.DampingFactor
		o.phiDelta *= 1 - o.DampingFactor
		if math32.Abs(o.thetaDelta) < settleEpsilon && math32.Abs(o.phiDelta) < settleEpsilon {
			o.thetaDelta, o.phiDelta = 0, 0
		}
	} else {
		o.thetaDelta, o.phiDelta = 0, 0
	}
	o.scale = 1
	return moved
}

// Settled reports whether there is no pending motion.
func (o *Orbit) Settled() bool {
	return o.thetaDelta == 0 && o.phiDelta == 0 && o.scale == 1
}

// Dispose detaches the controls. Further input and updates are ignored.
func (o *Orbit) Dispose() {
	o.disposed = true
	o.thetaDelta, o.phiDelta, o.scale = 0, 0, 1
}

// Disposed reports whether Dispose has been called.
func (o *Orbit) Disposed() bool {
	return o.disposed
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
