package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"geometry-explorer/internal/controls"
	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNoContainer is returned by Mount when there is no container or it has no area.
	ErrNoContainer = errors.New("viewer: container missing or empty")
	// ErrSessionClosed is returned by updates after Teardown.
	ErrSessionClosed = errors.New("viewer: session closed")
	// ErrInvalidScale is returned for non-positive scale factors.
	ErrInvalidScale = errors.New("viewer: scale must be positive")
)

// Scene setup constants.
const (
	CameraFov  = 75
	CameraNear = 0.1
	CameraFar  = 1000

	DampingFactor = 0.05

	AmbientIntensity     = 0.6
	DirectionalIntensity = 0.8

	Roughness = 0.4
	Metalness = 0.1

	// Per-frame auto rotation in radians.
	RotationStepX = 0.005
	RotationStepY = 0.01

	maxPixelRatio = 2
)

var (
	cameraStart  = mgl32.Vec3{2, 2, 3}
	sunPosition  = mgl32.Vec3{5, 5, 5}
	background   = scene.MustHex("#f8fafc")
	groundColor  = color.RGBA{255, 255, 255, 255}
	whiteLight   = color.RGBA{255, 255, 255, 255}
	fullRotation = 2 * math32.Pi
)

// Options are the collaborators a session needs from the host.
type Options struct {
	Backend    Backend
	Frames     Scheduler
	PixelRatio float32
	Logger     *slog.Logger
}

// Session owns one rendering context bound to a container: scene, camera, renderer,
// orbit controls, lights, ground plane, the live primitive, the render loop and the
// resize watcher. Everything it acquires is released by Teardown, once.
//
// A session is single-threaded: updates, frame ticks and resize notifications must
// all come from the host's event thread.
type Session struct {
	container Container
	state     State
	log       *slog.Logger

	scene     *scene.Scene
	camera    *scene.Camera
	renderer  Renderer
	attached  bool
	controls  *controls.Orbit
	ambient   *scene.AmbientLight
	sun       *scene.DirectionalLight
	ground    *scene.Mesh
	primitive *scene.Mesh
	loop      *Loop
	resize    *ResizeWatcher

	rebuilds int
	closed   bool
}

// Mount builds a session inside c from the given state and starts rendering.
// On error nothing stays acquired.
func Mount(c Container, st State, opts Options) (*Session, error) {
	if c == nil {
		return nil, ErrNoContainer
	}
	width, height := c.Size()
	if width <= 0 || height <= 0 {
		return nil, ErrNoContainer
	}
	if opts.Backend == nil || opts.Frames == nil {
		return nil, errors.New("viewer: mount needs a backend and a frame scheduler")
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	mtlColor, err := scene.ParseHex(st.Color)
	if err != nil {
		return nil, fmt.Errorf("viewer: mount: %w", err)
	}
	if st.Scale <= 0 {
		return nil, ErrInvalidScale
	}

	s := &Session{container: c, state: st, log: log}
	s.scene = scene.New(background)

	s.camera = scene.NewPerspectiveCamera(CameraFov, float32(width)/float32(height), CameraNear, CameraFar)
	s.camera.Position = cameraStart
	s.camera.LookAt(mgl32.Vec3{})

	ratio := opts.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	s.renderer, err = opts.Backend.NewRenderer(width, height, RendererOptions{
		Antialias:  true,
		Shadows:    true,
		PixelRatio: math32.Min(ratio, maxPixelRatio),
	})
	if err != nil {
		s.Teardown()
		return nil, fmt.Errorf("viewer: create renderer: %w", err)
	}
	c.Attach(s.renderer)
	s.attached = true

	s.controls = controls.NewOrbit(s.camera)
	s.controls.EnableDamping = true
	s.controls.DampingFactor = DampingFactor

	s.ambient = scene.NewAmbientLight(whiteLight, AmbientIntensity)
	s.scene.Add(s.ambient)
	s.sun = scene.NewDirectionalLight(whiteLight, DirectionalIntensity, sunPosition)
	s.sun.CastShadow = true
	s.scene.Add(s.sun)

	s.primitive = newPrimitive(st.Shape, mtlColor, st.Scale)
	s.scene.Add(s.primitive)

	s.ground = scene.NewMesh(
		scene.NewGeometry(shapes.Ground()),
		scene.NewMaterial(groundColor, 1, 0),
	)
	s.ground.Transform.Position = mgl32.Vec3{0, shapes.GroundY, 0}
	s.ground.ReceiveShadow = true
	s.scene.Add(s.ground)

	s.loop = NewLoop(opts.Frames, s.frame)
	s.loop.Start()
	s.resize = WatchResize(c, s.resized)

	log.Info("viewer mounted", "width", width, "height", height, "shape", st.Shape.String())
	return s, nil
}

func newPrimitive(kind shapes.Kind, c color.RGBA, scale float32) *scene.Mesh {
	m := scene.NewMesh(
		scene.NewGeometry(shapes.New(kind)),
		scene.NewMaterial(c, Roughness, Metalness),
	)
	m.CastShadow = true
	m.ReceiveShadow = true
	m.Transform.SetScalar(scale)
	return m
}

// frame is the render loop step.
func (s *Session) frame() {
	if s.closed {
		return
	}
	if s.state.AutoRotate && s.primitive != nil {
		rot := &s.primitive.Transform.Rotation
		rot[0] = math32.Mod(rot[0]+RotationStepX, fullRotation)
		rot[1] = math32.Mod(rot[1]+RotationStepY, fullRotation)
	}
	s.controls.Update()
	s.renderer.Render(s.scene, s.camera)
}

func (s *Session) resized(width, height int) {
	if s.closed || width <= 0 || height <= 0 {
		return
	}
	s.camera.SetAspect(float32(width) / float32(height))
	s.renderer.SetSize(width, height)
	s.log.Debug("viewer resized", "width", width, "height", height)
}

// OnShapeChange replaces the primitive with a new one of the given kind, keeping the
// current colour and scale. The old primitive is removed and disposed first.
func (s *Session) OnShapeChange(kind shapes.Kind) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.state.Shape = kind
	c, err := scene.ParseHex(s.state.Color)
	if err != nil {
		return fmt.Errorf("viewer: shape change: %w", err)
	}
	if old := s.primitive; old != nil {
		s.scene.Remove(old)
		old.Dispose()
		s.primitive = nil
	}
	s.primitive = newPrimitive(kind, c, s.state.Scale)
	s.scene.Add(s.primitive)
	s.rebuilds++
	s.log.Debug("primitive rebuilt", "shape", kind.String())
	return nil
}

// OnColorChange sets the primitive's material colour in place.
func (s *Session) OnColorChange(hex string) error {
	if s.closed {
		return ErrSessionClosed
	}
	c, err := scene.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("viewer: colour change: %w", err)
	}
	s.state.Color = scene.Hex(c)
	if s.primitive != nil {
		s.primitive.Material.SetColor(c)
	}
	return nil
}

// OnScaleChange sets a uniform scale on the primitive in place.
func (s *Session) OnScaleChange(scale float32) error {
	if s.closed {
		return ErrSessionClosed
	}
	if scale <= 0 {
		return ErrInvalidScale
	}
	s.state.Scale = scale
	if s.primitive != nil {
		s.primitive.Transform.SetScalar(scale)
	}
	return nil
}

// OnAutoRotateChange turns automatic rotation on or off. The render loop reads the
// flag on its next frame.
func (s *Session) OnAutoRotateChange(enabled bool) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.state.AutoRotate = enabled
	return nil
}

// Teardown stops the render loop, disconnects the resize watcher, disposes the
// controls, scene resources and renderer, and detaches the output surface.
// Only the first call does anything.
func (s *Session) Teardown() {
	if s.closed {
		return
	}
	s.closed = true
	if s.loop != nil {
		s.loop.Stop()
	}
	if s.resize != nil {
		s.resize.Disconnect()
	}
	if s.controls != nil {
		s.controls.Dispose()
	}
	for _, m := range []*scene.Mesh{s.primitive, s.ground} {
		if m != nil {
			s.scene.Remove(m)
			m.Dispose()
		}
	}
	s.primitive = nil
	if s.ambient != nil {
		s.scene.Remove(s.ambient)
		s.ambient.Dispose()
	}
	if s.sun != nil {
		s.scene.Remove(s.sun)
		s.sun.Dispose()
	}
	if s.renderer != nil {
		s.renderer.Dispose()
		if s.attached {
			s.container.Detach(s.renderer)
			s.attached = false
		}
	}
	s.log.Info("viewer torn down", "frames", s.Frames(), "rebuilds", s.rebuilds)
}

// Label is the accessible description of the view.
func (s *Session) Label() string {
	return fmt.Sprintf("3D view of %s with %s rotation", s.state.Shape, s.state.RotationMode())
}

// State returns the presentation state the session currently shows.
func (s *Session) State() State {
	return s.state
}

// Primitive returns the live mesh, or nil after Teardown.
func (s *Session) Primitive() *scene.Mesh {
	return s.primitive
}

// Scene returns the scene graph.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Camera returns the session camera.
func (s *Session) Camera() *scene.Camera {
	return s.camera
}

// Controls returns the orbit controls so the host can feed pointer input.
func (s *Session) Controls() *controls.Orbit {
	return s.controls
}

// Renderer returns the renderer whose surface is attached to the container.
func (s *Session) Renderer() Renderer {
	return s.renderer
}

// Frames returns how many render loop frames have run.
func (s *Session) Frames() uint64 {
	if s.loop == nil {
		return 0
	}
	return s.loop.Frames()
}

// Rebuilds returns how many times the primitive was replaced.
func (s *Session) Rebuilds() int {
	return s.rebuilds
}

// Closed reports whether Teardown has run.
func (s *Session) Closed() bool {
	return s.closed
}
