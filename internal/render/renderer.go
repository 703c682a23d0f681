package render

import (
	"image/color"
	"log/slog"

	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"
	"geometry-explorer/internal/viewer"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// shadowColor is the translucent tint of projected shadows.
var shadowColor = color.RGBA{R: 15, G: 23, B: 42, A: 60}

// gridSlices and gridSpacing size the optional editor grid, matching the ground plane.
const (
	gridSlices  = 10
	gridSpacing = 1.0
)

// Backend creates raylib renderers. It must be used on the thread that owns the GL context.
type Backend struct {
	// ShowGrid draws a reference grid on the ground plane of every renderer.
	ShowGrid bool
	Logger   *slog.Logger
}

// NewBackend returns a backend logging to log (nil discards).
func NewBackend(log *slog.Logger) *Backend {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Backend{Logger: log}
}

// NewRenderer implements viewer.Backend. GPU resources are created lazily on first Render.
func (b *Backend) NewRenderer(width, height int, opts viewer.RendererOptions) (viewer.Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, viewer.ErrNoContainer
	}
	ratio := opts.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return &Renderer{
		backend: b,
		width:   width,
		height:  height,
		ratio:   ratio,
		shadows: opts.Shadows,
		meshes:  make(map[*scene.Geometry]rl.Mesh),
	}, nil
}

// Renderer draws a scene into an offscreen render texture that a Surface composites into
// the window. Vertex buffers are generated the first time a geometry is rendered and
// unloaded when that geometry is disposed.
type Renderer struct {
	backend *Backend
	width   int
	height  int
	ratio   float32
	shadows bool

	target     rl.RenderTexture2D
	targetSize [2]int32
	lit        litShader
	material   rl.Material
	flat       rl.Material
	ready      bool

	meshes   map[*scene.Geometry]rl.Mesh
	uploads  int
	frames   uint64
	disposed bool
}

// SetSize changes the output size in CSS-like pixels. The render texture is rebuilt on the next Render.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

// Size returns the output size before the pixel ratio is applied.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Texture returns the colour attachment of the render target. Its ID is zero before the first Render.
func (r *Renderer) Texture() rl.Texture2D {
	return r.target.Texture
}

// LiveMeshes returns how many geometries currently hold GPU buffers.
func (r *Renderer) LiveMeshes() int {
	return len(r.meshes)
}

// Uploads returns how many meshes were generated over the renderer's lifetime.
func (r *Renderer) Uploads() int {
	return r.uploads
}

// Frames returns how many frames were rendered.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

func (r *Renderer) init() {
	if r.ready {
		return
	}
	r.lit = loadLitShader()
	r.material = rl.LoadMaterialDefault()
	if r.lit.valid() {
		r.material.Shader = r.lit.shader
	} else {
		r.backend.Logger.Warn("lit shader failed to compile, using flat shading")
	}
	r.flat = rl.LoadMaterialDefault()
	r.ready = true
}

func (r *Renderer) ensureTarget() {
	w := int32(math32.Round(float32(r.width) * r.ratio))
	h := int32(math32.Round(float32(r.height) * r.ratio))
	if r.target.ID != 0 && r.targetSize == [2]int32{w, h} {
		return
	}
	if r.target.ID != 0 {
		rl.UnloadRenderTexture(r.target)
	}
	r.target = rl.LoadRenderTexture(w, h)
	rl.SetTextureFilter(r.target.Texture, rl.FilterBilinear)
	r.targetSize = [2]int32{w, h}
}

func (r *Renderer) mesh(g *scene.Geometry) (rl.Mesh, bool) {
	if g == nil || g.Disposed() {
		return rl.Mesh{}, false
	}
	if m, ok := r.meshes[g]; ok {
		return m, true
	}
	m := genMesh(g.Desc)
	r.meshes[g] = m
	r.uploads++
	g.OnDispose(func() { r.release(g) })
	return m, true
}

func (r *Renderer) release(g *scene.Geometry) {
	m, ok := r.meshes[g]
	if !ok {
		return
	}
	delete(r.meshes, g)
	rl.UnloadMesh(&m)
}

// Render draws s through cam: background, receivers, projected shadows, casters, grid.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) {
	if r.disposed || s == nil || cam == nil {
		return
	}
	r.init()
	r.ensureTarget()
	light := lightFor(s, cam)
	r.lit.setLight(light)

	rl.BeginTextureMode(r.target)
	rl.ClearBackground(s.Background)
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	})
	// Use the camera's own clip planes instead of rlgl's fixed ones.
	rl.SetMatrixProjection(toMatrix(cam.ProjectionMatrix()))
	rl.SetMatrixModelview(toMatrix(cam.ViewMatrix()))

	meshes := s.Meshes()
	receiverY, hasReceiver := float32(0), false
	for _, m := range meshes {
		if m.ReceiveShadow && m.Geometry != nil && m.Geometry.Desc.Primitive == shapes.PlanePrimitive {
			receiverY, hasReceiver = m.Transform.Position.Y(), true
			r.draw(m, r.material)
		}
	}
	if r.shadows && light.shadows && hasReceiver {
		shadow := scene.ShadowMatrix(light.dir, receiverY)
		r.setAlbedo(&r.flat, shadowColor)
		for _, m := range meshes {
			if !m.CastShadow {
				continue
			}
			if gm, ok := r.mesh(m.Geometry); ok {
				model := shadow.Mul4(m.Transform.Matrix()).Mul4(modelOffset(m.Geometry.Desc))
				rl.DrawMesh(gm, r.flat, toMatrix(model))
			}
		}
	}
	for _, m := range meshes {
		if m.ReceiveShadow && m.Geometry != nil && m.Geometry.Desc.Primitive == shapes.PlanePrimitive {
			continue
		}
		r.draw(m, r.material)
	}
	if r.backend.ShowGrid {
		rl.PushMatrix()
		rl.Translatef(0, receiverY+0.001, 0)
		rl.DrawGrid(gridSlices, gridSpacing)
		rl.PopMatrix()
	}
	rl.EndMode3D()
	rl.EndTextureMode()
	r.frames++
}

func (r *Renderer) draw(m *scene.Mesh, mtl rl.Material) {
	if m.Material == nil {
		return
	}
	gm, ok := r.mesh(m.Geometry)
	if !ok {
		return
	}
	r.setAlbedo(&mtl, m.Material.Color)
	r.lit.setSurface(surfaceFor(m.Material))
	model := m.Transform.Matrix().Mul4(modelOffset(m.Geometry.Desc))
	rl.DrawMesh(gm, mtl, toMatrix(model))
}

func (r *Renderer) setAlbedo(mtl *rl.Material, c color.RGBA) {
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
}

// Dispose frees the render target, shader, materials and any meshes still cached.
// Geometry dispose listeners registered earlier become no-ops.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	for g, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, g)
	}
	if r.target.ID != 0 {
		rl.UnloadRenderTexture(r.target)
		r.target = rl.RenderTexture2D{}
	}
	if r.ready {
		// Unloading the lit material also frees its shader.
		rl.UnloadMaterial(r.material)
		rl.UnloadMaterial(r.flat)
		r.ready = false
	}
	r.backend.Logger.Debug("renderer disposed", "frames", r.frames, "uploads", r.uploads)
}
