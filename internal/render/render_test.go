package render

import (
	"image/color"
	"testing"

	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"
	"geometry-explorer/internal/ui"
	"geometry-explorer/internal/viewer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMatrixKeepsTranslation(t *testing.T) {
	m := toMatrix(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M0)
	assert.Equal(t, float32(1), m.M15)
}

func TestModelOffsetCentresCylinder(t *testing.T) {
	off := modelOffset(shapes.New(shapes.Cylinder))
	p := off.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -0.5, p.Y(), 1e-6)
	assert.Equal(t, mgl32.Ident4(), modelOffset(shapes.New(shapes.Cube)))
}

func TestSurfaceForRoughness(t *testing.T) {
	smooth := surfaceFor(scene.NewMaterial(color.RGBA{}, 0, 0))
	rough := surfaceFor(scene.NewMaterial(color.RGBA{}, 1, 0))
	assert.Greater(t, smooth.specularPower, rough.specularPower)
	assert.InDelta(t, 0, rough.specularStrength, 1e-6)

	def := surfaceFor(scene.NewMaterial(color.RGBA{}, viewer.Roughness, viewer.Metalness))
	assert.InDelta(t, 4+124*0.36, def.specularPower, 1e-3)
}

func TestLightFor(t *testing.T) {
	s := scene.New(color.RGBA{})
	cam := scene.NewPerspectiveCamera(75, 1, 0.1, 1000)
	fl := lightFor(s, cam)
	assert.Equal(t, float32(0), fl.intensity)
	assert.False(t, fl.shadows)

	s.Add(scene.NewAmbientLight(color.RGBA{255, 255, 255, 255}, 0.6))
	sun := scene.NewDirectionalLight(color.RGBA{255, 255, 255, 255}, 0.8, mgl32.Vec3{5, 5, 5})
	sun.CastShadow = true
	s.Add(sun)
	fl = lightFor(s, cam)
	assert.InDelta(t, 0.6, fl.ambient[0], 1e-6)
	assert.InDelta(t, 0.8, fl.intensity, 1e-6)
	assert.True(t, fl.shadows)
	assert.InDelta(t, 1, fl.dir.Len(), 1e-6)
}

func TestBackendRejectsEmptySize(t *testing.T) {
	b := NewBackend(nil)
	_, err := b.NewRenderer(0, 10, viewer.RendererOptions{})
	assert.ErrorIs(t, err, viewer.ErrNoContainer)

	r, err := b.NewRenderer(640, 480, viewer.RendererOptions{PixelRatio: 2})
	require.NoError(t, err)
	rr := r.(*Renderer)
	rr.SetSize(-1, 5)
	w, h := rr.Size()
	assert.Equal(t, [2]int{640, 480}, [2]int{w, h})
	assert.Equal(t, 0, rr.LiveMeshes())
}

func TestSurfaceNotifiesOnSizeChange(t *testing.T) {
	s := NewSurface()
	s.SetBounds(ui.Rect{X: 10, Y: 10, W: 400, H: 300})

	var got [][2]int
	disconnect := s.Observe(func(w, h int) { got = append(got, [2]int{w, h}) })
	s.Notify()
	assert.Empty(t, got, "size unchanged since Observe")

	s.SetBounds(ui.Rect{X: 50, Y: 10, W: 400, H: 300})
	s.Notify()
	assert.Empty(t, got, "moves are not resizes")

	s.SetBounds(ui.Rect{W: 500, H: 300})
	s.Notify()
	s.Notify()
	assert.Equal(t, [][2]int{{500, 300}}, got)

	disconnect()
	assert.Equal(t, 0, s.Observers())
	s.SetBounds(ui.Rect{W: 10, H: 10})
	s.Notify()
	assert.Len(t, got, 1)
}

func TestSurfaceAttachDetach(t *testing.T) {
	s := NewSurface()
	r, err := NewBackend(nil).NewRenderer(10, 10, viewer.RendererOptions{})
	require.NoError(t, err)
	s.Attach(r)
	s.Attach(r)
	assert.Equal(t, 1, s.Attached())
	s.Detach(r)
	assert.Equal(t, 0, s.Attached())
}
