package viewer

import (
	"errors"

	"geometry-explorer/internal/scene"
)

type fakeRenderer struct {
	width, height int
	opts          RendererOptions
	renders       int
	disposals     int
	lastMeshes    int
	uploads       map[*scene.Geometry]bool
	freed         int
}

func (r *fakeRenderer) SetSize(w, h int) {
	r.width, r.height = w, h
}

// Render mimics a GPU backend: geometry is uploaded on first draw and freed on dispose.
func (r *fakeRenderer) Render(s *scene.Scene, _ *scene.Camera) {
	r.renders++
	meshes := s.Meshes()
	r.lastMeshes = len(meshes)
	for _, m := range meshes {
		if r.uploads[m.Geometry] {
			continue
		}
		r.uploads[m.Geometry] = true
		m.Geometry.OnDispose(func() { r.freed++ })
	}
}

func (r *fakeRenderer) Dispose() {
	r.disposals++
}

type fakeBackend struct {
	renderers []*fakeRenderer
	err       error
}

func (b *fakeBackend) NewRenderer(w, h int, opts RendererOptions) (Renderer, error) {
	if b.err != nil {
		return nil, b.err
	}
	r := &fakeRenderer{width: w, height: h, opts: opts, uploads: map[*scene.Geometry]bool{}}
	b.renderers = append(b.renderers, r)
	return r, nil
}

type fakeContainer struct {
	width, height int
	children      []Renderer
	detached      int
	observers     map[int]func(int, int)
	nextObserver  int
}

func newContainer(w, h int) *fakeContainer {
	return &fakeContainer{width: w, height: h, observers: map[int]func(int, int){}}
}

func (c *fakeContainer) Size() (int, int) { return c.width, c.height }

func (c *fakeContainer) Attach(r Renderer) { c.children = append(c.children, r) }

func (c *fakeContainer) Detach(r Renderer) {
	for i, ch := range c.children {
		if ch == r {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.detached++
			return
		}
	}
}

func (c *fakeContainer) Observe(fn func(int, int)) func() {
	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

// resize changes the box and notifies observers, as the host layout pass does.
func (c *fakeContainer) resize(w, h int) {
	c.width, c.height = w, h
	for _, fn := range c.observers {
		fn(w, h)
	}
}

var errNoGPU = errors.New("no gpu")
