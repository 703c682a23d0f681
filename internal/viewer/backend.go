package viewer

import (
	"geometry-explorer/internal/frame"
	"geometry-explorer/internal/scene"
)

// Renderer draws a scene through a camera onto its output surface.
type Renderer interface {
	SetSize(width, height int)
	Render(s *scene.Scene, cam *scene.Camera)
	Dispose()
}

// RendererOptions are fixed at creation.
type RendererOptions struct {
	Antialias  bool
	Shadows    bool
	PixelRatio float32
}

// Backend creates renderers. The raylib implementation lives in package render.
type Backend interface {
	NewRenderer(width, height int, opts RendererOptions) (Renderer, error)
}

// Container is the region of the host layout the viewer mounts into.
type Container interface {
	// Size returns the current box size in pixels.
	Size() (width, height int)
	// Attach makes the renderer's output surface a child of the container.
	Attach(r Renderer)
	// Detach removes a surface added by Attach.
	Detach(r Renderer)
	// Observe registers fn for box size changes and returns a function that
	// unregisters it. Notifications never run during a frame callback.
	Observe(fn func(width, height int)) (disconnect func())
}

// Scheduler runs callbacks on the next display refresh. *frame.Scheduler implements it.
type Scheduler interface {
	RequestFrame(fn func()) frame.ID
	CancelFrame(id frame.ID) bool
}
