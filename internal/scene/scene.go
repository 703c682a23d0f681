package scene

import "image/color"

// Object is anything that can be placed in a Scene: *Mesh, *AmbientLight, *DirectionalLight.
type Object interface {
	object()
}

// Scene is the root of the scene graph. It is a flat list; draw order is insertion order.
// Scene does not own its objects: removing one does not dispose it.
type Scene struct {
	Background color.RGBA
	objects    []Object
}

// New returns an empty scene with the given clear colour.
func New(background color.RGBA) *Scene {
	return &Scene{Background: background}
}

// Add appends o unless it is already present.
func (s *Scene) Add(o Object) {
	if o == nil || s.Contains(o) {
		return
	}
	s.objects = append(s.objects, o)
}

// Remove detaches o and reports whether it was present.
func (s *Scene) Remove(o Object) bool {
	for i, cur := range s.objects {
		if cur == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether o is in the scene.
func (s *Scene) Contains(o Object) bool {
	for _, cur := range s.objects {
		if cur == o {
			return true
		}
	}
	return false
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns a copy of the object list.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Meshes returns the meshes in draw order.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, o := range s.objects {
		if m, ok := o.(*Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// Ambient returns the summed ambient contribution as 0..1 RGB.
func (s *Scene) Ambient() [3]float32 {
	var sum [3]float32
	for _, o := range s.objects {
		l, ok := o.(*AmbientLight)
		if !ok {
			continue
		}
		c := Linear(l.Color)
		for i := range sum {
			sum[i] += c[i] * l.Intensity
		}
	}
	return sum
}

// DirectionalLights returns the directional lights in insertion order.
func (s *Scene) DirectionalLights() []*DirectionalLight {
	var out []*DirectionalLight
	for _, o := range s.objects {
		if l, ok := o.(*DirectionalLight); ok {
			out = append(out, l)
		}
	}
	return out
}

// Clear detaches every object.
func (s *Scene) Clear() {
	s.objects = nil
}
