package scene

// resource tracks the release state of something that owns backend memory (GPU buffers,
// shader programs, shadow maps). Backends attach listeners when they allocate and free
// their side when Dispose fires. Dispose runs the listeners exactly once.
type resource struct {
	disposed  bool
	listeners []func()
}

// OnDispose registers fn to run when the resource is disposed. If the resource is
// already disposed fn runs immediately so late uploads cannot leak.
func (r *resource) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if r.disposed {
		fn()
		return
	}
	r.listeners = append(r.listeners, fn)
}

// Dispose releases the resource. It reports whether this call did the release;
// later calls are no-ops and return false.
func (r *resource) Dispose() bool {
	if r.disposed {
		return false
	}
	r.disposed = true
	for _, fn := range r.listeners {
		fn()
	}
	r.listeners = nil
	return true
}

// Disposed reports whether Dispose has run.
func (r *resource) Disposed() bool {
	return r.disposed
}
