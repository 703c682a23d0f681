package viewer

// ResizeWatcher forwards container size changes to a handler until disconnected.
type ResizeWatcher struct {
	disconnect func()
	handler    func(width, height int)
	active     bool
	lastW      int
	lastH      int
}

// WatchResize observes c and calls fn when its size differs from the last seen size.
func WatchResize(c Container, fn func(width, height int)) *ResizeWatcher {
	w := &ResizeWatcher{handler: fn, active: true}
	w.lastW, w.lastH = c.Size()
	w.disconnect = c.Observe(w.notify)
	return w
}

func (w *ResizeWatcher) notify(width, height int) {
	if !w.active {
		return
	}
	if width == w.lastW && height == w.lastH {
		return
	}
	w.lastW, w.lastH = width, height
	w.handler(width, height)
}

// Disconnect stops observation. Notifications already queued by the host are dropped.
func (w *ResizeWatcher) Disconnect() {
	if !w.active {
		return
	}
	w.active = false
	if w.disconnect != nil {
		w.disconnect()
		w.disconnect = nil
	}
}

// Active reports whether the watcher is still connected.
func (w *ResizeWatcher) Active() bool {
	return w.active
}
