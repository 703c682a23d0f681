package viewer

import "geometry-explorer/internal/frame"

// Loop is a self-rescheduling per-frame task. Each tick requests the next one before
// doing its work, so it keeps running at the display rate until Stop. Stop cancels the
// pending request and sets a flag that every tick checks first, so no step runs after it.
type Loop struct {
	frames    Scheduler
	step      func()
	handle    frame.ID
	running   bool
	cancelled bool
	count     uint64
}

// NewLoop returns a stopped loop that calls step once per frame.
func NewLoop(frames Scheduler, step func()) *Loop {
	return &Loop{frames: frames, step: step}
}

// Start schedules the first frame. A stopped loop cannot be restarted.
func (l *Loop) Start() {
	if l.running || l.cancelled {
		return
	}
	l.running = true
	l.handle = l.frames.RequestFrame(l.tick)
}

func (l *Loop) tick() {
	if l.cancelled {
		return
	}
	l.handle = l.frames.RequestFrame(l.tick)
	l.count++
	l.step()
}

// Stop cancels the loop. It is safe to call more than once, including from step.
func (l *Loop) Stop() {
	if l.cancelled {
		return
	}
	l.cancelled = true
	l.running = false
	if l.handle != 0 {
		l.frames.CancelFrame(l.handle)
		l.handle = 0
	}
}

// Frames returns how many steps have run.
func (l *Loop) Frames() uint64 {
	return l.count
}

// Running reports whether the loop is started and not stopped.
func (l *Loop) Running() bool {
	return l.running
}
