package frame

// ID identifies a pending frame request. Zero is never issued.
type ID uint64

type frameRequest struct {
	id  ID
	fn  func()
	ran bool
}

// Scheduler queues callbacks to run once on the next display refresh. A callback
// that wants to keep running must request itself again. It is not safe for concurrent
// use: requests, cancels and Flush all happen on the window thread.
type Scheduler struct {
	next    ID
	pending []*frameRequest
	batch   []*frameRequest // callbacks of the Flush in progress
	flushes uint64
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// RequestFrame schedules fn for the next Flush and returns a handle for CancelFrame.
func (s *Scheduler) RequestFrame(fn func()) ID {
	s.next++
	s.pending = append(s.pending, &frameRequest{id: s.next, fn: fn})
	return s.next
}

// CancelFrame drops a request that has not run yet. It reports whether one was dropped.
func (s *Scheduler) CancelFrame(id ID) bool {
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	for _, r := range s.batch {
		if r.id == id && !r.ran && r.fn != nil {
			r.fn = nil
			return true
		}
	}
	return false
}

// Pending returns the number of callbacks waiting for the next Flush.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Flushes returns how many times Flush has run.
func (s *Scheduler) Flushes() uint64 {
	return s.flushes
}

// Flush runs every callback queued before the call, in request order, and returns how
// many ran. Callbacks requested while flushing wait for the next Flush.
func (s *Scheduler) Flush() int {
	s.flushes++
	s.batch, s.pending = s.pending, nil
	ran := 0
	for _, r := range s.batch {
		if r.fn == nil {
			continue
		}
		r.ran = true
		r.fn()
		ran++
	}
	s.batch = nil
	return ran
}
