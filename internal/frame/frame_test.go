package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlushRunsOnlyQueuedCallbacks(t *testing.T) {
	s := New()
	var order []int
	var reschedule func()
	reschedule = func() {
		order = append(order, 1)
		s.RequestFrame(reschedule)
	}
	s.RequestFrame(reschedule)
	s.RequestFrame(func() { order = append(order, 2) })

	assert.Equal(t, 2, s.Flush())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, s.Pending(), "self-rescheduled callback waits for the next flush")

	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, []int{1, 2, 1}, order)
	assert.Equal(t, uint64(2), s.Flushes())
}

func TestCancelPending(t *testing.T) {
	s := New()
	ran := false
	id := s.RequestFrame(func() { ran = true })
	assert.NotZero(t, id)
	assert.True(t, s.CancelFrame(id))
	assert.False(t, s.CancelFrame(id))
	assert.Zero(t, s.Flush())
	assert.False(t, ran)
}

func TestCancelWithinBatch(t *testing.T) {
	s := New()
	ran := false
	var second ID
	s.RequestFrame(func() { assert.True(t, s.CancelFrame(second)) })
	second = s.RequestFrame(func() { ran = true })

	assert.Equal(t, 1, s.Flush())
	assert.False(t, ran)
}
