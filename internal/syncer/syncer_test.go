package syncer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleCoalesces(t *testing.T) {
	var flushes atomic.Int32
	s := New(30*time.Millisecond, func() error {
		flushes.Add(1)
		return nil
	})

	// Ten rapid schedules inside one debounce window collapse to one flush.
	for i := 0; i < 10; i++ {
		s.Schedule()
		time.Sleep(time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := flushes.Load(); got != 1 {
		t.Errorf("flushes = %d, want 1", got)
	}
}

func TestCancelDropsPendingFlush(t *testing.T) {
	var flushes atomic.Int32
	s := New(20*time.Millisecond, func() error {
		flushes.Add(1)
		return nil
	})

	s.Schedule()
	s.Cancel()

	time.Sleep(80 * time.Millisecond)
	if got := flushes.Load(); got != 0 {
		t.Errorf("flushes after cancel = %d, want 0", got)
	}
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	var flushes atomic.Int32
	s := New(time.Hour, func() error {
		flushes.Add(1)
		return nil
	})

	s.Schedule()
	s.Flush()

	if got := flushes.Load(); got != 1 {
		t.Errorf("flushes = %d, want 1", got)
	}

	// Flush with nothing pending is a no-op.
	s.Flush()
	if got := flushes.Load(); got != 1 {
		t.Errorf("flushes after idle Flush = %d, want 1", got)
	}
}

func TestSchedulesAfterFlushStillFire(t *testing.T) {
	var flushes atomic.Int32
	s := New(10*time.Millisecond, func() error {
		flushes.Add(1)
		return nil
	})

	s.Schedule()
	time.Sleep(50 * time.Millisecond)
	s.Schedule()
	time.Sleep(50 * time.Millisecond)

	if got := flushes.Load(); got != 2 {
		t.Errorf("flushes = %d, want 2", got)
	}
}
