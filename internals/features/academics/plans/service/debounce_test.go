package service

import (
	"testing"
	"time"
)

// fakeClock hands out timers that only fire when the test advances them.
type fakeClock struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) TimerHandle {
	t := &fakeTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fireAll runs every timer that is still live.
func (c *fakeClock) fireAll() {
	for _, t := range c.timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.f()
	}
}

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	clock := &fakeClock{}
	flushes := 0
	d := NewDebouncerWithClock(clock, DefaultAutosaveDelay, func() { flushes++ })

	for i := 0; i < 5; i++ {
		d.Trigger()
	}
	if flushes != 0 {
		t.Fatalf("flushed before the window elapsed: %d", flushes)
	}
	if len(clock.timers) != 5 {
		t.Fatalf("timers scheduled = %d, want 5", len(clock.timers))
	}

	clock.fireAll()
	if flushes != 1 {
		t.Fatalf("flushes = %d, want 1 (earlier timers were cancelled)", flushes)
	}
}

func TestDebouncer_TriggerAfterFireSchedulesAgain(t *testing.T) {
	clock := &fakeClock{}
	flushes := 0
	d := NewDebouncerWithClock(clock, DefaultAutosaveDelay, func() { flushes++ })

	d.Trigger()
	clock.fireAll()
	d.Trigger()
	clock.fireAll()

	if flushes != 2 {
		t.Fatalf("flushes = %d, want 2", flushes)
	}
}

func TestDebouncer_FlushRunsPendingWriteImmediately(t *testing.T) {
	clock := &fakeClock{}
	flushes := 0
	d := NewDebouncerWithClock(clock, DefaultAutosaveDelay, func() { flushes++ })

	d.Trigger()
	if !d.Pending() {
		t.Fatalf("expected a pending write")
	}
	d.Flush()
	if flushes != 1 {
		t.Fatalf("flushes = %d, want 1", flushes)
	}
	if d.Pending() {
		t.Fatalf("still pending after Flush")
	}

	// the cancelled timer firing later must not double-write
	clock.fireAll()
	if flushes != 1 {
		t.Fatalf("flushes = %d after timer, want 1", flushes)
	}
}

func TestDebouncer_FlushWithoutPendingIsNoop(t *testing.T) {
	d := NewDebouncerWithClock(&fakeClock{}, DefaultAutosaveDelay, func() {
		t.Fatalf("flush ran with nothing pending")
	})
	d.Flush()
}
