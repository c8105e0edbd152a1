// file: internals/features/academics/plans/service/debounce.go
package service

import (
	"sync"
	"time"
)

// DefaultAutosaveDelay is the coalescing window for plan autosaves.
const DefaultAutosaveDelay = 800 * time.Millisecond

// TimerHandle abstracts time.Timer for tests.
type TimerHandle interface {
	Stop() bool
}

// Clock is the injectable scheduler used by the debouncer.
type Clock interface {
	AfterFunc(d time.Duration, f func()) TimerHandle
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) TimerHandle {
	return time.AfterFunc(d, f)
}

// RealClock: the production clock.
func RealClock() Clock { return realClock{} }

// Debouncer coalesces rapid state changes into a single deferred flush:
// every Trigger cancels and reschedules the pending task; when the window
// elapses the flush runs once. The flush itself snapshots current state, so
// the write always carries the latest edits.
type Debouncer struct {
	mu      sync.Mutex
	clock   Clock
	delay   time.Duration
	timer   TimerHandle
	pending bool
	flush   func()
}

func NewDebouncer(delay time.Duration, flush func()) *Debouncer {
	return NewDebouncerWithClock(RealClock(), delay, flush)
}

func NewDebouncerWithClock(clock Clock, delay time.Duration, flush func()) *Debouncer {
	return &Debouncer{clock: clock, delay: delay, flush: flush}
}

// Trigger marks state dirty and (re)starts the window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = true
	d.timer = d.clock.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.flush()
}

// Flush runs the pending write immediately (shutdown path).
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.flush()
}

// Pending reports whether a write is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
