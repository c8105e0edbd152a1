// file: internals/features/academics/plans/service/sessions.go
package service

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Saver is what a session flushes to; *Store satisfies it.
type Saver interface {
	Load(studentID uuid.UUID) (*Plan, bool, error)
	Save(studentID uuid.UUID, p *Plan) error
}

// sessionEntryLimit bounds the in-memory editing state. Entries past the
// limit are flushed and dropped, oldest access first; the next request for a
// dropped student reloads the plan from the store.
const sessionEntryLimit = 256

// Sessions holds the per-student editing state: one administrator edits one
// student's plan at a time, so there is no conflict resolution, only the
// debounced, fire-and-forget snapshot write. The autosave does not roll back
// on failure; it logs and waits for the next window.
type Sessions struct {
	mu      sync.Mutex
	store   Saver
	clock   Clock
	delay   time.Duration
	limit   int
	seq     uint64
	entries map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	mu   sync.Mutex
	plan *Plan
	deb  *Debouncer
	seq  uint64 // last access order, guarded by Sessions.mu
}

func NewSessions(store Saver) *Sessions {
	return NewSessionsWithClock(store, RealClock(), DefaultAutosaveDelay)
}

func NewSessionsWithClock(store Saver, clock Clock, delay time.Duration) *Sessions {
	return &Sessions{
		store:   store,
		clock:   clock,
		delay:   delay,
		limit:   sessionEntryLimit,
		entries: map[uuid.UUID]*sessionEntry{},
	}
}

// entry loads (or builds) the editing state for one student. A missing row
// gets the default two-semester seed for the current year, then the cohort
// string is reconciled in either case (idempotent).
func (s *Sessions) entry(studentID uuid.UUID, classStart string) (*sessionEntry, error) {
	s.mu.Lock()
	if e, ok := s.entries[studentID]; ok {
		s.seq++
		e.seq = s.seq
		s.mu.Unlock()
		return e, nil
	}
	s.mu.Unlock()

	plan, existed, err := s.store.Load(studentID)
	if err != nil {
		return nil, err
	}
	if !existed {
		plan = DefaultPlan(time.Now().Year())
	}
	if added := Reconcile(plan, classStart, existed); added > 0 {
		log.Printf("[INFO] plan reconcile added %d cohort(s) (student=%s)", added, studentID)
	}

	e := &sessionEntry{plan: plan}
	e.deb = NewDebouncerWithClock(s.clock, s.delay, func() {
		e.mu.Lock()
		snapshot := e.plan.Clone()
		e.mu.Unlock()
		if err := s.store.Save(studentID, snapshot); err != nil {
			log.Printf("[ERROR] plan autosave failed (student=%s): %v", studentID, err)
		}
	})

	s.mu.Lock()
	// another request may have raced us; keep the first entry
	if prior, ok := s.entries[studentID]; ok {
		s.seq++
		prior.seq = s.seq
		s.mu.Unlock()
		return prior, nil
	}
	s.seq++
	e.seq = s.seq
	s.entries[studentID] = e
	evicted := s.evictColdestLocked(studentID)
	s.mu.Unlock()

	for _, cold := range evicted {
		cold.deb.Flush()
	}

	// lazy creation: the first load of a fresh plan schedules its first save
	if !existed {
		e.deb.Trigger()
	}
	return e, nil
}

// View returns a snapshot of the student's current plan.
func (s *Sessions) View(studentID uuid.UUID, classStart string) (*Plan, error) {
	e, err := s.entry(studentID, classStart)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.plan.Clone(), nil
}

// Mutate applies one plan operation and schedules a debounced save. The
// operation's error passes through untouched (capacity errors carry their
// cap details); a failed operation schedules nothing.
func (s *Sessions) Mutate(studentID uuid.UUID, classStart string, op func(*Plan) error) (*Plan, error) {
	e, err := s.entry(studentID, classStart)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	if err := op(e.plan); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	snapshot := e.plan.Clone()
	e.mu.Unlock()

	e.deb.Trigger()
	return snapshot, nil
}

// Replace swaps in a client-supplied plan wholesale (the PUT autosave path).
func (s *Sessions) Replace(studentID uuid.UUID, classStart string, plan *Plan) error {
	e, err := s.entry(studentID, classStart)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.plan = plan.Clone()
	e.mu.Unlock()

	e.deb.Trigger()
	return nil
}

// evictColdestLocked trims the session map back to the limit, oldest access
// first. The entry just inserted is never the victim. The caller flushes the
// returned entries outside the lock so no pending edit is lost.
func (s *Sessions) evictColdestLocked(keep uuid.UUID) []*sessionEntry {
	var out []*sessionEntry
	for len(s.entries) > s.limit {
		var victimID uuid.UUID
		var victim *sessionEntry
		for id, e := range s.entries {
			if id == keep {
				continue
			}
			if victim == nil || e.seq < victim.seq {
				victimID, victim = id, e
			}
		}
		if victim == nil {
			return out
		}
		delete(s.entries, victimID)
		out = append(out, victim)
	}
	return out
}

// FlushAll forces every pending autosave through (shutdown).
func (s *Sessions) FlushAll() {
	s.mu.Lock()
	entries := make([]*sessionEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	for _, e := range entries {
		e.deb.Flush()
	}
}
