package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// memorySaver keeps saved snapshots in a map, standing in for the jsonb store.
type memorySaver struct {
	plans map[uuid.UUID]*Plan
	saves int
}

func newMemorySaver() *memorySaver {
	return &memorySaver{plans: map[uuid.UUID]*Plan{}}
}

func (m *memorySaver) Load(studentID uuid.UUID) (*Plan, bool, error) {
	p, ok := m.plans[studentID]
	if !ok {
		return nil, false, nil
	}
	return p.Clone(), true, nil
}

func (m *memorySaver) Save(studentID uuid.UUID, p *Plan) error {
	m.plans[studentID] = p.Clone()
	m.saves++
	return nil
}

func TestSessions_FreshStudentGetsDefaultSeedAndFirstSave(t *testing.T) {
	store := newMemorySaver()
	clock := &fakeClock{}
	s := NewSessionsWithClock(store, clock, DefaultAutosaveDelay)
	studentID := uuid.New()

	plan, err := s.View(studentID, "")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(plan.Semesters) != 2 {
		t.Fatalf("seed semesters = %d, want 2", len(plan.Semesters))
	}
	year := time.Now().Year()
	if plan.Semesters[0].Year != year || plan.Semesters[1].Year != year {
		t.Fatalf("seed years = %d/%d, want %d", plan.Semesters[0].Year, plan.Semesters[1].Year, year)
	}

	// the fresh seed schedules its first persist
	clock.fireAll()
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
}

func TestSessions_CohortStringReplacesSeedForFreshStudent(t *testing.T) {
	store := newMemorySaver()
	clock := &fakeClock{}
	s := NewSessionsWithClock(store, clock, DefaultAutosaveDelay)

	plan, err := s.View(uuid.New(), "2026년 1학기 3기")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(plan.Semesters) != 1 {
		t.Fatalf("semesters = %d, want 1", len(plan.Semesters))
	}
	if plan.Semesters[0].Label != "2026년 1학기 3기" {
		t.Fatalf("label = %q", plan.Semesters[0].Label)
	}
}

func TestSessions_MutateCoalescesIntoOneSave(t *testing.T) {
	store := newMemorySaver()
	clock := &fakeClock{}
	s := NewSessionsWithClock(store, clock, DefaultAutosaveDelay)
	studentID := uuid.New()

	var semID uuid.UUID
	for i := 0; i < 3; i++ {
		plan, err := s.Mutate(studentID, "", func(p *Plan) error {
			if semID == uuid.Nil {
				semID = p.Semesters[0].ID
			}
			return p.AssignSubject(uuid.New(), semID)
		})
		if err != nil {
			t.Fatalf("Mutate[%d]: %v", i, err)
		}
		if len(plan.Assignments[semID]) != i+1 {
			t.Fatalf("assignments after mutate %d = %d", i, len(plan.Assignments[semID]))
		}
	}

	clock.fireAll()
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1 coalesced write", store.saves)
	}
	saved := store.plans[studentID]
	if len(saved.Assignments[semID]) != 3 {
		t.Fatalf("saved snapshot has %d assignments, want the latest 3", len(saved.Assignments[semID]))
	}
}

func TestSessions_FailedOperationSchedulesNothing(t *testing.T) {
	store := newMemorySaver()
	clock := &fakeClock{}
	s := NewSessionsWithClock(store, clock, DefaultAutosaveDelay)
	studentID := uuid.New()

	// prime the session with a persisted plan so no first-save fires
	seed := DefaultPlan(2026)
	if err := store.Save(studentID, seed); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	store.saves = 0

	_, err := s.Mutate(studentID, "", func(p *Plan) error {
		_, opErr := p.DeleteSemester(uuid.New())
		return opErr
	})
	if err != ErrSemesterNotFound {
		t.Fatalf("err = %v, want ErrSemesterNotFound", err)
	}

	clock.fireAll()
	if store.saves != 0 {
		t.Fatalf("saves = %d, want 0 after a rejected operation", store.saves)
	}
}

func TestSessions_PersistedPlanWinsOverDefaultSeed(t *testing.T) {
	store := newMemorySaver()
	studentID := uuid.New()
	persisted := NewPlan()
	if _, err := persisted.addSemesterExact(2024, 2, 5); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Save(studentID, persisted); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	s := NewSessionsWithClock(store, &fakeClock{}, DefaultAutosaveDelay)
	plan, err := s.View(studentID, "2024년 2학기 5기")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(plan.Semesters) != 1 || plan.Semesters[0].ClassNumber != 5 {
		t.Fatalf("plan = %+v", plan.Semesters)
	}
}

func TestSessions_EvictsColdestEntryPastLimit(t *testing.T) {
	store := newMemorySaver()
	clock := &fakeClock{}
	s := NewSessionsWithClock(store, clock, DefaultAutosaveDelay)
	s.limit = 2

	a, b, c := uuid.New(), uuid.New(), uuid.New()

	// pending edit on the soon-to-be-coldest student
	if _, err := s.Mutate(a, "", func(p *Plan) error {
		_, opErr := p.AddSemester(2027, 1)
		return opErr
	}); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if _, err := s.View(b, ""); err != nil {
		t.Fatalf("View(b): %v", err)
	}
	if _, err := s.View(c, ""); err != nil {
		t.Fatalf("View(c): %v", err)
	}

	s.mu.Lock()
	resident := len(s.entries)
	_, aLive := s.entries[a]
	s.mu.Unlock()
	if resident != 2 {
		t.Fatalf("resident entries = %d, want 2", resident)
	}
	if aLive {
		t.Fatalf("coldest entry survived past the limit")
	}

	// eviction flushed the pending edit instead of dropping it
	saved := store.plans[a]
	if saved == nil || len(saved.Semesters) != 3 {
		t.Fatalf("evicted plan not persisted: %+v", saved)
	}

	// the next access reloads the persisted state
	plan, err := s.View(a, "")
	if err != nil {
		t.Fatalf("View(a): %v", err)
	}
	if len(plan.Semesters) != 3 {
		t.Fatalf("reloaded semesters = %d, want 3", len(plan.Semesters))
	}
}

func TestSessions_FlushAllForcesPendingWrites(t *testing.T) {
	store := newMemorySaver()
	clock := &fakeClock{}
	s := NewSessionsWithClock(store, clock, DefaultAutosaveDelay)
	studentID := uuid.New()

	_, err := s.Mutate(studentID, "", func(p *Plan) error {
		_, opErr := p.AddSemester(2027, 1)
		return opErr
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	s.FlushAll()
	if store.saves == 0 {
		t.Fatalf("FlushAll wrote nothing")
	}
	if len(store.plans[studentID].Semesters) != 3 {
		t.Fatalf("saved semesters = %d, want 3", len(store.plans[studentID].Semesters))
	}
}
