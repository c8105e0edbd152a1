package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAddSemester_ClassNumberIncrementsWithinGroup(t *testing.T) {
	p := NewPlan()
	s1, err := p.AddSemester(2026, 1)
	if err != nil {
		t.Fatalf("AddSemester: %v", err)
	}
	s2, err := p.AddSemester(2026, 1)
	if err != nil {
		t.Fatalf("AddSemester: %v", err)
	}
	other, err := p.AddSemester(2026, 2)
	if err != nil {
		t.Fatalf("AddSemester: %v", err)
	}

	if s1.ClassNumber != 1 || s2.ClassNumber != 2 {
		t.Fatalf("class numbers = %d, %d, want 1, 2", s1.ClassNumber, s2.ClassNumber)
	}
	if other.ClassNumber != 1 {
		t.Fatalf("other group class number = %d, want 1", other.ClassNumber)
	}
	if s2.Label != "2026년 1학기 2기" {
		t.Fatalf("label = %q", s2.Label)
	}
}

func TestAddSemester_DefaultDates(t *testing.T) {
	p := NewPlan()
	s1, _ := p.AddSemester(2026, 1)
	s2, _ := p.AddSemester(2026, 2)

	d1 := p.Dates[s1.ID]
	if d1.Start != time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("term 1 start = %v", d1.Start)
	}
	if d1.End != time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("term 1 end = %v", d1.End)
	}

	d2 := p.Dates[s2.ID]
	if d2.Start != time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("term 2 start = %v", d2.Start)
	}
	if d2.End != time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("term 2 end = %v", d2.End)
	}
}

func TestAssignSubject_GlobalUniqueness(t *testing.T) {
	p := NewPlan()
	s1, _ := p.AddSemester(2026, 1)
	s2, _ := p.AddSemester(2026, 2)

	subject := uuid.New()
	if err := p.AssignSubject(subject, s1.ID); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if err := p.AssignSubject(subject, s2.ID); err != ErrSubjectAlreadyInPlan {
		t.Fatalf("second assign err = %v, want ErrSubjectAlreadyInPlan", err)
	}
	if got := len(p.Assignments[s2.ID]); got != 0 {
		t.Fatalf("rejected assign mutated the list: %d entries", got)
	}
}

func TestAssignSubject_GroupCapAcrossCohorts(t *testing.T) {
	p := NewPlan()
	a, _ := p.AddSemester(2026, 1)
	b, _ := p.AddSemester(2026, 1) // second cohort, same half-year group

	for i := 0; i < 4; i++ {
		if err := p.AssignSubject(uuid.New(), a.ID); err != nil {
			t.Fatalf("assign a[%d]: %v", i, err)
		}
		if err := p.AssignSubject(uuid.New(), b.ID); err != nil {
			t.Fatalf("assign b[%d]: %v", i, err)
		}
	}
	// group now holds 8 across both cohorts
	err := p.AssignSubject(uuid.New(), b.ID)
	capErr, ok := err.(*CapacityError)
	if !ok {
		t.Fatalf("9th assign err = %v, want CapacityError", err)
	}
	if capErr.Cap != "group" || capErr.Current != 8 || capErr.Max != GroupAssignmentCap {
		t.Fatalf("capacity error = %+v", capErr)
	}
	if p.GroupAssignedCount(2026, 1) != 8 {
		t.Fatalf("group count changed after rejection: %d", p.GroupAssignedCount(2026, 1))
	}
}

func TestAssignSubject_YearCapAcrossTerms(t *testing.T) {
	p := NewPlan()
	t1, _ := p.AddSemester(2026, 1)
	t2, _ := p.AddSemester(2026, 2)

	for i := 0; i < 8; i++ {
		if err := p.AssignSubject(uuid.New(), t1.ID); err != nil {
			t.Fatalf("assign term1[%d]: %v", i, err)
		}
	}
	for i := 0; i < 6; i++ {
		if err := p.AssignSubject(uuid.New(), t2.ID); err != nil {
			t.Fatalf("assign term2[%d]: %v", i, err)
		}
	}
	// 14 across the year; term 2 still has group room (6 < 8)
	err := p.AssignSubject(uuid.New(), t2.ID)
	capErr, ok := err.(*CapacityError)
	if !ok {
		t.Fatalf("15th assign err = %v, want CapacityError", err)
	}
	if capErr.Cap != "year" || capErr.Current != 14 || capErr.Max != YearAssignmentCap {
		t.Fatalf("capacity error = %+v", capErr)
	}
	if p.YearAssignedCount(2026) != 14 {
		t.Fatalf("year count changed after rejection: %d", p.YearAssignedCount(2026))
	}
}

func TestDeleteSemester_LastOneRejected(t *testing.T) {
	p := NewPlan()
	only, _ := p.AddSemester(2026, 1)
	if _, err := p.DeleteSemester(only.ID); err != ErrLastSemester {
		t.Fatalf("err = %v, want ErrLastSemester", err)
	}
	if len(p.Semesters) != 1 {
		t.Fatalf("plan emptied: %d semesters", len(p.Semesters))
	}
}

func TestDeleteSemester_CascadesAndSelectsWithinGroup(t *testing.T) {
	p := NewPlan()
	a, _ := p.AddSemester(2026, 1)
	b, _ := p.AddSemester(2026, 1)
	c, _ := p.AddSemester(2026, 2)

	subject := uuid.New()
	if err := p.AssignSubject(subject, a.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := p.SetDates(a.ID, time.Now(), time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("set dates: %v", err)
	}

	next, err := p.DeleteSemester(a.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if next != b.ID {
		t.Fatalf("next selected = %s, want same-group cohort %s", next, b.ID)
	}
	if _, ok := p.Assignments[a.ID]; ok {
		t.Fatalf("assignment list not cascaded")
	}
	if _, ok := p.Dates[a.ID]; ok {
		t.Fatalf("dates entry not cascaded")
	}

	// deleting the now-lone cohort of group (2026,1) falls back to the last
	// remaining semester overall
	next, err = p.DeleteSemester(b.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if next != c.ID {
		t.Fatalf("next selected = %s, want %s", next, c.ID)
	}
}

func TestUnassignSubject_OnlySearchesNamedGroup(t *testing.T) {
	p := NewPlan()
	t1, _ := p.AddSemester(2026, 1)
	if _, err := p.AddSemester(2026, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	subject := uuid.New()
	if err := p.AssignSubject(subject, t1.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// wrong group: the subject stays put
	if err := p.UnassignSubject(subject, 2026, 2); err != ErrSubjectNotInGroup {
		t.Fatalf("err = %v, want ErrSubjectNotInGroup", err)
	}
	if !p.IsSubjectAssigned(subject) {
		t.Fatalf("subject removed through the wrong group")
	}

	if err := p.UnassignSubject(subject, 2026, 1); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if p.IsSubjectAssigned(subject) {
		t.Fatalf("subject still assigned")
	}
}

func TestAddCohort_UsesExistingSemesterGroup(t *testing.T) {
	p := NewPlan()
	base, _ := p.AddSemester(2027, 2)
	cohort, err := p.AddCohort(base.ID)
	if err != nil {
		t.Fatalf("AddCohort: %v", err)
	}
	if cohort.Year != 2027 || cohort.Term != 2 || cohort.ClassNumber != 2 {
		t.Fatalf("cohort = %+v", cohort)
	}
	if _, err := p.AddCohort(uuid.New()); err != ErrSemesterNotFound {
		t.Fatalf("unknown semester err = %v, want ErrSemesterNotFound", err)
	}
}

func TestClone_DoesNotAliasLiveState(t *testing.T) {
	p := NewPlan()
	s, _ := p.AddSemester(2026, 1)
	subject := uuid.New()
	if err := p.AssignSubject(subject, s.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	snap := p.Clone()
	if err := p.AssignSubject(uuid.New(), s.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(snap.Assignments[s.ID]) != 1 {
		t.Fatalf("snapshot mutated by later edits: %d entries", len(snap.Assignments[s.ID]))
	}
}
