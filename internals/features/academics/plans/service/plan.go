// file: internals/features/academics/plans/service/plan.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Capacity caps, enforced at assignment time (never retroactively on load).
const (
	GroupAssignmentCap = 8  // per (year, term) half-year group, all cohorts combined
	YearAssignmentCap  = 14 // per calendar year, both terms combined
)

var (
	ErrSemesterNotFound     = errors.New("semester not found in plan")
	ErrLastSemester         = errors.New("the last remaining semester cannot be deleted")
	ErrSubjectAlreadyInPlan = errors.New("subject is already assigned in this plan")
	ErrInvalidTerm          = errors.New("term must be 1 or 2")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrCohortAlreadyInGroup = errors.New("cohort already exists in this group")
	ErrSubjectNotInGroup    = errors.New("subject is not assigned within this group")
)

// CapacityError reports which cap was hit; the UI surfaces current/max.
type CapacityError struct {
	Cap     string // "group" | "year"
	Year    int
	Term    int // 0 for the year cap
	Current int
	Max     int
}

func (e *CapacityError) Error() string {
	if e.Cap == "group" {
		return fmt.Sprintf("%d년 %d학기 수강 한도 초과 (%d/%d)", e.Year, e.Term, e.Current, e.Max)
	}
	return fmt.Sprintf("%d년 연간 수강 한도 초과 (%d/%d)", e.Year, e.Current, e.Max)
}

// Semester is one cohort (기수) slot. Multiple semesters may share
// (year, term); they form one half-year group but keep independent
// assignment lists and dates.
type Semester struct {
	ID          uuid.UUID `json:"id"`
	Year        int       `json:"year"`
	Term        int       `json:"term"` // 1 | 2
	ClassNumber int       `json:"class_number"`
	Label       string    `json:"label"`
	Months      string    `json:"months"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Plan is the per-student aggregate: cohort slots, the semester→subjects
// assignment map and the per-semester date ranges. All mutation operations
// take explicit target ids/group keys; nothing reads ambient UI selection.
type Plan struct {
	Semesters   []Semester                `json:"semesters"`
	Assignments map[uuid.UUID][]uuid.UUID `json:"assignments"`
	Dates       map[uuid.UUID]DateRange   `json:"dates"`
}

func NewPlan() *Plan {
	return &Plan{
		Assignments: map[uuid.UUID][]uuid.UUID{},
		Dates:       map[uuid.UUID]DateRange{},
	}
}

// DefaultPlan: the two-semester seed for a brand-new student (both terms of
// the given year), used when no persisted plan and no cohort string exist.
func DefaultPlan(year int) *Plan {
	p := NewPlan()
	_, _ = p.AddSemester(year, 1)
	_, _ = p.AddSemester(year, 2)
	return p
}

func semesterLabel(year, term, classNumber int) string {
	return fmt.Sprintf("%d년 %d학기 %d기", year, term, classNumber)
}

func monthsLabel(term int) string {
	if term == 1 {
		return "11월~5월"
	}
	return "5월~11월"
}

// DefaultDates: fixed calendar rule.
// term 1 → [Nov 15 of the prior year, May 5]; term 2 → [May 15, Nov 5].
func DefaultDates(year, term int) DateRange {
	if term == 1 {
		return DateRange{
			Start: time.Date(year-1, time.November, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.May, 5, 0, 0, 0, 0, time.UTC),
		}
	}
	return DateRange{
		Start: time.Date(year, time.May, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.November, 5, 0, 0, 0, 0, time.UTC),
	}
}

// GroupSemesters: all cohorts sharing (year, term), in slice order.
func (p *Plan) GroupSemesters(year, term int) []Semester {
	var out []Semester
	for _, s := range p.Semesters {
		if s.Year == year && s.Term == term {
			out = append(out, s)
		}
	}
	return out
}

func (p *Plan) findSemester(id uuid.UUID) (int, bool) {
	for i, s := range p.Semesters {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

// GroupAssignedCount: assigned subjects across every cohort of the group.
func (p *Plan) GroupAssignedCount(year, term int) int {
	n := 0
	for _, s := range p.GroupSemesters(year, term) {
		n += len(p.Assignments[s.ID])
	}
	return n
}

// YearAssignedCount: assigned subjects across both terms of the year.
func (p *Plan) YearAssignedCount(year int) int {
	n := 0
	for _, s := range p.Semesters {
		if s.Year == year {
			n += len(p.Assignments[s.ID])
		}
	}
	return n
}

// IsSubjectAssigned: anywhere in the plan (global per-student uniqueness).
func (p *Plan) IsSubjectAssigned(subjectID uuid.UUID) bool {
	for _, list := range p.Assignments {
		for _, id := range list {
			if id == subjectID {
				return true
			}
		}
	}
	return false
}

// AssignedSubjectIDs: every subject id in the plan, group by group.
func (p *Plan) AssignedSubjectIDs() []uuid.UUID {
	var out []uuid.UUID
	for _, s := range p.Semesters {
		out = append(out, p.Assignments[s.ID]...)
	}
	return out
}

// AddSemester creates a new cohort for (year, term). The class number is the
// current group size + 1, and dates default from the calendar rule.
func (p *Plan) AddSemester(year, term int) (Semester, error) {
	if term != 1 && term != 2 {
		return Semester{}, ErrInvalidTerm
	}
	classNumber := len(p.GroupSemesters(year, term)) + 1
	sem := Semester{
		ID:          uuid.New(),
		Year:        year,
		Term:        term,
		ClassNumber: classNumber,
		Label:       semesterLabel(year, term, classNumber),
		Months:      monthsLabel(term),
	}
	p.Semesters = append(p.Semesters, sem)
	p.Dates[sem.ID] = DefaultDates(year, term)
	return sem, nil
}

// AddCohort: shorthand for AddSemester on an existing semester's group.
func (p *Plan) AddCohort(currentSemesterID uuid.UUID) (Semester, error) {
	i, ok := p.findSemester(currentSemesterID)
	if !ok {
		return Semester{}, ErrSemesterNotFound
	}
	return p.AddSemester(p.Semesters[i].Year, p.Semesters[i].Term)
}

// addSemesterExact inserts a cohort with a caller-chosen class number
// (cohort-string reconciliation). Rejects duplicates within the group.
func (p *Plan) addSemesterExact(year, term, classNumber int) (Semester, error) {
	if term != 1 && term != 2 {
		return Semester{}, ErrInvalidTerm
	}
	for _, s := range p.GroupSemesters(year, term) {
		if s.ClassNumber == classNumber {
			return Semester{}, ErrCohortAlreadyInGroup
		}
	}
	sem := Semester{
		ID:          uuid.New(),
		Year:        year,
		Term:        term,
		ClassNumber: classNumber,
		Label:       semesterLabel(year, term, classNumber),
		Months:      monthsLabel(term),
	}
	p.Semesters = append(p.Semesters, sem)
	p.Dates[sem.ID] = DefaultDates(year, term)
	return sem, nil
}

// DeleteSemester removes a cohort and cascades its assignment list and date
// entry. The plan must keep at least one semester. Returns the id the UI
// should select next: another cohort in the same group if one remains, else
// the last remaining semester overall.
func (p *Plan) DeleteSemester(id uuid.UUID) (uuid.UUID, error) {
	i, ok := p.findSemester(id)
	if !ok {
		return uuid.Nil, ErrSemesterNotFound
	}
	if len(p.Semesters) <= 1 {
		return uuid.Nil, ErrLastSemester
	}

	deleted := p.Semesters[i]
	p.Semesters = append(p.Semesters[:i], p.Semesters[i+1:]...)
	delete(p.Assignments, id)
	delete(p.Dates, id)

	for _, s := range p.GroupSemesters(deleted.Year, deleted.Term) {
		return s.ID, nil
	}
	return p.Semesters[len(p.Semesters)-1].ID, nil
}

// AssignSubject validates global uniqueness and both capacity caps before
// mutating. A rejected assignment leaves every count unchanged.
func (p *Plan) AssignSubject(subjectID, semesterID uuid.UUID) error {
	i, ok := p.findSemester(semesterID)
	if !ok {
		return ErrSemesterNotFound
	}
	if p.IsSubjectAssigned(subjectID) {
		return ErrSubjectAlreadyInPlan
	}
	sem := p.Semesters[i]

	if n := p.GroupAssignedCount(sem.Year, sem.Term); n >= GroupAssignmentCap {
		return &CapacityError{Cap: "group", Year: sem.Year, Term: sem.Term, Current: n, Max: GroupAssignmentCap}
	}
	if n := p.YearAssignedCount(sem.Year); n >= YearAssignmentCap {
		return &CapacityError{Cap: "year", Year: sem.Year, Current: n, Max: YearAssignmentCap}
	}

	p.Assignments[semesterID] = append(p.Assignments[semesterID], subjectID)
	return nil
}

// UnassignSubject removes the subject from whichever cohort of the named
// half-year group holds it. Removal from another group requires naming that
// group explicitly.
func (p *Plan) UnassignSubject(subjectID uuid.UUID, year, term int) error {
	for _, s := range p.GroupSemesters(year, term) {
		list := p.Assignments[s.ID]
		for i, id := range list {
			if id == subjectID {
				p.Assignments[s.ID] = append(list[:i], list[i+1:]...)
				if len(p.Assignments[s.ID]) == 0 {
					delete(p.Assignments, s.ID)
				}
				return nil
			}
		}
	}
	return ErrSubjectNotInGroup
}

// Clone deep-copies the aggregate so snapshots never alias live state.
func (p *Plan) Clone() *Plan {
	out := &Plan{
		Semesters:   append([]Semester(nil), p.Semesters...),
		Assignments: make(map[uuid.UUID][]uuid.UUID, len(p.Assignments)),
		Dates:       make(map[uuid.UUID]DateRange, len(p.Dates)),
	}
	for id, list := range p.Assignments {
		out.Assignments[id] = append([]uuid.UUID(nil), list...)
	}
	for id, dr := range p.Dates {
		out.Dates[id] = dr
	}
	return out
}

// SetDates overrides a single cohort's date range.
func (p *Plan) SetDates(semesterID uuid.UUID, start, end time.Time) error {
	if _, ok := p.findSemester(semesterID); !ok {
		return ErrSemesterNotFound
	}
	if !end.After(start) {
		return ErrInvalidDateRange
	}
	p.Dates[semesterID] = DateRange{Start: start, End: end}
	return nil
}
