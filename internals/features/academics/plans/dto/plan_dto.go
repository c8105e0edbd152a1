// file: internals/features/academics/plans/dto/plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"bokjisa_backend/internals/features/academics/plans/service"
)

// =======================
// Request DTO
// =======================

type AddSemesterDTO struct {
	Year int `json:"year" validate:"required,min=2000,max=2100"`
	Term int `json:"term" validate:"required,oneof=1 2"`
}

type AssignSubjectDTO struct {
	SubjectID  uuid.UUID `json:"subject_id"  validate:"required"`
	SemesterID uuid.UUID `json:"semester_id" validate:"required"`
}

type UnassignSubjectDTO struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Year      int       `json:"year"       validate:"required,min=2000,max=2100"`
	Term      int       `json:"term"       validate:"required,oneof=1 2"`
}

type SetDatesDTO struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end"   validate:"required,gtfield=Start"`
}

// ReplacePlanDTO is the debounced client autosave payload: the whole
// aggregate, replacing the server-held editing state.
type ReplacePlanDTO struct {
	Semesters   []service.Semester              `json:"semesters"   validate:"required,min=1"`
	Assignments map[uuid.UUID][]uuid.UUID       `json:"assignments"`
	Dates       map[uuid.UUID]service.DateRange `json:"dates"`
}

func (p *ReplacePlanDTO) ToPlan() *service.Plan {
	plan := service.NewPlan()
	plan.Semesters = p.Semesters
	if p.Assignments != nil {
		plan.Assignments = p.Assignments
	}
	if p.Dates != nil {
		plan.Dates = p.Dates
	}
	return plan
}

// =======================
// Response DTO
// =======================

// PlanResponseDTO groups cohorts by (year, term) the way the planner screen
// renders them; raw assignment lists and dates stay per-cohort.
type PlanResponseDTO struct {
	Semesters   []service.Semester              `json:"semesters"`
	Assignments map[uuid.UUID][]uuid.UUID       `json:"assignments"`
	Dates       map[uuid.UUID]service.DateRange `json:"dates"`
	Groups      []GroupDTO                      `json:"groups"`
}

type GroupDTO struct {
	Year          int                `json:"year"`
	Term          int                `json:"term"`
	Cohorts       []service.Semester `json:"cohorts"`
	AssignedCount int                `json:"assigned_count"`
	AssignedCap   int                `json:"assigned_cap"`
}

func FromPlan(p *service.Plan) PlanResponseDTO {
	resp := PlanResponseDTO{
		Semesters:   p.Semesters,
		Assignments: p.Assignments,
		Dates:       p.Dates,
	}

	type key struct{ year, term int }
	seen := map[key]bool{}
	for _, s := range p.Semesters {
		k := key{s.Year, s.Term}
		if seen[k] {
			continue
		}
		seen[k] = true
		resp.Groups = append(resp.Groups, GroupDTO{
			Year:          s.Year,
			Term:          s.Term,
			Cohorts:       p.GroupSemesters(s.Year, s.Term),
			AssignedCount: p.GroupAssignedCount(s.Year, s.Term),
			AssignedCap:   service.GroupAssignmentCap,
		})
	}
	return resp
}
