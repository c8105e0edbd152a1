// file: internals/features/academics/plans/service/store.go
package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bokjisa_backend/internals/features/academics/plans/model"
)

// Store persists plan snapshots: whole-row upsert keyed on the student id,
// last writer wins. Concurrent admin sessions on one student are not merged.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{DB: db} }

// Load returns the persisted plan, and whether a row existed at all.
func (s *Store) Load(studentID uuid.UUID) (*Plan, bool, error) {
	var row model.StudentPlanModel
	err := s.DB.Where("student_plan_student_id = ?", studentID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	p := NewPlan()
	if err := json.Unmarshal(row.StudentPlanSemesters, &p.Semesters); err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(row.StudentPlanAssignments, &p.Assignments); err != nil {
		return nil, false, err
	}
	if err := json.Unmarshal(row.StudentPlanDates, &p.Dates); err != nil {
		return nil, false, err
	}
	if p.Assignments == nil {
		p.Assignments = map[uuid.UUID][]uuid.UUID{}
	}
	if p.Dates == nil {
		p.Dates = map[uuid.UUID]DateRange{}
	}
	return p, true, nil
}

// Save upserts the whole snapshot (creates the row on the first autosave).
func (s *Store) Save(studentID uuid.UUID, p *Plan) error {
	semesters, err := json.Marshal(p.Semesters)
	if err != nil {
		return err
	}
	assignments, err := json.Marshal(p.Assignments)
	if err != nil {
		return err
	}
	dates, err := json.Marshal(p.Dates)
	if err != nil {
		return err
	}

	row := model.StudentPlanModel{
		StudentPlanStudentID:   studentID,
		StudentPlanSemesters:   semesters,
		StudentPlanAssignments: assignments,
		StudentPlanDates:       dates,
		StudentPlanUpdatedAt:   time.Now(),
	}

	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_plan_student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_plan_semesters",
			"student_plan_assignments",
			"student_plan_dates",
			"student_plan_updated_at",
		}),
	}).Create(&row).Error
}
