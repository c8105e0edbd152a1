// models/student_plan.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentPlanModel: one row per student, replaced whole on every save.
// The three JSONB columns snapshot the in-memory plan aggregate; there is
// deliberately no per-semester row granularity.
type StudentPlanModel struct {
	StudentPlanID          uuid.UUID      `gorm:"column:student_plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_plan_id"`
	StudentPlanStudentID   uuid.UUID      `gorm:"column:student_plan_student_id;type:uuid;not null;uniqueIndex" json:"student_plan_student_id"`
	StudentPlanSemesters   datatypes.JSON `gorm:"column:student_plan_semesters;type:jsonb;not null" json:"student_plan_semesters"`
	StudentPlanAssignments datatypes.JSON `gorm:"column:student_plan_assignments;type:jsonb;not null" json:"student_plan_assignments"`
	StudentPlanDates       datatypes.JSON `gorm:"column:student_plan_dates;type:jsonb;not null" json:"student_plan_dates"`

	StudentPlanCreatedAt time.Time `gorm:"column:student_plan_created_at;not null;default:now()" json:"student_plan_created_at"`
	StudentPlanUpdatedAt time.Time `gorm:"column:student_plan_updated_at;not null;default:now()" json:"student_plan_updated_at"`
}

func (StudentPlanModel) TableName() string { return "student_plans" }

func (m *StudentPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentPlanID == uuid.Nil {
		m.StudentPlanID = uuid.New()
	}
	return nil
}
