// models/student.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel: one certification-track student record.
// StudentClassStart carries the raw multi-cohort descriptor string
// ("2026년 1학기 3기, 2026년 2학기 1기"); the plans feature owns its grammar.
type StudentModel struct {
	StudentID             uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentName           string    `gorm:"column:student_name;type:varchar(80);not null" json:"student_name"`
	StudentPhone          *string   `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`
	StudentEducationLevel string    `gorm:"column:student_education_level;type:varchar(30)" json:"student_education_level"`
	StudentDesiredDegree  string    `gorm:"column:student_desired_degree;type:varchar(30)" json:"student_desired_degree"`
	StudentCourseName     string    `gorm:"column:student_course_name;type:varchar(80)" json:"student_course_name"`
	StudentMajor          string    `gorm:"column:student_major;type:varchar(80)" json:"student_major"`
	StudentClassStart     string    `gorm:"column:student_class_start;type:varchar(255)" json:"student_class_start"`
	StudentMemo           *string   `gorm:"column:student_memo;type:text" json:"student_memo,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time  `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt *time.Time `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
