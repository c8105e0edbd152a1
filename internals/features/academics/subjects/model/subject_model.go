// models/subject.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel: one row per catalog subject. Global subjects have a NULL
// student id and are visible to every student; student-owned subjects are
// private additions deletable only by the owning student's context.
type SubjectModel struct {
	SubjectID          uuid.UUID  `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectStudentID   *uuid.UUID `gorm:"column:subject_student_id;type:uuid;index" json:"subject_student_id,omitempty"`
	SubjectCategory    string     `gorm:"column:subject_category;type:varchar(10);not null" json:"subject_category"`
	SubjectName        string     `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`
	SubjectCredits     int        `gorm:"column:subject_credits;not null;check:subject_credits > 0" json:"subject_credits"`
	SubjectType        string     `gorm:"column:subject_type;type:varchar(10);not null;default:이론" json:"subject_type"`
	SubjectRequirement *string    `gorm:"column:subject_requirement;type:varchar(10)" json:"subject_requirement,omitempty"`
	SubjectSortOrder   int        `gorm:"column:subject_sort_order;not null;default:0" json:"subject_sort_order"`

	SubjectCreatedAt time.Time  `gorm:"column:subject_created_at;not null;default:now()" json:"subject_created_at"`
	SubjectUpdatedAt time.Time  `gorm:"column:subject_updated_at;not null;default:now()" json:"subject_updated_at"`
	SubjectDeletedAt *time.Time `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}

// IsGlobal: part of the shared catalog, immutable from the student view.
func (m *SubjectModel) IsGlobal() bool { return m.SubjectStudentID == nil }

// OwnedBy: private subject of the given student.
func (m *SubjectModel) OwnedBy(studentID uuid.UUID) bool {
	return m.SubjectStudentID != nil && *m.SubjectStudentID == studentID
}
