// models/credit_sources.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriorSubjectModel: credit recognized from a previous institution. Counts
// toward the category total regardless of any semester slot.
type PriorSubjectModel struct {
	PriorSubjectID        uuid.UUID `gorm:"column:prior_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prior_subject_id"`
	PriorSubjectStudentID uuid.UUID `gorm:"column:prior_subject_student_id;type:uuid;not null;index" json:"prior_subject_student_id"`
	PriorSubjectCategory  string    `gorm:"column:prior_subject_category;type:varchar(10);not null" json:"prior_subject_category"`
	PriorSubjectName      string    `gorm:"column:prior_subject_name;type:varchar(160);not null" json:"prior_subject_name"`
	PriorSubjectCredits   int       `gorm:"column:prior_subject_credits;not null;check:prior_subject_credits > 0" json:"prior_subject_credits"`
	PriorSubjectCreatedAt time.Time `gorm:"column:prior_subject_created_at;not null;default:now()" json:"prior_subject_created_at"`
}

func (PriorSubjectModel) TableName() string { return "prior_subjects" }

func (m *PriorSubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.PriorSubjectID == uuid.Nil {
		m.PriorSubjectID = uuid.New()
	}
	return nil
}

// CertificateCreditModel: flat credit grant. Added to the grand total only,
// never broken into category buckets.
type CertificateCreditModel struct {
	CertificateCreditID           uuid.UUID  `gorm:"column:certificate_credit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"certificate_credit_id"`
	CertificateCreditStudentID    uuid.UUID  `gorm:"column:certificate_credit_student_id;type:uuid;not null;index" json:"certificate_credit_student_id"`
	CertificateCreditName         string     `gorm:"column:certificate_credit_name;type:varchar(120);not null" json:"certificate_credit_name"`
	CertificateCreditCredits      int        `gorm:"column:certificate_credit_credits;not null;check:certificate_credit_credits > 0" json:"certificate_credit_credits"`
	CertificateCreditAcquiredDate *time.Time `gorm:"column:certificate_credit_acquired_date;type:date" json:"certificate_credit_acquired_date,omitempty"`
	CertificateCreditCreatedAt    time.Time  `gorm:"column:certificate_credit_created_at;not null;default:now()" json:"certificate_credit_created_at"`
}

func (CertificateCreditModel) TableName() string { return "certificate_credits" }

func (m *CertificateCreditModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateCreditID == uuid.Nil {
		m.CertificateCreditID = uuid.New()
	}
	return nil
}

// SelfStudyCreditModel: 독학사 exam credit. The credit type is decided at
// insert time from the stage and the student's declared major and stored
// as-is; it is fungible with the category totals.
type SelfStudyCreditModel struct {
	SelfStudyCreditID          uuid.UUID `gorm:"column:self_study_credit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"self_study_credit_id"`
	SelfStudyCreditStudentID   uuid.UUID `gorm:"column:self_study_credit_student_id;type:uuid;not null;index" json:"self_study_credit_student_id"`
	SelfStudyCreditStage       int       `gorm:"column:self_study_credit_stage;not null;check:self_study_credit_stage BETWEEN 1 AND 4" json:"self_study_credit_stage"`
	SelfStudyCreditSubjectName string    `gorm:"column:self_study_credit_subject_name;type:varchar(120);not null" json:"self_study_credit_subject_name"`
	SelfStudyCreditCredits     int       `gorm:"column:self_study_credit_credits;not null;check:self_study_credit_credits > 0" json:"self_study_credit_credits"`
	SelfStudyCreditType        string    `gorm:"column:self_study_credit_type;type:varchar(10);not null" json:"self_study_credit_type"`
	SelfStudyCreditCreatedAt   time.Time `gorm:"column:self_study_credit_created_at;not null;default:now()" json:"self_study_credit_created_at"`
}

func (SelfStudyCreditModel) TableName() string { return "self_study_credits" }

func (m *SelfStudyCreditModel) BeforeCreate(tx *gorm.DB) error {
	if m.SelfStudyCreditID == uuid.Nil {
		m.SelfStudyCreditID = uuid.New()
	}
	return nil
}
