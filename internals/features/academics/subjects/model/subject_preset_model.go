// models/subject_preset.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectPresetModel: seed catalog per course type, copied into a student's
// subject list the first time their catalog view is empty.
type SubjectPresetModel struct {
	SubjectPresetID          uuid.UUID `gorm:"column:subject_preset_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_preset_id"`
	SubjectPresetCourseType  string    `gorm:"column:subject_preset_course_type;type:varchar(60);not null;index" json:"subject_preset_course_type"`
	SubjectPresetCategory    string    `gorm:"column:subject_preset_category;type:varchar(10);not null" json:"subject_preset_category"`
	SubjectPresetName        string    `gorm:"column:subject_preset_name;type:varchar(120);not null" json:"subject_preset_name"`
	SubjectPresetCredits     int       `gorm:"column:subject_preset_credits;not null" json:"subject_preset_credits"`
	SubjectPresetType        string    `gorm:"column:subject_preset_type;type:varchar(10);not null;default:이론" json:"subject_preset_type"`
	SubjectPresetRequirement *string   `gorm:"column:subject_preset_requirement;type:varchar(10)" json:"subject_preset_requirement,omitempty"`
	SubjectPresetSortOrder   int       `gorm:"column:subject_preset_sort_order;not null;default:0" json:"subject_preset_sort_order"`

	SubjectPresetCreatedAt time.Time `gorm:"column:subject_preset_created_at;not null;default:now()" json:"subject_preset_created_at"`
}

func (SubjectPresetModel) TableName() string { return "subject_presets" }

func (m *SubjectPresetModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectPresetID == uuid.Nil {
		m.SubjectPresetID = uuid.New()
	}
	return nil
}

// SelfStudyPresetModel: 독학사 exam presets, staged 1..4. The category drives
// the credit-type rule at insert time (see requirements service).
type SelfStudyPresetModel struct {
	SelfStudyPresetID        uuid.UUID `gorm:"column:self_study_preset_id;type:uuid;default:gen_random_uuid();primaryKey" json:"self_study_preset_id"`
	SelfStudyPresetStage     int       `gorm:"column:self_study_preset_stage;not null;check:self_study_preset_stage BETWEEN 1 AND 4" json:"self_study_preset_stage"`
	SelfStudyPresetCategory  string    `gorm:"column:self_study_preset_category;type:varchar(60);not null" json:"self_study_preset_category"`
	SelfStudyPresetName      string    `gorm:"column:self_study_preset_name;type:varchar(120);not null" json:"self_study_preset_name"`
	SelfStudyPresetCredits   int       `gorm:"column:self_study_preset_credits;not null" json:"self_study_preset_credits"`
	SelfStudyPresetSortOrder int       `gorm:"column:self_study_preset_sort_order;not null;default:0" json:"self_study_preset_sort_order"`

	SelfStudyPresetCreatedAt time.Time `gorm:"column:self_study_preset_created_at;not null;default:now()" json:"self_study_preset_created_at"`
}

func (SelfStudyPresetModel) TableName() string { return "self_study_presets" }

func (m *SelfStudyPresetModel) BeforeCreate(tx *gorm.DB) error {
	if m.SelfStudyPresetID == uuid.Nil {
		m.SelfStudyPresetID = uuid.New()
	}
	return nil
}
