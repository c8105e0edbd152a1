// file: internals/features/academics/creditsources/dto/credit_source_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"bokjisa_backend/internals/features/academics/creditsources/model"
)

// =======================
// Prior-institution subject
// =======================

type PriorSubjectCreateDTO struct {
	PriorSubjectCategory string `json:"prior_subject_category" validate:"required,oneof=전공 교양 일반"`
	PriorSubjectName     string `json:"prior_subject_name"     validate:"required,min=1,max=160"`
	PriorSubjectCredits  int    `json:"prior_subject_credits"  validate:"required,gt=0"`
}

func (p *PriorSubjectCreateDTO) Normalize() {
	p.PriorSubjectCategory = strings.TrimSpace(p.PriorSubjectCategory)
	p.PriorSubjectName = strings.TrimSpace(p.PriorSubjectName)
}

func (p *PriorSubjectCreateDTO) ToModel(studentID uuid.UUID) model.PriorSubjectModel {
	return model.PriorSubjectModel{
		PriorSubjectStudentID: studentID,
		PriorSubjectCategory:  p.PriorSubjectCategory,
		PriorSubjectName:      p.PriorSubjectName,
		PriorSubjectCredits:   p.PriorSubjectCredits,
	}
}

// =======================
// Certificate credit
// =======================

type CertificateCreditCreateDTO struct {
	CertificateCreditName         string     `json:"certificate_credit_name"    validate:"required,min=1,max=120"`
	CertificateCreditCredits      int        `json:"certificate_credit_credits" validate:"required,gt=0"`
	CertificateCreditAcquiredDate *time.Time `json:"certificate_credit_acquired_date,omitempty"`
}

func (p *CertificateCreditCreateDTO) Normalize() {
	p.CertificateCreditName = strings.TrimSpace(p.CertificateCreditName)
}

func (p *CertificateCreditCreateDTO) ToModel(studentID uuid.UUID) model.CertificateCreditModel {
	return model.CertificateCreditModel{
		CertificateCreditStudentID:    studentID,
		CertificateCreditName:         p.CertificateCreditName,
		CertificateCreditCredits:      p.CertificateCreditCredits,
		CertificateCreditAcquiredDate: p.CertificateCreditAcquiredDate,
	}
}

// =======================
// Self-study (독학사) credit
// =======================

// The client sends the chosen preset; the credit type is computed server-side
// from the stage, the preset category and the student's declared major.
type SelfStudyCreditCreateDTO struct {
	SelfStudyCreditStage       int    `json:"self_study_credit_stage"        validate:"required,min=1,max=4"`
	SelfStudyCreditSubjectName string `json:"self_study_credit_subject_name" validate:"required,min=1,max=120"`
	SelfStudyCreditCredits     int    `json:"self_study_credit_credits"      validate:"required,gt=0"`
	SelfStudyPresetCategory    string `json:"self_study_preset_category"     validate:"omitempty,max=60"`
}

func (p *SelfStudyCreditCreateDTO) Normalize() {
	p.SelfStudyCreditSubjectName = strings.TrimSpace(p.SelfStudyCreditSubjectName)
	p.SelfStudyPresetCategory = strings.TrimSpace(p.SelfStudyPresetCategory)
}

func (p *SelfStudyCreditCreateDTO) ToModel(studentID uuid.UUID, creditType string) model.SelfStudyCreditModel {
	return model.SelfStudyCreditModel{
		SelfStudyCreditStudentID:   studentID,
		SelfStudyCreditStage:       p.SelfStudyCreditStage,
		SelfStudyCreditSubjectName: p.SelfStudyCreditSubjectName,
		SelfStudyCreditCredits:     p.SelfStudyCreditCredits,
		SelfStudyCreditType:        creditType,
	}
}
