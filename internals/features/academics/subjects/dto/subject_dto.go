// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"bokjisa_backend/internals/features/academics/subjects/model"
)

// =======================
// Request DTO
// =======================

type SubjectCreateDTO struct {
	SubjectCategory    string  `json:"subject_category"    validate:"required,oneof=전공 교양 일반"`
	SubjectName        string  `json:"subject_name"        validate:"required,min=1,max=120"`
	SubjectCredits     int     `json:"subject_credits"     validate:"required,gt=0"`
	SubjectType        string  `json:"subject_type"        validate:"required,oneof=이론 실습"`
	SubjectRequirement *string `json:"subject_requirement,omitempty" validate:"omitempty,oneof=필수 선택"`
}

func (p *SubjectCreateDTO) Normalize() {
	p.SubjectCategory = strings.TrimSpace(p.SubjectCategory)
	p.SubjectName = strings.TrimSpace(p.SubjectName)
	p.SubjectType = strings.TrimSpace(p.SubjectType)
}

// ToModel: a subject created through the student screen is always owned.
func (p *SubjectCreateDTO) ToModel(studentID uuid.UUID) model.SubjectModel {
	return model.SubjectModel{
		SubjectStudentID:   &studentID,
		SubjectCategory:    p.SubjectCategory,
		SubjectName:        p.SubjectName,
		SubjectCredits:     p.SubjectCredits,
		SubjectType:        p.SubjectType,
		SubjectRequirement: p.SubjectRequirement,
	}
}

// =======================
// Response DTO
// =======================

type SubjectResponseDTO struct {
	SubjectID          uuid.UUID  `json:"subject_id"`
	SubjectStudentID   *uuid.UUID `json:"subject_student_id,omitempty"`
	SubjectCategory    string     `json:"subject_category"`
	SubjectName        string     `json:"subject_name"`
	SubjectCredits     int        `json:"subject_credits"`
	SubjectType        string     `json:"subject_type"`
	SubjectRequirement *string    `json:"subject_requirement,omitempty"`
	SubjectSortOrder   int        `json:"subject_sort_order"`
	SubjectIsGlobal    bool       `json:"subject_is_global"`
	SubjectCreatedAt   time.Time  `json:"subject_created_at"`
}

func FromModel(m model.SubjectModel) SubjectResponseDTO {
	return SubjectResponseDTO{
		SubjectID:          m.SubjectID,
		SubjectStudentID:   m.SubjectStudentID,
		SubjectCategory:    m.SubjectCategory,
		SubjectName:        m.SubjectName,
		SubjectCredits:     m.SubjectCredits,
		SubjectType:        m.SubjectType,
		SubjectRequirement: m.SubjectRequirement,
		SubjectSortOrder:   m.SubjectSortOrder,
		SubjectIsGlobal:    m.IsGlobal(),
		SubjectCreatedAt:   m.SubjectCreatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponseDTO {
	out := make([]SubjectResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
