// file: internals/features/students/student/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"bokjisa_backend/internals/features/students/student/model"
)

// =======================
// Request DTO
// =======================

type StudentCreateDTO struct {
	StudentName           string  `json:"student_name"            validate:"required,min=1,max=80"`
	StudentPhone          *string `json:"student_phone,omitempty" validate:"omitempty,max=30"`
	StudentEducationLevel string  `json:"student_education_level" validate:"omitempty,max=30"`
	StudentDesiredDegree  string  `json:"student_desired_degree"  validate:"omitempty,max=30"`
	StudentCourseName     string  `json:"student_course_name"     validate:"omitempty,max=80"`
	StudentMajor          string  `json:"student_major"           validate:"omitempty,max=80"`
	StudentClassStart     string  `json:"student_class_start"     validate:"omitempty,max=255"`
	StudentMemo           *string `json:"student_memo,omitempty"`
}

func (p *StudentCreateDTO) Normalize() {
	p.StudentName = strings.TrimSpace(p.StudentName)
	p.StudentEducationLevel = strings.TrimSpace(p.StudentEducationLevel)
	p.StudentDesiredDegree = strings.TrimSpace(p.StudentDesiredDegree)
	p.StudentCourseName = strings.TrimSpace(p.StudentCourseName)
	p.StudentMajor = strings.TrimSpace(p.StudentMajor)
	p.StudentClassStart = strings.TrimSpace(p.StudentClassStart)
}

func (p *StudentCreateDTO) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentName:           p.StudentName,
		StudentPhone:          p.StudentPhone,
		StudentEducationLevel: p.StudentEducationLevel,
		StudentDesiredDegree:  p.StudentDesiredDegree,
		StudentCourseName:     p.StudentCourseName,
		StudentMajor:          p.StudentMajor,
		StudentClassStart:     p.StudentClassStart,
		StudentMemo:           p.StudentMemo,
	}
}

type StudentUpdateDTO struct {
	StudentName           *string `json:"student_name,omitempty"            validate:"omitempty,min=1,max=80"`
	StudentPhone          *string `json:"student_phone,omitempty"           validate:"omitempty,max=30"`
	StudentEducationLevel *string `json:"student_education_level,omitempty" validate:"omitempty,max=30"`
	StudentDesiredDegree  *string `json:"student_desired_degree,omitempty"  validate:"omitempty,max=30"`
	StudentCourseName     *string `json:"student_course_name,omitempty"     validate:"omitempty,max=80"`
	StudentMajor          *string `json:"student_major,omitempty"           validate:"omitempty,max=80"`
	StudentClassStart     *string `json:"student_class_start,omitempty"     validate:"omitempty,max=255"`
	StudentMemo           *string `json:"student_memo,omitempty"`
}

// ApplyTo copies only the provided fields onto the record.
func (p *StudentUpdateDTO) ApplyTo(m *model.StudentModel) {
	if p.StudentName != nil {
		m.StudentName = strings.TrimSpace(*p.StudentName)
	}
	if p.StudentPhone != nil {
		m.StudentPhone = p.StudentPhone
	}
	if p.StudentEducationLevel != nil {
		m.StudentEducationLevel = strings.TrimSpace(*p.StudentEducationLevel)
	}
	if p.StudentDesiredDegree != nil {
		m.StudentDesiredDegree = strings.TrimSpace(*p.StudentDesiredDegree)
	}
	if p.StudentCourseName != nil {
		m.StudentCourseName = strings.TrimSpace(*p.StudentCourseName)
	}
	if p.StudentMajor != nil {
		m.StudentMajor = strings.TrimSpace(*p.StudentMajor)
	}
	if p.StudentClassStart != nil {
		m.StudentClassStart = strings.TrimSpace(*p.StudentClassStart)
	}
	if p.StudentMemo != nil {
		m.StudentMemo = p.StudentMemo
	}
}

// =======================
// Response DTO
// =======================

type StudentResponseDTO struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentName           string    `json:"student_name"`
	StudentPhone          *string   `json:"student_phone,omitempty"`
	StudentEducationLevel string    `json:"student_education_level"`
	StudentDesiredDegree  string    `json:"student_desired_degree"`
	StudentCourseName     string    `json:"student_course_name"`
	StudentMajor          string    `json:"student_major"`
	StudentClassStart     string    `json:"student_class_start"`
	StudentMemo           *string   `json:"student_memo,omitempty"`
	StudentCreatedAt      time.Time `json:"student_created_at"`
	StudentUpdatedAt      time.Time `json:"student_updated_at"`
}

func FromModel(m model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:             m.StudentID,
		StudentName:           m.StudentName,
		StudentPhone:          m.StudentPhone,
		StudentEducationLevel: m.StudentEducationLevel,
		StudentDesiredDegree:  m.StudentDesiredDegree,
		StudentCourseName:     m.StudentCourseName,
		StudentMajor:          m.StudentMajor,
		StudentClassStart:     m.StudentClassStart,
		StudentMemo:           m.StudentMemo,
		StudentCreatedAt:      m.StudentCreatedAt,
		StudentUpdatedAt:      m.StudentUpdatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
