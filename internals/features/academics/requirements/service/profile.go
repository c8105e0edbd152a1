// file: internals/features/academics/requirements/service/profile.go
package service

import (
	"strings"

	"bokjisa_backend/internals/constants"
)

// CategoryTarget is one bar of the requirement breakdown.
type CategoryTarget struct {
	Label      string   `json:"label"`
	Categories []string `json:"categories"`
	Target     int      `json:"target"`
}

// PracticumRequirement applies to fieldwork-only courses.
type PracticumRequirement struct {
	RequiredCount int `json:"required_count"`
	ElectiveCount int `json:"elective_count"`
}

// RequirementProfile is derived per student, never persisted.
type RequirementProfile struct {
	IsExtendedProgram  bool                  `json:"is_extended_program"`
	TotalTarget        int                   `json:"total_target"`
	SubjectCountTarget *int                  `json:"subject_count_target,omitempty"`
	CategoryTargets    []CategoryTarget      `json:"category_targets"`
	Practicum          *PracticumRequirement `json:"practicum,omitempty"`
}

func intPtr(n int) *int { return &n }

func singleTarget(label, category string, target int) []CategoryTarget {
	return []CategoryTarget{{Label: label, Categories: []string{category}, Target: target}}
}

func extendedTargets(major, liberal, general int) []CategoryTarget {
	return []CategoryTarget{
		{Label: constants.CategoryMajor, Categories: []string{constants.CategoryMajor}, Target: major},
		{Label: constants.CategoryLiberal, Categories: []string{constants.CategoryLiberal}, Target: liberal},
		{Label: constants.CategoryGeneral, Categories: []string{constants.CategoryGeneral}, Target: general},
	}
}

// isAttrition: did not finish the prior institution (고졸 or any 중퇴).
func isAttrition(educationLevel string) bool {
	if educationLevel == constants.EduHighSchool {
		return true
	}
	return strings.Contains(educationLevel, "중퇴")
}

// isGraduate: completed a 2/3/4-year program.
func isGraduate(educationLevel string) bool {
	return strings.Contains(educationLevel, "졸업")
}

// ResolveProfile maps (education level, course name, desired degree) to the
// applicable credit-requirement profile. First matching branch wins:
//
//  1. practicum course → 6 credits / 6 subjects, 전공 only, 필수 4 + 선택 2
//  2. attrition + 학사 → 140 (전공 60 / 교양 30 / 일반 50)
//  3. attrition, other degree → 80 (전공 45 / 교양 15 / 일반 20)
//  4. 2/3년제 졸업 + 학사 → same as (2)
//  5. everything else (incl. unset education level) → 51 / 8 subjects, 전공 only
func ResolveProfile(educationLevel, courseName, desiredDegree string) RequirementProfile {
	// practicum courses ignore education level entirely
	if strings.Contains(courseName, constants.PracticumMarker) {
		return RequirementProfile{
			IsExtendedProgram:  false,
			TotalTarget:        6,
			SubjectCountTarget: intPtr(6),
			CategoryTargets:    singleTarget(constants.CategoryMajor, constants.CategoryMajor, 6),
			Practicum:          &PracticumRequirement{RequiredCount: 4, ElectiveCount: 2},
		}
	}

	wantsBachelor := desiredDegree == constants.DegreeBachelor

	if isAttrition(educationLevel) {
		if wantsBachelor {
			return RequirementProfile{
				IsExtendedProgram: true,
				TotalTarget:       140,
				CategoryTargets:   extendedTargets(60, 30, 50),
			}
		}
		return RequirementProfile{
			IsExtendedProgram: true,
			TotalTarget:       80,
			CategoryTargets:   extendedTargets(45, 15, 20),
		}
	}

	if isGraduate(educationLevel) && wantsBachelor &&
		(strings.HasPrefix(educationLevel, "2년제") || strings.HasPrefix(educationLevel, "3년제")) {
		return RequirementProfile{
			IsExtendedProgram: true,
			TotalTarget:       140,
			CategoryTargets:   extendedTargets(60, 30, 50),
		}
	}

	// graduates not seeking a bachelor's, plus the unset/unknown fallback
	return RequirementProfile{
		IsExtendedProgram:  false,
		TotalTarget:        51,
		SubjectCountTarget: intPtr(8),
		CategoryTargets:    singleTarget(constants.CategoryMajor, constants.CategoryMajor, 51),
	}
}

// NormalizeMajor is the single hook on the major-name comparison used by the
// self-study credit rule. The observed product behavior is an exact string
// match, so this only trims whitespace; a typo in the student's major still
// routes self-study credit into 일반 instead of 전공.
// TODO: confirm with 학사관리팀 whether synonym/spacing normalization is wanted here.
func NormalizeMajor(s string) string {
	return strings.TrimSpace(s)
}

// SelfStudyCreditType decides the credit bucket for a 독학사 entry at insert
// time: stage 1 is always 교양; later stages count as 전공 only when the
// preset's category matches the student's declared major.
func SelfStudyCreditType(stage int, presetCategory, studentMajor string) string {
	if stage <= 1 {
		return constants.CategoryLiberal
	}
	if NormalizeMajor(presetCategory) == NormalizeMajor(studentMajor) {
		return constants.CategoryMajor
	}
	return constants.CategoryGeneral
}
