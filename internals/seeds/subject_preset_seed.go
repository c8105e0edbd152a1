// file: internals/seeds/subject_preset_seed.go
package seeds

import (
	"bokjisa_backend/internals/constants"
	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
)

func strPtr(s string) *string { return &s }

func preset(courseType, category, name string, credits int, subjectType string, requirement *string, sortOrder int) subjectModel.SubjectPresetModel {
	return subjectModel.SubjectPresetModel{
		SubjectPresetCourseType:  courseType,
		SubjectPresetCategory:    category,
		SubjectPresetName:        name,
		SubjectPresetCredits:     credits,
		SubjectPresetType:        subjectType,
		SubjectPresetRequirement: requirement,
		SubjectPresetSortOrder:   sortOrder,
	}
}

// subjectPresets: the per-course seed catalogs. Course types match what
// CourseTypeFor derives from the student's course name.
func subjectPresets() []subjectModel.SubjectPresetModel {
	req := strPtr(constants.RequirementRequired)
	elec := strPtr(constants.RequirementElective)

	const (
		standard  = "사회복지사2급"
		legacy    = "사회복지사2급(구법)"
		practicum = "사회복지현장실습"
	)

	var out []subjectModel.SubjectPresetModel

	// ---- 사회복지사2급 (current curriculum: 10 required + electives) ----
	standardRequired := []string{
		"사회복지학개론",
		"인간행동과 사회환경",
		"사회복지실천론",
		"사회복지실천기술론",
		"사회복지정책론",
		"사회복지조사론",
		"사회복지행정론",
		"사회복지법제와 실천",
		"지역사회복지론",
	}
	for i, name := range standardRequired {
		out = append(out, preset(standard, constants.CategoryMajor, name, 3, constants.SubjectTypeTheory, req, i+1))
	}
	out = append(out, preset(standard, constants.CategoryMajor, "사회복지현장실습", 3, constants.SubjectTypePractice, req, 10))

	standardElective := []string{
		"아동복지론",
		"노인복지론",
		"장애인복지론",
		"가족복지론",
		"청소년복지론",
		"정신건강사회복지론",
		"의료사회복지론",
		"학교사회복지론",
		"사회문제론",
		"자원봉사론",
	}
	for i, name := range standardElective {
		out = append(out, preset(standard, constants.CategoryMajor, name, 3, constants.SubjectTypeTheory, elec, 20+i+1))
	}

	// ---- 사회복지사2급 (구법: the pre-2020 smaller curriculum) ----
	legacyRequired := []string{
		"사회복지개론",
		"인간행동과 사회환경",
		"사회복지실천론",
		"사회복지실천기술론",
		"사회복지정책론",
		"사회복지조사론",
		"사회복지행정론",
		"사회복지법제론",
		"지역사회복지론",
	}
	for i, name := range legacyRequired {
		out = append(out, preset(legacy, constants.CategoryMajor, name, 3, constants.SubjectTypeTheory, req, i+1))
	}
	out = append(out, preset(legacy, constants.CategoryMajor, "사회복지현장실습", 3, constants.SubjectTypePractice, req, 10))

	legacyElective := []string{
		"아동복지론",
		"노인복지론",
		"장애인복지론",
		"가족복지론",
	}
	for i, name := range legacyElective {
		out = append(out, preset(legacy, constants.CategoryMajor, name, 3, constants.SubjectTypeTheory, elec, 20+i+1))
	}

	// ---- 실습 과정 (practicum-only track: 4 required + elective pool) ----
	practicumRequired := []string{
		"사회복지학개론",
		"사회복지실천론",
		"사회복지실천기술론",
	}
	for i, name := range practicumRequired {
		out = append(out, preset(practicum, constants.CategoryMajor, name, 1, constants.SubjectTypeTheory, req, i+1))
	}
	out = append(out, preset(practicum, constants.CategoryMajor, "사회복지현장실습", 1, constants.SubjectTypePractice, req, 4))

	practicumElective := []string{
		"지역사회복지론",
		"사회복지정책론",
		"노인복지론",
		"아동복지론",
	}
	for i, name := range practicumElective {
		out = append(out, preset(practicum, constants.CategoryMajor, name, 1, constants.SubjectTypeTheory, elec, 10+i+1))
	}

	return out
}
