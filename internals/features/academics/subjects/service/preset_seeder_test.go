package service

import (
	"testing"

	"github.com/google/uuid"

	"bokjisa_backend/internals/constants"
	"bokjisa_backend/internals/features/academics/subjects/model"
)

func TestCourseTypeFor(t *testing.T) {
	cases := []struct {
		courseName, want string
	}{
		{"사회복지현장실습", "사회복지현장실습"},
		{"사회복지사2급", "사회복지사2급"},
		{"사회복지사2급(구법)", "사회복지사2급(구법)"},
		{"사회복지사 2급 구법 과정", "사회복지사2급(구법)"},
		{"실습 과정", "사회복지현장실습"}, // 실습 outranks the 사회복지사 match
		{"바리스타 자격과정", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CourseTypeFor(tc.courseName); got != tc.want {
			t.Fatalf("CourseTypeFor(%q) = %q, want %q", tc.courseName, got, tc.want)
		}
	}
}

func TestSubjectsFromPresets_RowsAreOwnedByTheStudent(t *testing.T) {
	req := constants.RequirementRequired
	presets := []model.SubjectPresetModel{
		{
			SubjectPresetCourseType:  "사회복지현장실습",
			SubjectPresetCategory:    constants.CategoryMajor,
			SubjectPresetName:        "사회복지현장실습",
			SubjectPresetCredits:     1,
			SubjectPresetType:        constants.SubjectTypePractice,
			SubjectPresetRequirement: &req,
			SubjectPresetSortOrder:   4,
		},
		{
			SubjectPresetCourseType: "사회복지현장실습",
			SubjectPresetCategory:   constants.CategoryMajor,
			SubjectPresetName:       "사회복지학개론",
			SubjectPresetCredits:    1,
			SubjectPresetType:       constants.SubjectTypeTheory,
			SubjectPresetSortOrder:  1,
		},
	}

	studentID := uuid.New()
	subjects := SubjectsFromPresets(studentID, presets)
	if len(subjects) != len(presets) {
		t.Fatalf("rows = %d, want %d", len(subjects), len(presets))
	}
	for i, s := range subjects {
		if s.SubjectStudentID == nil || *s.SubjectStudentID != studentID {
			t.Fatalf("row %d owner = %v, want %s", i, s.SubjectStudentID, studentID)
		}
		if s.SubjectName != presets[i].SubjectPresetName ||
			s.SubjectCategory != presets[i].SubjectPresetCategory ||
			s.SubjectCredits != presets[i].SubjectPresetCredits ||
			s.SubjectType != presets[i].SubjectPresetType ||
			s.SubjectSortOrder != presets[i].SubjectPresetSortOrder {
			t.Fatalf("row %d diverged from its preset: %+v", i, s)
		}
	}
	if subjects[0].SubjectRequirement == nil || *subjects[0].SubjectRequirement != req {
		t.Fatalf("requirement flag dropped: %+v", subjects[0])
	}
}

// Two students on different course types each get their own copy: because
// seeded rows carry an owner, the first student's catalog is invisible to the
// second student's empty-list check and can never suppress their seed.
func TestSubjectsFromPresets_StudentsDoNotShareSeeds(t *testing.T) {
	presets := []model.SubjectPresetModel{
		{SubjectPresetCategory: constants.CategoryMajor, SubjectPresetName: "사회복지개론", SubjectPresetCredits: 3},
	}
	practicumPresets := []model.SubjectPresetModel{
		{SubjectPresetCategory: constants.CategoryMajor, SubjectPresetName: "사회복지현장실습", SubjectPresetCredits: 1},
	}

	oldLaw := uuid.New()
	practicum := uuid.New()
	a := SubjectsFromPresets(oldLaw, presets)
	b := SubjectsFromPresets(practicum, practicumPresets)

	if a[0].OwnedBy(practicum) || b[0].OwnedBy(oldLaw) {
		t.Fatalf("seed rows leaked across students: %+v / %+v", a[0], b[0])
	}
	if a[0].IsGlobal() || b[0].IsGlobal() {
		t.Fatalf("seed rows must not be global: %+v / %+v", a[0], b[0])
	}
}
