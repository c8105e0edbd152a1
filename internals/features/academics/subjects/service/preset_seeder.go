// file: internals/features/academics/subjects/service/preset_seeder.go
package service

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bokjisa_backend/internals/features/academics/subjects/model"
)

// CourseTypeFor maps a student's free-text course name onto a preset course
// type. Unknown course names get no auto-seed.
func CourseTypeFor(courseName string) string {
	switch {
	case strings.Contains(courseName, "실습"):
		return "사회복지현장실습"
	case strings.Contains(courseName, "구법"):
		return "사회복지사2급(구법)"
	case strings.Contains(courseName, "사회복지사"):
		return "사회복지사2급"
	default:
		return ""
	}
}

// SubjectsFromPresets copies preset rows into catalog subjects owned by the
// given student. Ownership keeps each student's starter catalog independent:
// one student's seed never satisfies another student's empty-list check.
func SubjectsFromPresets(studentID uuid.UUID, presets []model.SubjectPresetModel) []model.SubjectModel {
	owner := studentID
	subjects := make([]model.SubjectModel, 0, len(presets))
	for _, p := range presets {
		subjects = append(subjects, model.SubjectModel{
			SubjectStudentID:   &owner,
			SubjectCategory:    p.SubjectPresetCategory,
			SubjectName:        p.SubjectPresetName,
			SubjectCredits:     p.SubjectPresetCredits,
			SubjectType:        p.SubjectPresetType,
			SubjectRequirement: p.SubjectPresetRequirement,
			SubjectSortOrder:   p.SubjectPresetSortOrder,
		})
	}
	return subjects
}

// EnsureSeeded copies the matching preset catalog in as student-owned
// subjects the first time a student with a known course type sees an empty
// subject list. Runs once per student: the guard counts that student's
// visible subjects, and the seeded rows carry the student's id, so students
// with different course types each receive their own preset set.
func EnsureSeeded(db *gorm.DB, studentID uuid.UUID, courseName string) error {
	courseType := CourseTypeFor(courseName)
	if courseType == "" {
		return nil
	}

	var visible int64
	if err := db.Model(&model.SubjectModel{}).
		Where("subject_deleted_at IS NULL").
		Where("subject_student_id IS NULL OR subject_student_id = ?", studentID).
		Count(&visible).Error; err != nil {
		return err
	}
	if visible > 0 {
		return nil
	}

	var presets []model.SubjectPresetModel
	if err := db.
		Where("subject_preset_course_type = ?", courseType).
		Order("subject_preset_sort_order ASC").
		Find(&presets).Error; err != nil {
		return err
	}
	if len(presets) == 0 {
		return nil
	}

	subjects := SubjectsFromPresets(studentID, presets)
	if err := db.Create(&subjects).Error; err != nil {
		return err
	}
	log.Printf("[INFO] seeded %d preset subjects (student=%s course_type=%s)", len(subjects), studentID, courseType)
	return nil
}
