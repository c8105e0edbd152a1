// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activity "bokjisa_backend/internals/features/activity/logs/service"
	"bokjisa_backend/internals/features/academics/subjects/dto"
	"bokjisa_backend/internals/features/academics/subjects/model"
	"bokjisa_backend/internals/features/academics/subjects/service"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /students/:id/subjects
// Global catalog + the student's own additions. Auto-seeds the preset catalog
// the first time a student with a known course type sees an empty list.
func (ctl *SubjectController) ListForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.Where("student_id = ? AND student_deleted_at IS NULL", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	// seed failure is diagnostic only: the list still renders (possibly empty)
	if err := service.EnsureSeeded(ctl.DB, studentID, student.StudentCourseName); err != nil {
		log.Printf("[ERROR] preset auto-seed (student=%s): %v", studentID, err)
	}

	var rows []model.SubjectModel
	if err := ctl.DB.
		Where("subject_deleted_at IS NULL").
		Where("subject_student_id IS NULL OR subject_student_id = ?", studentID).
		Order("subject_sort_order ASC, subject_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}

	return helper.JsonOK(c, "subjects", dto.FromModels(rows))
}

// POST /students/:id/subjects: a custom, student-owned subject
func (ctl *SubjectController) CreateForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var body dto.SubjectCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := body.ToModel(studentID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "subject.create",
		TargetType: "subject",
		TargetName: ent.SubjectName,
		Detail:     ent.SubjectCategory + " " + strconv.Itoa(ent.SubjectCredits) + "학점",
	})
	return helper.JsonCreated(c, "Subject created successfully", dto.FromModel(ent))
}

// DELETE /students/:id/subjects/:subjectId
// Only the owning student's context may delete; global subjects are immutable
// from the student view.
func (ctl *SubjectController) DeleteForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var row model.SubjectModel
	if err := ctl.DB.Where("subject_id = ? AND subject_deleted_at IS NULL", subjectID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	if !row.OwnedBy(studentID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Global subjects cannot be deleted from a student view")
	}

	if err := ctl.DB.Model(&row).Update("subject_deleted_at", gorm.Expr("now()")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "subject.delete",
		TargetType: "subject",
		TargetName: row.SubjectName,
	})
	return helper.JsonDeleted(c, "Subject deleted successfully", fiber.Map{"subject_id": subjectID})
}

// GET /subject-presets?course_type=
func (ctl *SubjectController) ListPresets(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SubjectPresetModel{})
	if courseType := c.Query("course_type"); courseType != "" {
		q = q.Where("subject_preset_course_type = ?", courseType)
	}
	var rows []model.SubjectPresetModel
	if err := q.Order("subject_preset_sort_order ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}
	return helper.JsonOK(c, "subject presets", rows)
}

// GET /self-study-presets?stage=
func (ctl *SubjectController) ListSelfStudyPresets(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SelfStudyPresetModel{})
	if stage := c.QueryInt("stage"); stage > 0 {
		q = q.Where("self_study_preset_stage = ?", stage)
	}
	var rows []model.SelfStudyPresetModel
	if err := q.Order("self_study_preset_stage ASC, self_study_preset_sort_order ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}
	return helper.JsonOK(c, "self-study presets", rows)
}
