// file: internals/features/academics/requirements/controller/requirement_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bokjisa_backend/internals/features/academics/requirements/service"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

type RequirementController struct {
	DB *gorm.DB
}

func NewRequirementController(db *gorm.DB) *RequirementController {
	return &RequirementController{DB: db}
}

// GET /students/:id/requirements
// The profile is pure derivation from the student record; editing the record
// and re-fetching is how the admin sees a different requirement set.
func (ctl *RequirementController) GetRequirements(c *fiber.Ctx) error {
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

	profile := service.ResolveProfile(
		student.StudentEducationLevel,
		student.StudentCourseName,
		student.StudentDesiredDegree,
	)
	return helper.JsonOK(c, "requirements", profile)
}
