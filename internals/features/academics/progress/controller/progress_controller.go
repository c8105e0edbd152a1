// file: internals/features/academics/progress/controller/progress_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	creditModel "bokjisa_backend/internals/features/academics/creditsources/model"
	planService "bokjisa_backend/internals/features/academics/plans/service"
	"bokjisa_backend/internals/features/academics/progress/service"
	requirements "bokjisa_backend/internals/features/academics/requirements/service"
	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

// ProgressController recomputes the credit projection on every request.
// Nothing here is persisted; the sources of truth are the plan sessions and
// the credit-source tables.
type ProgressController struct {
	DB       *gorm.DB
	Sessions *planService.Sessions
}

func NewProgressController(db *gorm.DB, sessions *planService.Sessions) *ProgressController {
	return &ProgressController{DB: db, Sessions: sessions}
}

// GET /students/:id/progress
func (ctl *ProgressController) GetProgress(c *fiber.Ctx) error {
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

	plan, err := ctl.Sessions.View(student.StudentID, student.StudentClassStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Plan load failed: "+err.Error())
	}

	var assigned []subjectModel.SubjectModel
	if ids := plan.AssignedSubjectIDs(); len(ids) > 0 {
		if err := ctl.DB.
			Where("subject_id IN ? AND subject_deleted_at IS NULL", ids).
			Find(&assigned).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Subject fetch failed: "+err.Error())
		}
	}

	var prior []creditModel.PriorSubjectModel
	if err := ctl.DB.Where("prior_subject_student_id = ?", student.StudentID).Find(&prior).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Prior subject fetch failed: "+err.Error())
	}
	var certs []creditModel.CertificateCreditModel
	if err := ctl.DB.Where("certificate_credit_student_id = ?", student.StudentID).Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Certificate fetch failed: "+err.Error())
	}
	var selfStudy []creditModel.SelfStudyCreditModel
	if err := ctl.DB.Where("self_study_credit_student_id = ?", student.StudentID).Find(&selfStudy).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Self-study fetch failed: "+err.Error())
	}

	profile := requirements.ResolveProfile(
		student.StudentEducationLevel,
		student.StudentCourseName,
		student.StudentDesiredDegree,
	)
	totals := service.AggregateCredits(assigned, prior, certs, selfStudy)
	practicum := service.CountPracticum(assigned, prior)
	progress := service.ProjectProgress(profile, totals, practicum, len(assigned)+len(prior))

	return helper.JsonOK(c, "progress", progress)
}
