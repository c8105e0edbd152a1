// file: internals/features/academics/creditsources/controller/credit_source_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activity "bokjisa_backend/internals/features/activity/logs/service"
	"bokjisa_backend/internals/features/academics/creditsources/dto"
	"bokjisa_backend/internals/features/academics/creditsources/model"
	requirements "bokjisa_backend/internals/features/academics/requirements/service"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

// CreditSourceController covers the three immediate-persistence credit
// sources: prior-institution subjects, certificate credits, 독학사 credits.
type CreditSourceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCreditSourceController(db *gorm.DB) *CreditSourceController {
	return &CreditSourceController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *CreditSourceController) loadStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	var student studentModel.StudentModel
	if err := ctl.DB.Where("student_id = ? AND student_deleted_at IS NULL", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	return &student, nil
}

/* ===============================
   Prior-institution subjects
=================================*/

// GET /students/:id/prior-subjects
func (ctl *CreditSourceController) ListPriorSubjects(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	var rows []model.PriorSubjectModel
	if err := ctl.DB.
		Where("prior_subject_student_id = ?", student.StudentID).
		Order("prior_subject_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}
	return helper.JsonOK(c, "prior subjects", rows)
}

// POST /students/:id/prior-subjects
func (ctl *CreditSourceController) CreatePriorSubject(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.PriorSubjectCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := body.ToModel(student.StudentID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "prior_subject.create",
		TargetType: "prior_subject",
		TargetName: ent.PriorSubjectName,
		Detail:     ent.PriorSubjectCategory + " " + strconv.Itoa(ent.PriorSubjectCredits) + "학점",
	})
	return helper.JsonCreated(c, "Prior subject created successfully", ent)
}

// DELETE /students/:id/prior-subjects/:sourceId
func (ctl *CreditSourceController) DeletePriorSubject(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	sourceID, err := uuid.Parse(c.Params("sourceId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.PriorSubjectModel
	if err := ctl.DB.
		Where("prior_subject_id = ? AND prior_subject_student_id = ?", sourceID, student.StudentID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Prior subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "prior_subject.delete",
		TargetType: "prior_subject",
		TargetName: row.PriorSubjectName,
	})
	return helper.JsonDeleted(c, "Prior subject deleted successfully", fiber.Map{"prior_subject_id": sourceID})
}

/* ===============================
   Certificate credits
=================================*/

// GET /students/:id/certificate-credits
func (ctl *CreditSourceController) ListCertificateCredits(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	var rows []model.CertificateCreditModel
	if err := ctl.DB.
		Where("certificate_credit_student_id = ?", student.StudentID).
		Order("certificate_credit_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}
	return helper.JsonOK(c, "certificate credits", rows)
}

// POST /students/:id/certificate-credits
func (ctl *CreditSourceController) CreateCertificateCredit(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.CertificateCreditCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := body.ToModel(student.StudentID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "certificate_credit.create",
		TargetType: "certificate_credit",
		TargetName: ent.CertificateCreditName,
		Detail:     strconv.Itoa(ent.CertificateCreditCredits) + "학점",
	})
	return helper.JsonCreated(c, "Certificate credit created successfully", ent)
}

// DELETE /students/:id/certificate-credits/:sourceId
func (ctl *CreditSourceController) DeleteCertificateCredit(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	sourceID, err := uuid.Parse(c.Params("sourceId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CertificateCreditModel
	if err := ctl.DB.
		Where("certificate_credit_id = ? AND certificate_credit_student_id = ?", sourceID, student.StudentID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certificate credit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "certificate_credit.delete",
		TargetType: "certificate_credit",
		TargetName: row.CertificateCreditName,
	})
	return helper.JsonDeleted(c, "Certificate credit deleted successfully", fiber.Map{"certificate_credit_id": sourceID})
}

/* ===============================
   Self-study (독학사) credits
=================================*/

// GET /students/:id/self-study-credits
func (ctl *CreditSourceController) ListSelfStudyCredits(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	var rows []model.SelfStudyCreditModel
	if err := ctl.DB.
		Where("self_study_credit_student_id = ?", student.StudentID).
		Order("self_study_credit_stage ASC, self_study_credit_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}
	return helper.JsonOK(c, "self-study credits", rows)
}

// POST /students/:id/self-study-credits
// The credit type is decided here, once, and persisted with the row.
func (ctl *CreditSourceController) CreateSelfStudyCredit(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.SelfStudyCreditCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	creditType := requirements.SelfStudyCreditType(
		body.SelfStudyCreditStage,
		body.SelfStudyPresetCategory,
		student.StudentMajor,
	)

	ent := body.ToModel(student.StudentID, creditType)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "self_study_credit.create",
		TargetType: "self_study_credit",
		TargetName: ent.SelfStudyCreditSubjectName,
		Detail:     strconv.Itoa(ent.SelfStudyCreditStage) + "단계 " + ent.SelfStudyCreditType + " " + strconv.Itoa(ent.SelfStudyCreditCredits) + "학점",
	})
	return helper.JsonCreated(c, "Self-study credit created successfully", ent)
}

// DELETE /students/:id/self-study-credits/:sourceId
func (ctl *CreditSourceController) DeleteSelfStudyCredit(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	sourceID, err := uuid.Parse(c.Params("sourceId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.SelfStudyCreditModel
	if err := ctl.DB.
		Where("self_study_credit_id = ? AND self_study_credit_student_id = ?", sourceID, student.StudentID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Self-study credit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "self_study_credit.delete",
		TargetType: "self_study_credit",
		TargetName: row.SelfStudyCreditSubjectName,
	})
	return helper.JsonDeleted(c, "Self-study credit deleted successfully", fiber.Map{"self_study_credit_id": sourceID})
}
