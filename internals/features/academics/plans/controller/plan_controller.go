// file: internals/features/academics/plans/controller/plan_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activity "bokjisa_backend/internals/features/activity/logs/service"
	"bokjisa_backend/internals/features/academics/plans/dto"
	"bokjisa_backend/internals/features/academics/plans/service"
	studentModel "bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

type PlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sessions  *service.Sessions
}

// NewPlanController wires the shared editing sessions in; the progress
// feature reads the same live state, so both controllers receive one
// Sessions instance from route setup.
func NewPlanController(db *gorm.DB, sessions *service.Sessions) *PlanController {
	return &PlanController{
		DB:        db,
		Validator: validator.New(),
		Sessions:  sessions,
	}
}

func (ctl *PlanController) loadStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
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

// planError maps domain errors onto user-facing rejections. Capacity and
// validation rejections are 409/400 with the cap details in the message,
// never a silent truncation.
func planError(c *fiber.Ctx, err error) error {
	var capErr *service.CapacityError
	switch {
	case errors.As(err, &capErr):
		return helper.JsonError(c, fiber.StatusConflict, capErr.Error())
	case errors.Is(err, service.ErrSubjectAlreadyInPlan):
		return helper.JsonError(c, fiber.StatusConflict, "이미 배정된 과목입니다")
	case errors.Is(err, service.ErrLastSemester):
		return helper.JsonError(c, fiber.StatusConflict, "마지막 학기는 삭제할 수 없습니다")
	case errors.Is(err, service.ErrSemesterNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
	case errors.Is(err, service.ErrSubjectNotInGroup):
		return helper.JsonError(c, fiber.StatusNotFound, "해당 학기 그룹에 배정된 과목이 아닙니다")
	case errors.Is(err, service.ErrInvalidTerm), errors.Is(err, service.ErrInvalidDateRange):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// GET /students/:id/plan
func (ctl *PlanController) GetPlan(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	plan, err := ctl.Sessions.View(student.StudentID, student.StudentClassStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Plan load failed: "+err.Error())
	}
	return helper.JsonOK(c, "plan", dto.FromPlan(plan))
}

// PUT /students/:id/plan: the client's debounced whole-plan autosave
func (ctl *PlanController) ReplacePlan(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.ReplacePlanDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Sessions.Replace(student.StudentID, student.StudentClassStart, body.ToPlan()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Plan save failed: "+err.Error())
	}
	return helper.JsonUpdated(c, "Plan scheduled for save", nil)
}

// POST /students/:id/plan/semesters
func (ctl *PlanController) AddSemester(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.AddSemesterDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var created service.Semester
	plan, err := ctl.Sessions.Mutate(student.StudentID, student.StudentClassStart, func(p *service.Plan) error {
		var opErr error
		created, opErr = p.AddSemester(body.Year, body.Term)
		return opErr
	})
	if err != nil {
		return planError(c, err)
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "plan.semester.add",
		TargetType: "semester",
		TargetName: created.Label,
		Detail:     student.StudentName,
	})
	return helper.JsonCreated(c, "Semester added", fiber.Map{
		"semester": created,
		"plan":     dto.FromPlan(plan),
	})
}

// POST /students/:id/plan/semesters/:semesterId/cohorts
func (ctl *PlanController) AddCohort(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	semesterID, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var created service.Semester
	plan, err := ctl.Sessions.Mutate(student.StudentID, student.StudentClassStart, func(p *service.Plan) error {
		var opErr error
		created, opErr = p.AddCohort(semesterID)
		return opErr
	})
	if err != nil {
		return planError(c, err)
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "plan.cohort.add",
		TargetType: "semester",
		TargetName: created.Label,
		Detail:     student.StudentName,
	})
	return helper.JsonCreated(c, "Cohort added", fiber.Map{
		"semester": created,
		"plan":     dto.FromPlan(plan),
	})
}

// DELETE /students/:id/plan/semesters/:semesterId
func (ctl *PlanController) DeleteSemester(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	semesterID, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var nextSelected uuid.UUID
	plan, err := ctl.Sessions.Mutate(student.StudentID, student.StudentClassStart, func(p *service.Plan) error {
		var opErr error
		nextSelected, opErr = p.DeleteSemester(semesterID)
		return opErr
	})
	if err != nil {
		return planError(c, err)
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "plan.semester.delete",
		TargetType: "semester",
		Detail:     student.StudentName,
	})
	return helper.JsonDeleted(c, "Semester deleted", fiber.Map{
		"next_selected_id": nextSelected,
		"plan":             dto.FromPlan(plan),
	})
}

// POST /students/:id/plan/assignments
func (ctl *PlanController) AssignSubject(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.AssignSubjectDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	plan, err := ctl.Sessions.Mutate(student.StudentID, student.StudentClassStart, func(p *service.Plan) error {
		return p.AssignSubject(body.SubjectID, body.SemesterID)
	})
	if err != nil {
		return planError(c, err)
	}
	return helper.JsonUpdated(c, "Subject assigned", dto.FromPlan(plan))
}

// DELETE /students/:id/plan/assignments
func (ctl *PlanController) UnassignSubject(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}

	var body dto.UnassignSubjectDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	plan, err := ctl.Sessions.Mutate(student.StudentID, student.StudentClassStart, func(p *service.Plan) error {
		return p.UnassignSubject(body.SubjectID, body.Year, body.Term)
	})
	if err != nil {
		return planError(c, err)
	}
	return helper.JsonUpdated(c, "Subject unassigned", dto.FromPlan(plan))
}

// PATCH /students/:id/plan/semesters/:semesterId/dates
func (ctl *PlanController) SetDates(c *fiber.Ctx) error {
	student, err := ctl.loadStudent(c)
	if err != nil {
		return err
	}
	semesterID, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var body dto.SetDatesDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	plan, err := ctl.Sessions.Mutate(student.StudentID, student.StudentClassStart, func(p *service.Plan) error {
		return p.SetDates(semesterID, body.Start, body.End)
	})
	if err != nil {
		return planError(c, err)
	}
	return helper.JsonUpdated(c, "Semester dates updated", dto.FromPlan(plan))
}
