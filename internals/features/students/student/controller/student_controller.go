// file: internals/features/students/student/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activity "bokjisa_backend/internals/features/activity/logs/service"
	"bokjisa_backend/internals/features/students/student/dto"
	"bokjisa_backend/internals/features/students/student/model"
	helper "bokjisa_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

var studentSortColumns = map[string]string{
	"created_at": "student_created_at",
	"updated_at": "student_updated_at",
	"name":       "student_name",
}

// GET /students?search=&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.Model(&model.StudentModel{}).Where("student_deleted_at IS NULL")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR student_phone ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed: "+err.Error())
	}

	var rows []model.StudentModel
	if err := q.
		Order(p.SafeOrderClause(studentSortColumns, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "List failed: "+err.Error())
	}

	return helper.JsonList(c, "students", dto.FromModels(rows), helper.BuildMeta(total, p))
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var row model.StudentModel
	if err := ctl.DB.Where("student_id = ? AND student_deleted_at IS NULL", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}
	return helper.JsonOK(c, "student", dto.FromModel(row))
}

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.StudentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "student.create",
		TargetType: "student",
		TargetName: ent.StudentName,
	})
	return helper.JsonCreated(c, "Student created successfully", dto.FromModel(ent))
}

// PATCH /students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var body dto.StudentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.StudentModel
	if err := ctl.DB.Where("student_id = ? AND student_deleted_at IS NULL", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	body.ApplyTo(&row)
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "student.update",
		TargetType: "student",
		TargetName: row.StudentName,
	})
	return helper.JsonUpdated(c, "Student updated successfully", dto.FromModel(row))
}

// DELETE /students/:id (soft delete)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var row model.StudentModel
	if err := ctl.DB.Where("student_id = ? AND student_deleted_at IS NULL", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Fetch failed: "+err.Error())
	}

	if err := ctl.DB.Model(&row).Update("student_deleted_at", gorm.Expr("now()")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	activity.LogActivity(ctl.DB, activity.Entry{
		UserName:   helper.GetUserNameFromToken(c),
		Action:     "student.delete",
		TargetType: "student",
		TargetName: row.StudentName,
	})
	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": id})
}
