package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "bokjisa_backend/internals/features/students/student/controller"
)

func StudentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)
	students := router.Group("/students")

	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Post("/", ctl.Create)
	students.Patch("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
