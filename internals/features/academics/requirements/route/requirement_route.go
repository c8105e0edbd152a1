package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requirementController "bokjisa_backend/internals/features/academics/requirements/controller"
)

func RequirementAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := requirementController.NewRequirementController(db)

	router.Get("/students/:id/requirements", ctl.GetRequirements)
}
