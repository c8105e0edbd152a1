package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planService "bokjisa_backend/internals/features/academics/plans/service"
	progressController "bokjisa_backend/internals/features/academics/progress/controller"
)

func ProgressAdminRoutes(router fiber.Router, db *gorm.DB, sessions *planService.Sessions) {
	ctl := progressController.NewProgressController(db, sessions)

	router.Get("/students/:id/progress", ctl.GetProgress)
}
