package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "bokjisa_backend/internals/features/activity/logs/controller"
)

func ActivityLogAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := activityController.NewActivityLogController(db)

	router.Get("/activity-logs", ctl.List)
}
