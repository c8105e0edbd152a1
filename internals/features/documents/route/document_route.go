package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentController "bokjisa_backend/internals/features/documents/controller"
)

func DocumentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := documentController.NewDocumentController(db)

	router.Get("/students/:id/documents", ctl.List)
	router.Post("/students/:id/documents", ctl.Upload)
	router.Get("/students/:id/documents/:documentId/url", ctl.SignedURL)
	router.Delete("/students/:id/documents/:documentId", ctl.Delete)
}
