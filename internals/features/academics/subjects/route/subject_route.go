package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "bokjisa_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	router.Get("/students/:id/subjects", ctl.ListForStudent)
	router.Post("/students/:id/subjects", ctl.CreateForStudent)
	router.Delete("/students/:id/subjects/:subjectId", ctl.DeleteForStudent)

	router.Get("/subject-presets", ctl.ListPresets)
	router.Get("/self-study-presets", ctl.ListSelfStudyPresets)
}
