package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "bokjisa_backend/internals/features/academics/plans/controller"
	planService "bokjisa_backend/internals/features/academics/plans/service"
)

func PlanAdminRoutes(router fiber.Router, db *gorm.DB, sessions *planService.Sessions) {
	ctl := planController.NewPlanController(db, sessions)

	router.Get("/students/:id/plan", ctl.GetPlan)
	router.Put("/students/:id/plan", ctl.ReplacePlan)
	router.Post("/students/:id/plan/semesters", ctl.AddSemester)
	router.Post("/students/:id/plan/semesters/:semesterId/cohorts", ctl.AddCohort)
	router.Delete("/students/:id/plan/semesters/:semesterId", ctl.DeleteSemester)
	router.Patch("/students/:id/plan/semesters/:semesterId/dates", ctl.SetDates)
	router.Post("/students/:id/plan/assignments", ctl.AssignSubject)
	router.Delete("/students/:id/plan/assignments", ctl.UnassignSubject)
}
