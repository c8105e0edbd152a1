// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	creditSourceRoutes "bokjisa_backend/internals/features/academics/creditsources/route"
	planRoutes "bokjisa_backend/internals/features/academics/plans/route"
	planService "bokjisa_backend/internals/features/academics/plans/service"
	progressRoutes "bokjisa_backend/internals/features/academics/progress/route"
	requirementRoutes "bokjisa_backend/internals/features/academics/requirements/route"
	subjectRoutes "bokjisa_backend/internals/features/academics/subjects/route"
	activityRoutes "bokjisa_backend/internals/features/activity/logs/route"
	searchRoutes "bokjisa_backend/internals/features/catalog/external/route"
	documentRoutes "bokjisa_backend/internals/features/documents/route"
	studentRoutes "bokjisa_backend/internals/features/students/student/route"
	authRoutes "bokjisa_backend/internals/features/users/auth/route"
)

var planSessions *planService.Sessions

// AdminRoutes: the whole back-office surface, mounted behind AuthJWT.
// The plan editing sessions are shared between the plans and progress
// features so progress always reflects unsaved edits.
func AdminRoutes(router fiber.Router, db *gorm.DB) {
	planSessions = planService.NewSessions(planService.NewStore(db))

	authRoutes.AuthProtectedRoutes(router, db)
	studentRoutes.StudentAdminRoutes(router, db)
	subjectRoutes.SubjectAdminRoutes(router, db)
	creditSourceRoutes.CreditSourceAdminRoutes(router, db)
	planRoutes.PlanAdminRoutes(router, db, planSessions)
	progressRoutes.ProgressAdminRoutes(router, db, planSessions)
	requirementRoutes.RequirementAdminRoutes(router, db)
	documentRoutes.DocumentAdminRoutes(router, db)
	activityRoutes.ActivityLogAdminRoutes(router, db)
	searchRoutes.ExternalSearchRoutes(router)
}

// FlushPlanSessions forces every pending plan autosave through (shutdown).
func FlushPlanSessions() {
	if planSessions != nil {
		planSessions.FlushAll()
	}
}
