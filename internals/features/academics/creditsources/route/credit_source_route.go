package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	creditController "bokjisa_backend/internals/features/academics/creditsources/controller"
)

func CreditSourceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := creditController.NewCreditSourceController(db)

	router.Get("/students/:id/prior-subjects", ctl.ListPriorSubjects)
	router.Post("/students/:id/prior-subjects", ctl.CreatePriorSubject)
	router.Delete("/students/:id/prior-subjects/:sourceId", ctl.DeletePriorSubject)

	router.Get("/students/:id/certificate-credits", ctl.ListCertificateCredits)
	router.Post("/students/:id/certificate-credits", ctl.CreateCertificateCredit)
	router.Delete("/students/:id/certificate-credits/:sourceId", ctl.DeleteCertificateCredit)

	router.Get("/students/:id/self-study-credits", ctl.ListSelfStudyCredits)
	router.Post("/students/:id/self-study-credits", ctl.CreateSelfStudyCredit)
	router.Delete("/students/:id/self-study-credits/:sourceId", ctl.DeleteSelfStudyCredit)
}
