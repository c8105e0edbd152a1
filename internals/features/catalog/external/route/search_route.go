package routes

import (
	"github.com/gofiber/fiber/v2"

	searchController "bokjisa_backend/internals/features/catalog/external/controller"
	"bokjisa_backend/internals/middlewares"
)

func ExternalSearchRoutes(router fiber.Router) {
	ctl := searchController.NewSearchController()

	router.Get("/external-subjects/search", middlewares.SearchRateLimiter(), ctl.Search)
}
