// file: internals/features/catalog/external/controller/search_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bokjisa_backend/internals/features/catalog/external/service"
	helper "bokjisa_backend/internals/helpers"
)

type SearchController struct {
	Searcher *service.Searcher
}

func NewSearchController() *SearchController {
	return &SearchController{Searcher: service.NewSearcher()}
}

// GET /external-subjects/search?q=
func (ctl *SearchController) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	results := ctl.Searcher.Search(c.Context(), query)
	return helper.JsonOK(c, "results", fiber.Map{
		"query":   query,
		"results": results,
	})
}
