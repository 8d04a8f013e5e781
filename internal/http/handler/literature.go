package handler

import (
	"github.com/gofiber/fiber/v2"

	"bridges/internal/model"
)

// PublicationSearchResult is one page of literature search hits.
type PublicationSearchResult struct {
	Items    []model.Publication `json:"data"`
	HitCount int                 `json:"hit_count"`
}

// GetPublication godoc
// @Summary Publication by PubMed id
// @Tags literature
// @Produce json
// @Param pmid path string true "PubMed id"
// @Success 200 {object} model.Publication
// @Router /publications/{pmid} [get]
func GetPublication(f PublicationFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pub, err := f.Publication(c.UserContext(), c.Params("pmid"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(pub)
	}
}

// SearchPublications godoc
// @Summary Literature search
// @Tags literature
// @Produce json
// @Param query query string true "Europe PMC query"
// @Param page_size query int false "results per page"
// @Success 200 {object} PublicationSearchResult
// @Router /publications [get]
func SearchPublications(f PublicationFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("query")
		if query == "" {
			return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "query is required")
		}
		pageSize, ok := queryInt(c, "page_size", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE_SIZE", "invalid page_size")
		}
		pubs, hits, err := f.Search(c.UserContext(), query, pageSize)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(PublicationSearchResult{Items: pubs, HitCount: hits})
	}
}
