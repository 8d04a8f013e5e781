package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetTaxon godoc
// @Summary Taxonomy entry
// @Tags taxonomy
// @Produce json
// @Param taxid path int true "NCBI taxid or IntAct pseudo-taxid (-1..-5)"
// @Success 200 {object} model.TaxonomyTerm
// @Router /taxonomy/{taxid} [get]
func GetTaxon(l TaxonomyLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("taxid"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TAXID", "invalid taxid")
		}
		t, err := l.Term(c.UserContext(), id)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(t)
	}
}

// TaxonChildren godoc
// @Summary Direct children of a taxon
// @Tags taxonomy
// @Produce json
// @Param taxid path int true "NCBI taxid"
// @Success 200 {array} model.TaxonomyTerm
// @Router /taxonomy/{taxid}/children [get]
func TaxonChildren(l TaxonomyLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("taxid"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TAXID", "invalid taxid")
		}
		children, err := l.Children(c.UserContext(), id)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(children)
	}
}
