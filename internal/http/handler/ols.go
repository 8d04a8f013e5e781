package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/model"
	"bridges/internal/ols"
)

// TermSearchResult is one page of OLS search hits.
type TermSearchResult struct {
	Items    []model.OntologyTerm `json:"data"`
	NumFound int                  `json:"num_found"`
}

// SearchOLS godoc
// @Summary Search ontology terms in OLS
// @Tags ols
// @Produce json
// @Param q query string true "query"
// @Param ontology query string false "restrict to one ontology"
// @Param rows query int false "maximum results"
// @Param exact query bool false "exact match only"
// @Success 200 {object} TermSearchResult
// @Router /ols/search [get]
func SearchOLS(l TermLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "q is required")
		}
		rows, ok := queryInt(c, "rows", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ROWS", "invalid rows")
		}
		exact, _ := strconv.ParseBool(c.Query("exact"))

		terms, n, err := l.Search(c.UserContext(), q, ols.SearchOptions{
			Ontology: c.Query("ontology"),
			Rows:     rows,
			Exact:    exact,
		})
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(TermSearchResult{Items: terms, NumFound: n})
	}
}

// GetOLSTerm godoc
// @Summary Ontology term from OLS
// @Tags ols
// @Produce json
// @Param ontology path string true "ontology, e.g. mi"
// @Param id path string true "OBO id, e.g. MI:0018"
// @Success 200 {object} model.OntologyTerm
// @Router /ols/{ontology}/terms/{id} [get]
func GetOLSTerm(l TermLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := l.Term(c.UserContext(), c.Params("ontology"), c.Params("id"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(t)
	}
}

// OLSChildren godoc
// @Summary Direct children of an OLS term
// @Tags ols
// @Produce json
// @Param ontology path string true "ontology"
// @Param id path string true "OBO id"
// @Success 200 {array} model.OntologyTerm
// @Router /ols/{ontology}/terms/{id}/children [get]
func OLSChildren(l TermLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		terms, err := l.Children(c.UserContext(), c.Params("ontology"), c.Params("id"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(terms)
	}
}

// OLSParents godoc
// @Summary Direct parents of an OLS term
// @Tags ols
// @Produce json
// @Param ontology path string true "ontology"
// @Param id path string true "OBO id"
// @Success 200 {array} model.OntologyTerm
// @Router /ols/{ontology}/terms/{id}/parents [get]
func OLSParents(l TermLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		terms, err := l.Parents(c.UserContext(), c.Params("ontology"), c.Params("id"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(terms)
	}
}
