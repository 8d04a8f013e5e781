package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/service"
)

// ImportOntology godoc
// @Summary Replace a local ontology with an OBO document
// @Description The OBO file is sent as the request body (gzip allowed with ?name=x.obo.gz),
// @Description or referenced by its object storage key with ?object=.
// @Tags ontologies
// @Accept plain
// @Produce json
// @Param ontology path string true "ontology name"
// @Param object query string false "object storage key"
// @Param name query string false "file name of the uploaded body"
// @Success 201 {object} service.ImportResult
// @Router /ontologies/{ontology}/import [post]
func ImportOntology(svc service.OntologyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ontology := c.Params("ontology")

		var (
			res *service.ImportResult
			err error
		)
		if key := c.Query("object"); key != "" {
			res, err = svc.ImportObject(c.UserContext(), ontology, key)
		} else {
			body := c.Body()
			if len(body) == 0 {
				return writeError(c, fiber.StatusBadRequest, "BODY_REQUIRED", "obo body or object key is required")
			}
			res, err = svc.Import(c.UserContext(), ontology, bytes.NewReader(body), c.Query("name", ontology+".obo"))
		}
		if err != nil {
			return writeFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListOntologyTerms godoc
// @Summary Search a local ontology by name or synonym
// @Tags ontologies
// @Produce json
// @Param ontology path string true "ontology name"
// @Param q query string false "text to match"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} service.TermListResult
// @Router /ontologies/{ontology}/terms [get]
func ListOntologyTerms(svc service.OntologyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := queryInt(c, "limit", 25)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, ok := queryInt(c, "offset", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		res, err := svc.Search(c.UserContext(), c.Params("ontology"), c.Query("q"), limit, offset)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(res)
	}
}

// GetOntologyTerm godoc
// @Summary Local ontology term by id or alternative id
// @Tags ontologies
// @Produce json
// @Param ontology path string true "ontology name"
// @Param id path string true "term id"
// @Success 200 {object} model.OntologyTerm
// @Router /ontologies/{ontology}/terms/{id} [get]
func GetOntologyTerm(svc service.OntologyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.Term(c.UserContext(), c.Params("ontology"), c.Params("id"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(t)
	}
}

// OntologyTermChildren godoc
// @Summary Direct children of a local ontology term
// @Tags ontologies
// @Produce json
// @Param ontology path string true "ontology name"
// @Param id path string true "term id"
// @Success 200 {array} model.OntologyTerm
// @Router /ontologies/{ontology}/terms/{id}/children [get]
func OntologyTermChildren(svc service.OntologyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		terms, err := svc.Children(c.UserContext(), c.Params("ontology"), c.Params("id"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(terms)
	}
}

// DeleteOntology godoc
// @Summary Remove a local ontology
// @Tags ontologies
// @Param ontology path string true "ontology name"
// @Success 204
// @Router /ontologies/{ontology} [delete]
func DeleteOntology(svc service.OntologyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("ontology")); err != nil {
			return writeFailure(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
