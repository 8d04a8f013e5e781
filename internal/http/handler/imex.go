package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/model"
)

type imexStatusRequest struct {
	Status  model.ImexStatus `json:"status"`
	Message string           `json:"message"`
}

// GetImexPublication godoc
// @Summary IMEx Central record of a publication
// @Tags imex
// @Produce json
// @Param pmid path string true "PubMed id"
// @Success 200 {object} model.ImexPublication
// @Router /imex/publications/{pmid} [get]
func GetImexPublication(reg ImexRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pub, err := reg.Publication(c.UserContext(), c.Params("pmid"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(pub)
	}
}

// CreateImexPublication godoc
// @Summary Register a publication in IMEx Central
// @Tags imex
// @Produce json
// @Param pmid path string true "PubMed id"
// @Success 201 {object} model.ImexPublication
// @Router /imex/publications/{pmid} [post]
func CreateImexPublication(reg ImexRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pub, err := reg.Create(c.UserContext(), c.Params("pmid"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(pub)
	}
}

// UpdateImexStatus godoc
// @Summary Change the curation status of a publication
// @Tags imex
// @Accept json
// @Produce json
// @Param pmid path string true "PubMed id"
// @Param request body imexStatusRequest true "new status"
// @Success 200 {object} model.ImexPublication
// @Router /imex/publications/{pmid}/status [put]
func UpdateImexStatus(reg ImexRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req imexStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		status := model.ImexStatus(strings.ToUpper(string(req.Status)))
		if !status.Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "invalid imex status")
		}
		pub, err := reg.UpdateStatus(c.UserContext(), c.Params("pmid"), status, req.Message)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(pub)
	}
}

// AssignImexAccession godoc
// @Summary Assign an IMEx accession
// @Tags imex
// @Produce json
// @Param pmid path string true "PubMed id"
// @Success 200 {object} model.ImexPublication
// @Router /imex/publications/{pmid}/accession [post]
func AssignImexAccession(reg ImexRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pub, err := reg.AssignImexAccession(c.UserContext(), c.Params("pmid"), true)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(pub)
	}
}
