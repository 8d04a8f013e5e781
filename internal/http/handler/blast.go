package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/model"
	"bridges/internal/service"
)

// SubmitBlastJob godoc
// @Summary Submit a BLAST job
// @Tags blast
// @Accept json
// @Produce json
// @Param request body model.BlastRequest true "search parameters"
// @Success 202 {object} service.BlastJob
// @Router /blast/jobs [post]
func SubmitBlastJob(svc service.BlastService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.BlastRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		job, err := svc.Submit(c.UserContext(), req)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(job)
	}
}

// GetBlastJob godoc
// @Summary BLAST job status
// @Tags blast
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} service.BlastJob
// @Router /blast/jobs/{id} [get]
func GetBlastJob(svc service.BlastService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		job, err := svc.Status(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(job)
	}
}

// ListBlastHits godoc
// @Summary Filtered hits of a finished BLAST job
// @Tags blast
// @Produce json
// @Param id path string true "job id"
// @Param min_identity query number false "minimum identity percentage"
// @Param max_evalue query number false "maximum expectation"
// @Param min_length query int false "minimum alignment length"
// @Param taxid query string false "comma separated taxids"
// @Param organism query string false "organism name"
// @Success 200 {object} service.BlastHitsResult
// @Router /blast/jobs/{id}/hits [get]
func ListBlastHits(svc service.BlastService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, ok := blastFilterFromQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid hit filter")
		}
		res, err := svc.Hits(c.UserContext(), c.Params("id"), filter)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(res)
	}
}

func blastFilterFromQuery(c *fiber.Ctx) (model.BlastFilter, bool) {
	var f model.BlastFilter
	var err error

	if v := c.Query("min_identity"); v != "" {
		if f.MinIdentity, err = strconv.ParseFloat(v, 64); err != nil {
			return f, false
		}
	}
	if v := c.Query("max_evalue"); v != "" {
		if f.MaxExpectation, err = strconv.ParseFloat(v, 64); err != nil {
			return f, false
		}
	}
	if v := c.Query("min_length"); v != "" {
		if f.MinAlignLength, err = strconv.Atoi(v); err != nil {
			return f, false
		}
	}
	if v := c.Query("taxid"); v != "" {
		for _, s := range strings.Split(v, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return f, false
			}
			f.TaxIDs = append(f.TaxIDs, id)
		}
	}
	f.Organism = c.Query("organism")
	return f, true
}
