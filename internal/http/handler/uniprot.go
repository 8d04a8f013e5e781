package handler

import (
	"github.com/gofiber/fiber/v2"

	"bridges/internal/model"
)

// GetUniprotEntry godoc
// @Summary UniProtKB entry
// @Tags uniprot
// @Produce json
// @Param acc path string true "UniProtKB accession"
// @Success 200 {object} model.UniprotEntry
// @Router /uniprot/{acc} [get]
func GetUniprotEntry(l UniprotLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := l.Entry(c.UserContext(), c.Params("acc"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(e)
	}
}

// SearchUniprot godoc
// @Summary Search UniProtKB
// @Tags uniprot
// @Produce json
// @Param query query string true "UniProt query syntax"
// @Param limit query int false "maximum results"
// @Success 200 {array} model.UniprotEntry
// @Router /uniprot [get]
func SearchUniprot(l UniprotLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("query")
		if query == "" {
			return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "query is required")
		}
		limit, ok := queryInt(c, "limit", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		entries, err := l.Search(c.UserContext(), query, limit)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(entries)
	}
}

// ListSequenceVersions godoc
// @Summary UniSave entry versions, newest first
// @Tags unisave
// @Produce json
// @Param acc path string true "UniProtKB accession"
// @Success 200 {array} model.SequenceVersion
// @Router /unisave/{acc}/versions [get]
func ListSequenceVersions(l UniprotLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		versions, err := l.Versions(c.UserContext(), c.Params("acc"))
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(versions)
	}
}

// GetSequence godoc
// @Summary Protein sequence at a sequence version, latest when omitted
// @Tags unisave
// @Produce json
// @Param acc path string true "UniProtKB accession"
// @Param version query int false "sequence version"
// @Success 200 {object} model.SequenceVersion
// @Router /unisave/{acc}/sequence [get]
func GetSequence(l UniprotLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		version, ok := queryInt(c, "version", 0)
		if !ok || version < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_VERSION", "invalid version")
		}

		var (
			sv  *model.SequenceVersion
			err error
		)
		if version == 0 {
			sv, err = l.LatestSequence(c.UserContext(), c.Params("acc"))
		} else {
			sv, err = l.SequenceVersion(c.UserContext(), c.Params("acc"), version)
		}
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(sv)
	}
}
