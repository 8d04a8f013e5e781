package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/model"
	"bridges/internal/picr"
)

// CrossReferenceResult groups the UniParc entries an accession maps to.
type CrossReferenceResult struct {
	Accession  string          `json:"accession"`
	Entries    []model.UPEntry `json:"entries"`
	SwissProt  []string        `json:"swissprot"`
	TrEMBL     []string        `json:"trembl"`
	UniParcIDs []string        `json:"upis"`
}

// MapCrossReferences godoc
// @Summary Map an accession through PICR
// @Tags picr
// @Produce json
// @Param acc path string true "accession, optionally with .version"
// @Param database query string false "comma separated PICR database names"
// @Param taxid query int false "restrict to taxid"
// @Param only_active query bool false "only active cross references"
// @Success 200 {object} CrossReferenceResult
// @Router /picr/{acc} [get]
func MapCrossReferences(m CrossReferenceMapper) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taxID, ok := queryInt(c, "taxid", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TAXID", "invalid taxid")
		}
		opts := picr.Options{TaxID: taxID}
		if v := c.Query("only_active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ONLY_ACTIVE", "invalid only_active")
			}
			opts.OnlyActive = b
		}
		if v := c.Query("database"); v != "" {
			for _, db := range strings.Split(v, ",") {
				if db = strings.TrimSpace(db); db != "" {
					opts.Databases = append(opts.Databases, db)
				}
			}
		}

		acc := c.Params("acc")
		entries, err := m.MapAccession(c.UserContext(), acc, opts)
		if err != nil {
			return writeFailure(c, err)
		}
		return c.JSON(CrossReferenceResult{
			Accession:  acc,
			Entries:    entries,
			SwissProt:  picr.SwissProtIDs(entries),
			TrEMBL:     picr.TremblIDs(entries),
			UniParcIDs: picr.UPIs(entries),
		})
	}
}
