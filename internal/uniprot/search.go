package uniprot

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"bridges/internal/bridge"
	"bridges/internal/model"
)

const (
	defaultSearchLimit = 25
	maxSearchLimit     = 500
	searchFields       = "accession,id,reviewed,organism_id,length,sequence"
)

// searchRow is one line of the TSV answer for searchFields.
type searchRow struct {
	Accession  string `csv:"Entry"`
	EntryName  string `csv:"Entry Name"`
	Reviewed   string `csv:"Reviewed"`
	OrganismID string `csv:"Organism (ID)"`
	Length     int    `csv:"Length"`
	Sequence   string `csv:"Sequence"`
}

// Search runs a UniProtKB query such as "gene:BRCA2 AND organism_id:9606".
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.UniprotEntry, error) {
	const op = "search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("query is required: %w", bridge.ErrInvalidInput))
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("format", "tsv")
	q.Set("fields", searchFields)
	q.Set("size", strconv.Itoa(limit))

	resp, err := c.http.Get(ctx, "uniprotkb/search", q, "text/plain")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	entries, err := parseSearchTSV(resp.Body)
	if err != nil {
		return nil, bridge.New(Name, op, bridge.KindParse, err)
	}
	return entries, nil
}

func parseSearchTSV(body []byte) ([]model.UniprotEntry, error) {
	cr := csv.NewReader(bytes.NewReader(body))
	cr.Comma = '\t'
	cr.LazyQuotes = true

	var rows []searchRow
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []model.UniprotEntry{}, nil
		}
		return nil, fmt.Errorf("decode uniprot tsv: %w", err)
	}

	out := make([]model.UniprotEntry, 0, len(rows))
	for _, r := range rows {
		taxID, _ := strconv.Atoi(strings.TrimSpace(r.OrganismID))
		out = append(out, model.UniprotEntry{
			Accession:      r.Accession,
			EntryName:      r.EntryName,
			Reviewed:       strings.EqualFold(r.Reviewed, "reviewed"),
			TaxID:          taxID,
			Sequence:       r.Sequence,
			SequenceLength: r.Length,
		})
	}
	return out, nil
}
