package picr

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"bridges/internal/bridge"
	"bridges/internal/model"
)

const fanOut = 4

// SwissProtIDs returns the active Swiss-Prot accessions, isoforms included,
// found among the identical cross-references of entries.
func SwissProtIDs(entries []model.UPEntry) []string {
	return accessionsIn(entries, SwissProt, SwissProtVarSplic)
}

// TremblIDs returns the active TrEMBL accessions, isoforms included.
func TremblIDs(entries []model.UPEntry) []string {
	return accessionsIn(entries, TrEMBL, TrEMBLVarSplic)
}

// UPIs returns the distinct UniParc identifiers of entries.
func UPIs(entries []model.UPEntry) []string {
	seen := make(map[string]bool, len(entries))
	var out []string
	for _, e := range entries {
		if e.UPI == "" || seen[e.UPI] {
			continue
		}
		seen[e.UPI] = true
		out = append(out, e.UPI)
	}
	return out
}

func accessionsIn(entries []model.UPEntry, databases ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		for _, x := range e.Identical {
			if !x.Active || seen[x.Accession] || !contains(databases, x.Database) {
				continue
			}
			seen[x.Accession] = true
			out = append(out, x.Accession)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// MapAccessions maps several accessions concurrently. Accessions PICR does
// not know map to an empty slice; any other failure cancels the rest.
func (c *Client) MapAccessions(ctx context.Context, accessions []string, opts Options) (map[string][]model.UPEntry, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOut)

	var mu sync.Mutex
	out := make(map[string][]model.UPEntry, len(accessions))
	for _, acc := range accessions {
		g.Go(func() error {
			entries, err := c.MapAccession(gctx, acc, opts)
			if err != nil && !bridge.IsNotFound(err) {
				return err
			}
			if entries == nil {
				entries = []model.UPEntry{}
			}
			mu.Lock()
			out[acc] = entries
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
