// Package uniprot reads UniProtKB entries and their archived versions from
// UniSave.
package uniprot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"bridges/internal/bridge"
	"bridges/internal/cache"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "uniprot"

// Client queries the UniProt REST API. It is safe for concurrent use.
type Client struct {
	http  *httpclient.Client
	cache cache.Cache
	ttl   time.Duration
}

// New returns a Client rooted at the UniProt REST base URL. c may be nil to
// disable caching.
func New(hc *httpclient.Client, c cache.Cache, ttl time.Duration) *Client {
	return &Client{http: hc, cache: c, ttl: ttl}
}

type entry struct {
	EntryType           string   `json:"entryType"`
	PrimaryAccession    string   `json:"primaryAccession"`
	SecondaryAccessions []string `json:"secondaryAccessions"`
	UniProtKBID         string   `json:"uniProtkbId"`
	EntryAudit          struct {
		EntryVersion    int `json:"entryVersion"`
		SequenceVersion int `json:"sequenceVersion"`
	} `json:"entryAudit"`
	InactiveReason *struct {
		Type     string   `json:"inactiveReasonType"`
		MergedTo []string `json:"mergeDemergeTo"`
	} `json:"inactiveReason"`
	Organism struct {
		ScientificName string `json:"scientificName"`
		TaxonID        int    `json:"taxonId"`
	} `json:"organism"`
	ProteinDescription struct {
		RecommendedName *name  `json:"recommendedName"`
		SubmissionNames []name `json:"submissionNames"`
	} `json:"proteinDescription"`
	Genes []struct {
		GeneName *struct {
			Value string `json:"value"`
		} `json:"geneName"`
	} `json:"genes"`
	Sequence struct {
		Value  string `json:"value"`
		Length int    `json:"length"`
		CRC64  string `json:"crc64"`
	} `json:"sequence"`
	CrossReferences []struct {
		Database string `json:"database"`
		ID       string `json:"id"`
	} `json:"uniProtKBCrossReferences"`
}

type name struct {
	FullName struct {
		Value string `json:"value"`
	} `json:"fullName"`
}

// Entry fetches a UniProtKB entry by accession.
func (c *Client) Entry(ctx context.Context, accession string) (*model.UniprotEntry, error) {
	const op = "entry"

	accession, err := normalizeAccession(op, accession)
	if err != nil {
		return nil, err
	}

	key := "uniprot:entry:" + accession
	var cached model.UniprotEntry
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		return &cached, nil
	}

	resp, err := c.http.Get(ctx, "uniprotkb/"+url.PathEscape(accession)+".json", nil, "application/json")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	var e entry
	if err := json.Unmarshal(resp.Body, &e); err != nil {
		return nil, bridge.New(Name, op, bridge.KindParse, err)
	}
	if e.EntryType == "Inactive" {
		reason := "inactive"
		if e.InactiveReason != nil {
			reason = strings.ToLower(e.InactiveReason.Type)
		}
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("%s is %s: %w", accession, reason, bridge.ErrNotFound))
	}

	out := e.toModel()
	_ = cache.SetJSON(ctx, c.cache, key, out, c.ttl)
	return &out, nil
}

func (e entry) toModel() model.UniprotEntry {
	out := model.UniprotEntry{
		Accession:           e.PrimaryAccession,
		SecondaryAccessions: e.SecondaryAccessions,
		EntryName:           e.UniProtKBID,
		Reviewed:            strings.Contains(e.EntryType, "Swiss-Prot"),
		Organism:            e.Organism.ScientificName,
		TaxID:               e.Organism.TaxonID,
		Sequence:            e.Sequence.Value,
		SequenceLength:      e.Sequence.Length,
		CRC64:               e.Sequence.CRC64,
		SequenceVersion:     e.EntryAudit.SequenceVersion,
		EntryVersion:        e.EntryAudit.EntryVersion,
	}
	if rn := e.ProteinDescription.RecommendedName; rn != nil {
		out.ProteinName = rn.FullName.Value
	} else if len(e.ProteinDescription.SubmissionNames) > 0 {
		out.ProteinName = e.ProteinDescription.SubmissionNames[0].FullName.Value
	}
	for _, g := range e.Genes {
		if g.GeneName != nil && g.GeneName.Value != "" {
			out.GeneNames = append(out.GeneNames, g.GeneName.Value)
		}
	}
	for _, x := range e.CrossReferences {
		out.CrossReferences = append(out.CrossReferences, model.CrossReference{
			Accession: x.ID,
			Database:  x.Database,
			TaxID:     e.Organism.TaxonID,
			Active:    true,
		})
	}
	return out
}

// normalizeAccession trims and upper-cases an accession and drops a version
// suffix: P12345.3 becomes P12345, the isoform P12345-2 is kept.
func normalizeAccession(op, accession string) (string, error) {
	accession = strings.ToUpper(strings.TrimSpace(accession))
	if i := strings.IndexByte(accession, '.'); i > 0 {
		accession = accession[:i]
	}
	if accession == "" || strings.ContainsAny(accession, " /?#") {
		return "", bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("accession %q: %w", accession, bridge.ErrInvalidInput))
	}
	return accession, nil
}
