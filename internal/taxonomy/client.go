// Package taxonomy resolves NCBI taxonomy identifiers through the UniProt
// taxonomy REST service. IntAct's negative pseudo-identifiers are answered
// without a remote call.
package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"bridges/internal/bridge"
	"bridges/internal/cache"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "taxonomy"

const (
	childrenPageSize = 500
	maxChildrenPages = 100
)

// Pseudo taxids used for interactions without a natural host organism.
const (
	InVitro           = -1
	ChemicalSynthesis = -2
	Unknown           = -3
	InVivo            = -4
	InSilico          = -5
)

var pseudo = map[int]model.TaxonomyTerm{
	InVitro:           {TaxID: InVitro, ScientificName: "in vitro", CommonName: "in vitro", Mnemonic: "IN VITRO"},
	ChemicalSynthesis: {TaxID: ChemicalSynthesis, ScientificName: "chemical synthesis", CommonName: "chemical synthesis", Mnemonic: "CHEMICAL SYNTHESIS"},
	Unknown:           {TaxID: Unknown, ScientificName: "unknown", CommonName: "unknown", Mnemonic: "UNKNOWN"},
	InVivo:            {TaxID: InVivo, ScientificName: "in vivo", CommonName: "in vivo", Mnemonic: "IN VIVO"},
	InSilico:          {TaxID: InSilico, ScientificName: "in silico", CommonName: "in silico", Mnemonic: "IN SILICO"},
}

// IsPseudo reports whether taxID is one of the IntAct pseudo taxids.
func IsPseudo(taxID int) bool {
	_, ok := pseudo[taxID]
	return ok
}

// Client looks up taxonomy nodes. It is safe for concurrent use.
type Client struct {
	http  *httpclient.Client
	cache cache.Cache
	ttl   time.Duration
}

// New returns a Client. c may be nil to disable caching.
func New(hc *httpclient.Client, c cache.Cache, ttl time.Duration) *Client {
	return &Client{http: hc, cache: c, ttl: ttl}
}

type taxon struct {
	TaxonID        int      `json:"taxonId"`
	ScientificName string   `json:"scientificName"`
	CommonName     string   `json:"commonName"`
	Mnemonic       string   `json:"mnemonic"`
	Rank           string   `json:"rank"`
	Synonyms       []string `json:"synonyms"`
	OtherNames     []string `json:"otherNames"`
	Parent         *struct {
		TaxonID int `json:"taxonId"`
	} `json:"parent"`
	Lineage []struct {
		TaxonID int `json:"taxonId"`
	} `json:"lineage"`
}

type searchResponse struct {
	Results []taxon `json:"results"`
}

// Term returns the taxonomy node for taxID.
func (c *Client) Term(ctx context.Context, taxID int) (*model.TaxonomyTerm, error) {
	const op = "term"

	if t, ok := pseudo[taxID]; ok {
		return &t, nil
	}
	if taxID <= 0 {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("taxid %d: %w", taxID, bridge.ErrInvalidInput))
	}

	key := "taxonomy:term:" + strconv.Itoa(taxID)
	var cached model.TaxonomyTerm
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		return &cached, nil
	}

	resp, err := c.http.Get(ctx, "taxonomy/"+strconv.Itoa(taxID), nil, "application/json")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	var tx taxon
	if err := json.Unmarshal(resp.Body, &tx); err != nil {
		return nil, bridge.New(Name, op, bridge.KindParse, err)
	}
	if tx.TaxonID == 0 {
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("taxid %d: %w", taxID, bridge.ErrNotFound))
	}

	t := tx.toModel()
	_ = cache.SetJSON(ctx, c.cache, key, t, c.ttl)
	return &t, nil
}

// Children returns the direct child nodes of taxID, following the result
// cursor across pages. Pseudo taxids have none.
func (c *Client) Children(ctx context.Context, taxID int) ([]model.TaxonomyTerm, error) {
	const op = "children"

	if IsPseudo(taxID) {
		return []model.TaxonomyTerm{}, nil
	}
	if taxID <= 0 {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("taxid %d: %w", taxID, bridge.ErrInvalidInput))
	}

	key := "taxonomy:children:" + strconv.Itoa(taxID)
	var cached []model.TaxonomyTerm
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		return cached, nil
	}

	q := url.Values{}
	q.Set("query", "parent:"+strconv.Itoa(taxID))
	q.Set("format", "json")
	q.Set("size", strconv.Itoa(childrenPageSize))

	out := []model.TaxonomyTerm{}
	for page := 0; ; page++ {
		if page == maxChildrenPages {
			return nil, bridge.New(Name, op, bridge.KindRemote, fmt.Errorf("taxid %d: more than %d pages of children", taxID, maxChildrenPages))
		}
		resp, err := c.http.Get(ctx, "taxonomy/search", q, "application/json")
		if err != nil {
			return nil, bridge.Wrap(Name, op, err)
		}
		var sr searchResponse
		if err := json.Unmarshal(resp.Body, &sr); err != nil {
			return nil, bridge.New(Name, op, bridge.KindParse, err)
		}
		for _, tx := range sr.Results {
			out = append(out, tx.toModel())
		}

		next := httpclient.NextLink(resp.Headers)
		if next == "" {
			break
		}
		// The cursor travels in the query; the path stays on our base URL.
		u, err := url.Parse(next)
		if err != nil {
			return nil, bridge.New(Name, op, bridge.KindParse, fmt.Errorf("next link %q: %w", next, err))
		}
		q = u.Query()
	}
	_ = cache.SetJSON(ctx, c.cache, key, out, c.ttl)
	return out, nil
}

func (tx taxon) toModel() model.TaxonomyTerm {
	t := model.TaxonomyTerm{
		TaxID:          tx.TaxonID,
		ScientificName: tx.ScientificName,
		CommonName:     tx.CommonName,
		Mnemonic:       tx.Mnemonic,
		Rank:           tx.Rank,
		Synonyms:       append(tx.Synonyms, tx.OtherNames...),
	}
	if tx.Parent != nil {
		t.ParentTaxID = tx.Parent.TaxonID
	}
	for _, l := range tx.Lineage {
		t.Lineage = append(t.Lineage, l.TaxonID)
	}
	return t
}
