// Package ols looks up ontology terms in the EBI Ontology Lookup Service.
package ols

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bridges/internal/bridge"
	"bridges/internal/cache"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "ols"

const (
	pageSize    = 500
	maxPages    = 20
	defaultRows = 20
)

// Client queries OLS. Term, Children and Parents answers are cached when a
// cache is configured. It is safe for concurrent use.
type Client struct {
	http  *httpclient.Client
	cache cache.Cache
	ttl   time.Duration
}

// New returns a Client. c may be nil to disable caching.
func New(hc *httpclient.Client, c cache.Cache, ttl time.Duration) *Client {
	return &Client{http: hc, cache: c, ttl: ttl}
}

// SearchOptions narrows Search.
type SearchOptions struct {
	Ontology string
	Rows     int
	Exact    bool
}

type termsPage struct {
	Embedded struct {
		Terms []term `json:"terms"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}

type term struct {
	IRI          string                     `json:"iri"`
	Label        string                     `json:"label"`
	Description  []string                   `json:"description"`
	OntologyName string                     `json:"ontology_name"`
	OBOID        string                     `json:"obo_id"`
	ShortForm    string                     `json:"short_form"`
	Synonyms     []string                   `json:"synonyms"`
	IsObsolete   bool                       `json:"is_obsolete"`
	HasChildren  bool                       `json:"has_children"`
	Annotation   map[string]json.RawMessage `json:"annotation"`
}

type searchResponse struct {
	Response struct {
		NumFound int   `json:"numFound"`
		Docs     []doc `json:"docs"`
	} `json:"response"`
}

type doc struct {
	IRI          string   `json:"iri"`
	Label        string   `json:"label"`
	Description  []string `json:"description"`
	OntologyName string   `json:"ontology_name"`
	OBOID        string   `json:"obo_id"`
	ShortForm    string   `json:"short_form"`
	Synonyms     []string `json:"synonym"`
	IsObsolete   bool     `json:"is_obsolete"`
}

// Term fetches one term by its OBO id, e.g. ("mi", "MI:0018").
func (c *Client) Term(ctx context.Context, ontology, oboID string) (*model.OntologyTerm, error) {
	const op = "term"

	ontology, oboID, err := normalize(op, ontology, oboID)
	if err != nil {
		return nil, err
	}

	key := "ols:term:" + ontology + ":" + oboID
	var cached model.OntologyTerm
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		return &cached, nil
	}

	path := "ontologies/" + url.PathEscape(ontology) + "/terms"
	var page termsPage
	if err := c.getJSON(ctx, op, path, url.Values{"obo_id": {oboID}}, &page); err != nil {
		return nil, err
	}
	if len(page.Embedded.Terms) == 0 {
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("%s %s: %w", ontology, oboID, bridge.ErrNotFound))
	}

	t := page.Embedded.Terms[0].toModel(ontology)
	_ = cache.SetJSON(ctx, c.cache, key, t, c.ttl)
	return &t, nil
}

// Children returns the direct is_a children of a term.
func (c *Client) Children(ctx context.Context, ontology, oboID string) ([]model.OntologyTerm, error) {
	return c.related(ctx, "children", ontology, oboID)
}

// Parents returns the direct is_a parents of a term.
func (c *Client) Parents(ctx context.Context, ontology, oboID string) ([]model.OntologyTerm, error) {
	return c.related(ctx, "parents", ontology, oboID)
}

// Roots returns the top-level terms of an ontology.
func (c *Client) Roots(ctx context.Context, ontology string) ([]model.OntologyTerm, error) {
	const op = "roots"

	ontology = strings.ToLower(strings.TrimSpace(ontology))
	if ontology == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("ontology is required: %w", bridge.ErrInvalidInput))
	}
	return c.pages(ctx, op, "ontologies/"+url.PathEscape(ontology)+"/terms/roots", ontology)
}

// Search runs a full-text query over term labels and synonyms.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]model.OntologyTerm, int, error) {
	const op = "search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("query is required: %w", bridge.ErrInvalidInput))
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = defaultRows
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("rows", strconv.Itoa(rows))
	q.Set("type", "class")
	if opts.Ontology != "" {
		q.Set("ontology", strings.ToLower(opts.Ontology))
	}
	if opts.Exact {
		q.Set("exact", "true")
	}

	var resp searchResponse
	if err := c.getJSON(ctx, op, "search", q, &resp); err != nil {
		return nil, 0, err
	}
	terms := make([]model.OntologyTerm, 0, len(resp.Response.Docs))
	for _, d := range resp.Response.Docs {
		terms = append(terms, model.OntologyTerm{
			Ontology:   d.OntologyName,
			ID:         oboIDOf(d.OBOID, d.ShortForm),
			IRI:        d.IRI,
			Name:       d.Label,
			Definition: first(d.Description),
			Synonyms:   d.Synonyms,
			Obsolete:   d.IsObsolete,
		})
	}
	return terms, resp.Response.NumFound, nil
}

func (c *Client) related(ctx context.Context, op, ontology, oboID string) ([]model.OntologyTerm, error) {
	ontology, oboID, err := normalize(op, ontology, oboID)
	if err != nil {
		return nil, err
	}

	key := "ols:" + op + ":" + ontology + ":" + oboID
	var cached []model.OntologyTerm
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		return cached, nil
	}

	t, err := c.Term(ctx, ontology, oboID)
	if err != nil {
		return nil, err
	}
	var terms []model.OntologyTerm
	if op == "children" && !t.HasChildren {
		terms = []model.OntologyTerm{}
	} else {
		path := "ontologies/" + url.PathEscape(ontology) + "/terms/" + EncodeIRI(t.IRI) + "/" + op
		terms, err = c.pages(ctx, op, path, ontology)
		if err != nil {
			return nil, err
		}
	}

	_ = cache.SetJSON(ctx, c.cache, key, terms, c.ttl)
	return terms, nil
}

// pages follows a paged term listing until the last page.
func (c *Client) pages(ctx context.Context, op, path, ontology string) ([]model.OntologyTerm, error) {
	terms := []model.OntologyTerm{}
	for n := 0; n < maxPages; n++ {
		q := url.Values{"page": {strconv.Itoa(n)}, "size": {strconv.Itoa(pageSize)}}
		var page termsPage
		if err := c.getJSON(ctx, op, path, q, &page); err != nil {
			return nil, err
		}
		for _, t := range page.Embedded.Terms {
			terms = append(terms, t.toModel(ontology))
		}
		if page.Page.Number+1 >= page.Page.TotalPages {
			break
		}
	}
	return terms, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, q url.Values, out any) error {
	resp, err := c.http.Get(ctx, path, q, "application/json")
	if err != nil {
		return bridge.Wrap(Name, op, err)
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return bridge.New(Name, op, bridge.KindParse, err)
	}
	return nil
}

func (t term) toModel(ontology string) model.OntologyTerm {
	out := model.OntologyTerm{
		Ontology:    ontology,
		ID:          oboIDOf(t.OBOID, t.ShortForm),
		IRI:         t.IRI,
		Name:        t.Label,
		Definition:  first(t.Description),
		Synonyms:    t.Synonyms,
		Obsolete:    t.IsObsolete,
		HasChildren: t.HasChildren,
		Xrefs:       t.annotation("database_cross_reference"),
		AltIDs:      t.annotation("has_alternative_id"),
		ReplacedBy:  first(t.annotation("term_replaced_by")),
	}
	if t.OntologyName != "" {
		out.Ontology = t.OntologyName
	}
	if ns := first(t.annotation("has_obo_namespace")); ns != "" {
		out.Namespace = ns
	}
	return out
}

// annotation reads a string-valued annotation. Values of other shapes are ignored.
func (t term) annotation(key string) []string {
	raw, ok := t.Annotation[key]
	if !ok {
		return nil
	}
	var many []string
	if json.Unmarshal(raw, &many) == nil {
		return many
	}
	var one string
	if json.Unmarshal(raw, &one) == nil && one != "" {
		return []string{one}
	}
	return nil
}

// EncodeIRI URL-encodes an IRI twice, the form OLS expects in term paths.
func EncodeIRI(iri string) string {
	return url.QueryEscape(url.QueryEscape(iri))
}

func normalize(op, ontology, oboID string) (string, string, error) {
	ontology = strings.ToLower(strings.TrimSpace(ontology))
	oboID = strings.TrimSpace(oboID)
	if ontology == "" || oboID == "" {
		return "", "", bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("ontology and term id are required: %w", bridge.ErrInvalidInput))
	}
	return ontology, oboID, nil
}

// oboIDOf prefers obo_id and falls back to the short form MI_0018 -> MI:0018.
func oboIDOf(oboID, shortForm string) string {
	if oboID != "" {
		return oboID
	}
	if i := strings.IndexByte(shortForm, '_'); i > 0 {
		return shortForm[:i] + ":" + shortForm[i+1:]
	}
	return shortForm
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
