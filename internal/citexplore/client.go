// Package citexplore resolves PubMed identifiers through the Europe PMC REST
// service, the successor of CitExplore.
package citexplore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "citexplore"

const (
	defaultPageSize = 25
	maxPageSize     = 1000
)

// Client queries Europe PMC. It is safe for concurrent use.
type Client struct {
	http *httpclient.Client
}

// New returns a Client using hc, rooted at the Europe PMC REST base URL.
func New(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

type searchResponse struct {
	HitCount   int `json:"hitCount"`
	ResultList struct {
		Result []result `json:"result"`
	} `json:"resultList"`
}

type result struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	PMID         string `json:"pmid"`
	PMCID        string `json:"pmcid"`
	DOI          string `json:"doi"`
	Title        string `json:"title"`
	AuthorString string `json:"authorString"`
	AuthorList   struct {
		Author []struct {
			FullName string `json:"fullName"`
		} `json:"author"`
	} `json:"authorList"`
	JournalTitle string `json:"journalTitle"`
	JournalInfo  *struct {
		Issue             string `json:"issue"`
		Volume            string `json:"volume"`
		YearOfPublication int    `json:"yearOfPublication"`
		Journal           struct {
			Title               string `json:"title"`
			MedlineAbbreviation string `json:"medlineAbbreviation"`
			ISOAbbreviation     string `json:"isoabbreviation"`
			ISSN                string `json:"issn"`
		} `json:"journal"`
	} `json:"journalInfo"`
	PubYear              string `json:"pubYear"`
	PageInfo             string `json:"pageInfo"`
	AbstractText         string `json:"abstractText"`
	FirstPublicationDate string `json:"firstPublicationDate"`
}

// Publication returns the MEDLINE record for pmid.
func (c *Client) Publication(ctx context.Context, pmid string) (*model.Publication, error) {
	const op = "publication"

	pmid = strings.TrimSpace(pmid)
	if !isPubmedID(pmid) {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("pubmed id %q: %w", pmid, bridge.ErrInvalidInput))
	}

	resp, err := c.search(ctx, op, fmt.Sprintf("EXT_ID:%s AND SRC:MED", pmid), 1)
	if err != nil {
		return nil, err
	}
	for _, r := range resp.ResultList.Result {
		if r.PMID == pmid || r.ID == pmid {
			p := r.toModel()
			return &p, nil
		}
	}
	return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("pubmed id %s: %w", pmid, bridge.ErrNotFound))
}

// Search runs a free-text Europe PMC query and returns the first page of
// results together with the total hit count.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]model.Publication, int, error) {
	const op = "search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("query is required: %w", bridge.ErrInvalidInput))
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	resp, err := c.search(ctx, op, query, pageSize)
	if err != nil {
		return nil, 0, err
	}
	pubs := make([]model.Publication, 0, len(resp.ResultList.Result))
	for _, r := range resp.ResultList.Result {
		pubs = append(pubs, r.toModel())
	}
	return pubs, resp.HitCount, nil
}

func (c *Client) search(ctx context.Context, op, query string, pageSize int) (*searchResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("resultType", "core")
	q.Set("format", "json")
	q.Set("pageSize", strconv.Itoa(pageSize))

	resp, err := c.http.Get(ctx, "search", q, "application/json")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	var out searchResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, bridge.New(Name, op, bridge.KindParse, err)
	}
	return &out, nil
}

func (r result) toModel() model.Publication {
	p := model.Publication{
		PubmedID:        r.PMID,
		PMCID:           r.PMCID,
		DOI:             r.DOI,
		Title:           strings.TrimSpace(r.Title),
		Journal:         r.JournalTitle,
		Pages:           r.PageInfo,
		Abstract:        r.AbstractText,
		PublicationDate: r.FirstPublicationDate,
	}
	if p.PubmedID == "" && r.Source == "MED" {
		p.PubmedID = r.ID
	}

	for _, a := range r.AuthorList.Author {
		if name := strings.TrimSpace(a.FullName); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}
	if len(p.Authors) == 0 {
		p.Authors = splitAuthors(r.AuthorString)
	}

	if ji := r.JournalInfo; ji != nil {
		p.Issue = ji.Issue
		p.Volume = ji.Volume
		p.Year = ji.YearOfPublication
		p.ISSN = ji.Journal.ISSN
		if ji.Journal.Title != "" {
			p.Journal = ji.Journal.Title
		}
		p.JournalISO = ji.Journal.ISOAbbreviation
		if p.JournalISO == "" {
			p.JournalISO = ji.Journal.MedlineAbbreviation
		}
	}
	if p.Year == 0 {
		p.Year, _ = strconv.Atoi(r.PubYear)
	}
	return p
}

// splitAuthors turns "Smith J, Doe A." into ["Smith J", "Doe A"].
func splitAuthors(s string) []string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "" {
		return nil
	}
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func isPubmedID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
