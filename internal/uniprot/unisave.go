package uniprot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"bridges/internal/bridge"
	"bridges/internal/cache"
	"bridges/internal/model"
)

type unisaveResponse struct {
	Results []struct {
		Accession        string `json:"accession"`
		Database         string `json:"database"`
		EntryVersion     int    `json:"entryVersion"`
		SequenceVersion  int    `json:"sequenceVersion"`
		FirstRelease     string `json:"firstRelease"`
		FirstReleaseDate string `json:"firstReleaseDate"`
		LastRelease      string `json:"lastRelease"`
	} `json:"results"`
}

// Versions lists every archived version of an entry, newest entry version
// first. Sequences are not filled in.
func (c *Client) Versions(ctx context.Context, accession string) ([]model.SequenceVersion, error) {
	const op = "versions"

	accession, err := normalizeAccession(op, accession)
	if err != nil {
		return nil, err
	}

	key := "unisave:versions:" + accession
	var cached []model.SequenceVersion
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		return cached, nil
	}

	q := url.Values{"format": {"json"}}
	resp, err := c.http.Get(ctx, "unisave/"+url.PathEscape(accession), q, "application/json")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	var ur unisaveResponse
	if err := json.Unmarshal(resp.Body, &ur); err != nil {
		return nil, bridge.New(Name, op, bridge.KindParse, err)
	}
	if len(ur.Results) == 0 {
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("no unisave history for %s: %w", accession, bridge.ErrNotFound))
	}

	versions := make([]model.SequenceVersion, 0, len(ur.Results))
	for _, r := range ur.Results {
		versions = append(versions, model.SequenceVersion{
			Accession:        r.Accession,
			Database:         r.Database,
			EntryVersion:     r.EntryVersion,
			SequenceVersion:  r.SequenceVersion,
			FirstRelease:     r.FirstRelease,
			FirstReleaseDate: r.FirstReleaseDate,
			LastRelease:      r.LastRelease,
		})
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].EntryVersion > versions[j].EntryVersion
	})

	_ = cache.SetJSON(ctx, c.cache, key, versions, c.ttl)
	return versions, nil
}

// SequenceVersion returns the first entry version that carried the given
// sequence version, with its sequence.
func (c *Client) SequenceVersion(ctx context.Context, accession string, sequenceVersion int) (*model.SequenceVersion, error) {
	const op = "sequence_version"

	if sequenceVersion <= 0 {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("sequence version %d: %w", sequenceVersion, bridge.ErrInvalidInput))
	}
	versions, err := c.Versions(ctx, accession)
	if err != nil {
		return nil, err
	}
	first := firstCarrying(versions)
	v, ok := first[sequenceVersion]
	if !ok {
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("%s has no sequence version %d: %w", accession, sequenceVersion, bridge.ErrNotFound))
	}
	return c.withSequence(ctx, op, v)
}

// LatestSequence returns the newest entry version with its sequence.
func (c *Client) LatestSequence(ctx context.Context, accession string) (*model.SequenceVersion, error) {
	versions, err := c.Versions(ctx, accession)
	if err != nil {
		return nil, err
	}
	return c.withSequence(ctx, "latest_sequence", versions[0])
}

// SequenceUpdates returns the sequence versions newer than since, oldest
// first, each with its sequence. An up-to-date caller gets an empty slice.
func (c *Client) SequenceUpdates(ctx context.Context, accession string, since int) ([]model.SequenceVersion, error) {
	const op = "sequence_updates"

	versions, err := c.Versions(ctx, accession)
	if err != nil {
		return nil, err
	}
	first := firstCarrying(versions)

	svs := make([]int, 0, len(first))
	for sv := range first {
		if sv > since {
			svs = append(svs, sv)
		}
	}
	sort.Ints(svs)

	out := make([]model.SequenceVersion, 0, len(svs))
	for _, sv := range svs {
		v, err := c.withSequence(ctx, op, first[sv])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// firstCarrying maps each sequence version to the lowest entry version that has it.
func firstCarrying(versions []model.SequenceVersion) map[int]model.SequenceVersion {
	first := make(map[int]model.SequenceVersion)
	for _, v := range versions {
		cur, ok := first[v.SequenceVersion]
		if !ok || v.EntryVersion < cur.EntryVersion {
			first[v.SequenceVersion] = v
		}
	}
	return first
}

func (c *Client) withSequence(ctx context.Context, op string, v model.SequenceVersion) (*model.SequenceVersion, error) {
	q := url.Values{}
	q.Set("format", "fasta")
	q.Set("versions", strconv.Itoa(v.EntryVersion))

	resp, err := c.http.Get(ctx, "unisave/"+url.PathEscape(v.Accession), q, "text/plain")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	records, err := ParseFASTA(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, bridge.New(Name, op, bridge.KindParse, err)
	}
	if len(records) == 0 {
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("no sequence for %s entry version %d: %w", v.Accession, v.EntryVersion, bridge.ErrNotFound))
	}
	v.Sequence = records[0].Sequence
	return &v, nil
}
