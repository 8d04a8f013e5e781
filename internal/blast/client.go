// Package blast talks to the EBI Job Dispatcher NCBI BLAST service and turns
// its result documents into hit lists.
package blast

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "blast"

const (
	defaultProgram  = "blastp"
	defaultDatabase = "uniprotkb_swissprot"
	defaultSeqType  = "protein"
)

// Result types understood by Result.
const (
	ResultXML     = "xml"
	ResultOut     = "out"
	ResultIDs     = "ids"
	ResultTabular = "tsv"
)

// Client submits and fetches BLAST jobs. It is safe for concurrent use.
type Client struct {
	http  *httpclient.Client
	email string
}

// New returns a Client. email is sent with every job unless the request
// carries its own; the service rejects jobs without one.
func New(hc *httpclient.Client, email string) *Client {
	return &Client{http: hc, email: email}
}

// Run submits a job and returns its identifier.
func (c *Client) Run(ctx context.Context, req model.BlastRequest) (string, error) {
	const op = "run"

	seq := strings.TrimSpace(req.Sequence)
	if seq == "" {
		return "", bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("sequence is required: %w", bridge.ErrInvalidInput))
	}
	email := req.Email
	if email == "" {
		email = c.email
	}
	if email == "" {
		return "", bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("email is required: %w", bridge.ErrInvalidInput))
	}

	form := url.Values{}
	form.Set("email", email)
	form.Set("program", orDefault(req.Program, defaultProgram))
	form.Set("database", orDefault(req.Database, defaultDatabase))
	form.Set("stype", orDefault(req.SequenceType, defaultSeqType))
	form.Set("sequence", seq)
	if req.Title != "" {
		form.Set("title", req.Title)
	}
	if req.Expectation != "" {
		form.Set("exp", req.Expectation)
	}
	if req.Alignments > 0 {
		form.Set("alignments", strconv.Itoa(req.Alignments))
	}
	if req.Scores > 0 {
		form.Set("scores", strconv.Itoa(req.Scores))
	}
	if req.Matrix != "" {
		form.Set("matrix", req.Matrix)
	}

	resp, err := c.http.PostForm(ctx, "run", form)
	if err != nil {
		return "", bridge.Wrap(Name, op, err)
	}
	id := strings.TrimSpace(string(resp.Body))
	if id == "" {
		return "", bridge.New(Name, op, bridge.KindParse, fmt.Errorf("empty job id"))
	}
	return id, nil
}

// Status returns the current state of a job.
func (c *Client) Status(ctx context.Context, jobID string) (model.BlastJobStatus, error) {
	const op = "status"

	if jobID == "" {
		return "", bridge.New(Name, op, bridge.KindInvalidInput, bridge.ErrInvalidInput)
	}
	resp, err := c.http.Get(ctx, "status/"+url.PathEscape(jobID), nil, "text/plain")
	if err != nil {
		return "", bridge.Wrap(Name, op, err)
	}

	st := model.BlastJobStatus(strings.TrimSpace(string(resp.Body)))
	switch st {
	case model.BlastQueued, model.BlastRunning, model.BlastFinished,
		model.BlastError, model.BlastFailure, model.BlastNotFound:
		return st, nil
	default:
		return "", bridge.New(Name, op, bridge.KindParse, fmt.Errorf("unknown job status %q", st))
	}
}

// Result downloads a result document of the given type for a finished job.
func (c *Client) Result(ctx context.Context, jobID, resultType string) ([]byte, error) {
	const op = "result"

	if jobID == "" || resultType == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, bridge.ErrInvalidInput)
	}
	path := "result/" + url.PathEscape(jobID) + "/" + url.PathEscape(resultType)
	resp, err := c.http.Get(ctx, path, nil, "")
	if err != nil {
		return nil, bridge.Wrap(Name, op, err)
	}
	return resp.Body, nil
}

// Hits fetches the XML result of a finished job and parses it.
func (c *Client) Hits(ctx context.Context, jobID string) ([]model.BlastHit, error) {
	raw, err := c.Result(ctx, jobID, ResultXML)
	if err != nil {
		return nil, err
	}
	hits, err := ParseXML(bytes.NewReader(raw))
	if err != nil {
		return nil, bridge.New(Name, "hits", bridge.KindParse, err)
	}
	return hits, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
