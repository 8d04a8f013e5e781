// Package picr maps protein accessions and sequences onto UniParc entries
// and their cross-references with the PICR SOAP service.
package picr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hooklift/gowsdl/soap"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "picr"

// Database names as PICR reports them.
const (
	SwissProt         = "SWISSPROT"
	SwissProtVarSplic = "SWISSPROT_VARSPLIC"
	TrEMBL            = "TREMBL"
	TrEMBLVarSplic    = "TREMBL_VARSPLIC"
)

// Options narrows a mapping. Zero values search every database, any
// organism, and include deleted cross-references.
type Options struct {
	Databases  []string
	TaxID      int
	OnlyActive bool
}

func (o Options) taxon() string {
	if o.TaxID <= 0 {
		return ""
	}
	return strconv.Itoa(o.TaxID)
}

// Client calls PICR. It is safe for concurrent use.
type Client struct {
	soap *soap.Client
}

// New returns a Client posting to the PICR service endpoint of hc.
func New(hc *httpclient.Client) *Client {
	return &Client{soap: hc.SOAP()}
}

// MapAccession returns the UniParc entries holding accession. An unknown
// accession yields an empty slice.
func (c *Client) MapAccession(ctx context.Context, accession string, opts Options) ([]model.UPEntry, error) {
	const op = "map_accession"

	accession = strings.TrimSpace(accession)
	if accession == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("accession is required: %w", bridge.ErrInvalidInput))
	}
	acc, version := splitVersion(accession)

	req := &getUPIForAccessionRequest{
		Accession:       acc,
		AccessionVer:    version,
		SearchDatabases: opts.Databases,
		TaxonID:         opts.taxon(),
		OnlyActive:      opts.OnlyActive,
	}
	var resp getUPIForAccessionResponse
	if err := c.soap.CallContext(ctx, "", req, &resp); err != nil {
		return nil, httpclient.WrapSOAP(Name, op, err, nil)
	}

	out := make([]model.UPEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		out = append(out, e.toModel())
	}
	return out, nil
}

// MapSequence returns the UniParc entry with exactly this sequence.
func (c *Client) MapSequence(ctx context.Context, sequence string, opts Options) (*model.UPEntry, error) {
	const op = "map_sequence"

	sequence = strings.ToUpper(strings.Join(strings.Fields(sequence), ""))
	if sequence == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("sequence is required: %w", bridge.ErrInvalidInput))
	}

	req := &getUPIForSequenceRequest{
		Sequence:        sequence,
		SearchDatabases: opts.Databases,
		TaxonID:         opts.taxon(),
		OnlyActive:      opts.OnlyActive,
	}
	var resp getUPIForSequenceResponse
	if err := c.soap.CallContext(ctx, "", req, &resp); err != nil {
		return nil, httpclient.WrapSOAP(Name, op, err, nil)
	}
	if resp.Entry == nil || resp.Entry.UPI == "" {
		return nil, bridge.New(Name, op, bridge.KindNotFound, fmt.Errorf("no uniparc entry for sequence: %w", bridge.ErrNotFound))
	}
	e := resp.Entry.toModel()
	return &e, nil
}

// MappedDatabases lists the database names PICR can map to.
func (c *Client) MappedDatabases(ctx context.Context) ([]string, error) {
	var resp getMappedDatabaseNamesResponse
	if err := c.soap.CallContext(ctx, "", &getMappedDatabaseNamesRequest{}, &resp); err != nil {
		return nil, httpclient.WrapSOAP(Name, "mapped_databases", err, nil)
	}
	return resp.Names, nil
}

// splitVersion separates "NP_000537.3" into accession and version.
func splitVersion(accession string) (string, string) {
	i := strings.LastIndexByte(accession, '.')
	if i <= 0 || i == len(accession)-1 {
		return accession, ""
	}
	if _, err := strconv.Atoi(accession[i+1:]); err != nil {
		return accession, ""
	}
	return accession[:i], accession[i+1:]
}
