// Package imex registers and curates publications in IMEx Central over its
// SOAP interface.
package imex

import (
	"context"
	"fmt"
	"strings"

	"github.com/hooklift/gowsdl/soap"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

// Name identifies this bridge in errors and metrics.
const Name = "imex"

const (
	nsPubmed = "pmid"
	opAdd    = "ADD"
)

// Client talks to IMEx Central. It is safe for concurrent use.
type Client struct {
	soap *soap.Client
}

// New returns a Client authenticating with user and password when user is set.
func New(hc *httpclient.Client, user, password string) *Client {
	var opts []soap.Option
	if user != "" {
		opts = append(opts, soap.WithBasicAuth(user, password))
	}
	return &Client{soap: hc.SOAP(opts...)}
}

// Publication fetches the registry record of a PubMed publication.
func (c *Client) Publication(ctx context.Context, pmid string) (*model.ImexPublication, error) {
	id, err := pubmedID("publication", pmid)
	if err != nil {
		return nil, err
	}
	req := &getPublicationByIdRequest{Identifier: wire(id)}
	return c.call(ctx, "publication", "getPublicationById", req, id)
}

// Create registers a PubMed publication. The new record has status NEW.
func (c *Client) Create(ctx context.Context, pmid string) (*model.ImexPublication, error) {
	id, err := pubmedID("create", pmid)
	if err != nil {
		return nil, err
	}
	req := &createPublicationByIdRequest{Identifier: wire(id)}
	return c.call(ctx, "create", "createPublicationById", req, id)
}

// UpdateStatus moves a publication to status; message is recorded in the
// registry log.
func (c *Client) UpdateStatus(ctx context.Context, pmid string, status model.ImexStatus, message string) (*model.ImexPublication, error) {
	const op = "update_status"

	id, err := pubmedID(op, pmid)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("status %q: %w", status, bridge.ErrInvalidInput))
	}
	req := &updatePublicationStatusRequest{Identifier: wire(id), Status: string(status), Message: message}
	return c.call(ctx, op, "updatePublicationStatus", req, id)
}

// AssignImexAccession returns the publication with its IMEx accession. With
// create set, IMEx Central allocates one if the publication has none yet.
func (c *Client) AssignImexAccession(ctx context.Context, pmid string, create bool) (*model.ImexPublication, error) {
	const op = "assign_accession"

	id, err := pubmedID(op, pmid)
	if err != nil {
		return nil, err
	}
	req := &getPublicationImexAccessionRequest{Identifier: wire(id), Create: create}
	pub, err := c.call(ctx, op, "getPublicationImexAccession", req, id)
	if err != nil {
		return nil, err
	}
	if create && pub.ImexAccession == "" {
		return nil, bridge.New(Name, op, bridge.KindRemote, fmt.Errorf("no imex accession assigned to pmid %s", id.Accession))
	}
	return pub, nil
}

// AddAdminUser grants user curation rights on the publication.
func (c *Client) AddAdminUser(ctx context.Context, pmid, user string) (*model.ImexPublication, error) {
	const op = "add_admin_user"

	id, err := pubmedID(op, pmid)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(user) == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("user is required: %w", bridge.ErrInvalidInput))
	}
	req := &updatePublicationAdminUserRequest{Identifier: wire(id), Operation: opAdd, User: user}
	return c.call(ctx, op, "updatePublicationAdminUser", req, id)
}

// AddAdminGroup grants a curation group rights on the publication.
func (c *Client) AddAdminGroup(ctx context.Context, pmid, group string) (*model.ImexPublication, error) {
	const op = "add_admin_group"

	id, err := pubmedID(op, pmid)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(group) == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("group is required: %w", bridge.ErrInvalidInput))
	}
	req := &updatePublicationAdminGroupRequest{Identifier: wire(id), Operation: opAdd, Group: group}
	return c.call(ctx, op, "updatePublicationAdminGroup", req, id)
}

// UpdateIdentifier attaches newID to the publication known as oldID, for
// example a PubMed id to a record registered under an internal one.
func (c *Client) UpdateIdentifier(ctx context.Context, oldID, newID model.ImexIdentifier) (*model.ImexPublication, error) {
	const op = "update_identifier"

	if oldID.Namespace == "" || oldID.Accession == "" || newID.Namespace == "" || newID.Accession == "" {
		return nil, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("identifiers need ns and ac: %w", bridge.ErrInvalidInput))
	}
	req := &updatePublicationIdentifierRequest{Identifier: wire(oldID), Operation: opAdd, NewIdentifier: wire(newID)}
	return c.call(ctx, op, "updatePublicationIdentifier", req, newID)
}

func (c *Client) call(ctx context.Context, op, action string, req any, id model.ImexIdentifier) (*model.ImexPublication, error) {
	var resp publicationResponse
	if err := c.soap.CallContext(ctx, action, req, &resp); err != nil {
		return nil, httpclient.WrapSOAP(Name, op, err, isNoRecord)
	}
	if resp.Publication == nil {
		return nil, bridge.New(Name, op, bridge.KindParse, fmt.Errorf("%s: response without publication", action))
	}
	return resp.Publication.toModel(id), nil
}

func isNoRecord(f *soap.SOAPFault) bool {
	s := strings.ToLower(f.String)
	return strings.Contains(s, "no record") || strings.Contains(s, "not found")
}

func pubmedID(op, pmid string) (model.ImexIdentifier, error) {
	pmid = strings.TrimSpace(pmid)
	if pmid == "" || strings.Trim(pmid, "0123456789") != "" {
		return model.ImexIdentifier{}, bridge.New(Name, op, bridge.KindInvalidInput, fmt.Errorf("pubmed id %q: %w", pmid, bridge.ErrInvalidInput))
	}
	return model.ImexIdentifier{Namespace: nsPubmed, Accession: pmid}, nil
}

func wire(id model.ImexIdentifier) identifier {
	return identifier{Namespace: id.Namespace, Accession: id.Accession}
}
