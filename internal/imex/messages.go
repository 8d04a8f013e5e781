package imex

import (
	"encoding/xml"
	"strings"
	"time"

	"bridges/internal/model"
)

// Namespace is the target namespace of the IMEx Central web service.
const Namespace = "http://imex.mbi.ucla.edu/icentral/ws"

type identifier struct {
	Namespace string `xml:"ns,attr"`
	Accession string `xml:"ac,attr"`
}

type getPublicationByIdRequest struct {
	XMLName    xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws getPublicationById"`
	Identifier identifier `xml:"identifier"`
}

type createPublicationByIdRequest struct {
	XMLName    xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws createPublicationById"`
	Identifier identifier `xml:"identifier"`
}

type updatePublicationStatusRequest struct {
	XMLName    xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws updatePublicationStatus"`
	Identifier identifier `xml:"identifier"`
	Status     string     `xml:"status"`
	Message    string     `xml:"message,omitempty"`
}

type getPublicationImexAccessionRequest struct {
	XMLName    xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws getPublicationImexAccession"`
	Identifier identifier `xml:"identifier"`
	Create     bool       `xml:"create"`
}

type updatePublicationAdminUserRequest struct {
	XMLName    xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws updatePublicationAdminUser"`
	Identifier identifier `xml:"identifier"`
	Operation  string     `xml:"operation"`
	User       string     `xml:"user"`
}

type updatePublicationAdminGroupRequest struct {
	XMLName    xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws updatePublicationAdminGroup"`
	Identifier identifier `xml:"identifier"`
	Operation  string     `xml:"operation"`
	Group      string     `xml:"group"`
}

type updatePublicationIdentifierRequest struct {
	XMLName       xml.Name   `xml:"http://imex.mbi.ucla.edu/icentral/ws updatePublicationIdentifier"`
	Identifier    identifier `xml:"identifier"`
	Operation     string     `xml:"operation"`
	NewIdentifier identifier `xml:"newIdentifier"`
}

// Every operation answers with the publication as it stands after the call.
type publicationResponse struct {
	Publication *publication `xml:"publication"`
}

type publication struct {
	Author        string       `xml:"author"`
	Title         string       `xml:"title"`
	Identifiers   []identifier `xml:"identifier"`
	ImexAccession string       `xml:"imexAccession"`
	Owner         string       `xml:"owner"`
	Status        string       `xml:"status"`
	CreationDate  string       `xml:"creationDate"`
	StatusDate    string       `xml:"statusDate"`
	AdminUsers    []string     `xml:"adminUserList>user"`
	AdminGroups   []string     `xml:"adminGroupList>group"`
}

// IMEx Central reserves accession "N/A" for publications without one.
const noAccession = "N/A"

func (p *publication) toModel(fallback model.ImexIdentifier) *model.ImexPublication {
	out := &model.ImexPublication{
		Identifier:      fallback,
		Owner:           strings.TrimSpace(p.Owner),
		Status:          model.ImexStatus(strings.ToUpper(strings.TrimSpace(p.Status))),
		Title:           strings.TrimSpace(p.Title),
		Author:          strings.TrimSpace(p.Author),
		CreatedAt:       parseTime(p.CreationDate),
		StatusChangedAt: parseTime(p.StatusDate),
		AdminUsers:      p.AdminUsers,
		AdminGroups:     p.AdminGroups,
	}
	if acc := strings.TrimSpace(p.ImexAccession); acc != noAccession {
		out.ImexAccession = acc
	}
	for _, id := range p.Identifiers {
		if strings.EqualFold(id.Namespace, fallback.Namespace) {
			out.Identifier = model.ImexIdentifier{Namespace: id.Namespace, Accession: id.Accession}
			break
		}
	}
	return out
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
