package model

import "time"

// ImexIdentifier names a publication in the IMEx registry, e.g. pmid/12345.
type ImexIdentifier struct {
	Namespace string `json:"ns" xml:"ns,attr"`
	Accession string `json:"ac" xml:"ac,attr"`
}

// ImexStatus is the curation state of a registered publication.
type ImexStatus string

const (
	ImexNew        ImexStatus = "NEW"
	ImexReserved   ImexStatus = "RESERVED"
	ImexInProgress ImexStatus = "INPROGRESS"
	ImexReleased   ImexStatus = "RELEASED"
	ImexDiscarded  ImexStatus = "DISCARDED"
	ImexIncomplete ImexStatus = "INCOMPLETE"
	ImexProcessed  ImexStatus = "PROCESSED"
)

// Valid reports whether s is a status IMEx Central accepts.
func (s ImexStatus) Valid() bool {
	switch s {
	case ImexNew, ImexReserved, ImexInProgress, ImexReleased, ImexDiscarded, ImexIncomplete, ImexProcessed:
		return true
	}
	return false
}

// ImexPublication is a publication record held by IMEx Central.
type ImexPublication struct {
	Identifier      ImexIdentifier `json:"identifier"`
	ImexAccession   string         `json:"imex_accession,omitempty"`
	Owner           string         `json:"owner,omitempty"`
	Status          ImexStatus     `json:"status"`
	Title           string         `json:"title,omitempty"`
	Author          string         `json:"author,omitempty"`
	CreatedAt       time.Time      `json:"created_at,omitempty"`
	StatusChangedAt time.Time      `json:"status_changed_at,omitempty"`
	AdminUsers      []string       `json:"admin_users,omitempty"`
	AdminGroups     []string       `json:"admin_groups,omitempty"`
}
