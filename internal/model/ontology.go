package model

// OntologyTerm is a term of an ontology such as PSI-MI or GO, whether read
// from OLS or from a local OBO file.
type OntologyTerm struct {
	Ontology    string         `json:"ontology"`
	ID          string         `json:"id"`
	IRI         string         `json:"iri,omitempty"`
	Name        string         `json:"name"`
	Definition  string         `json:"definition,omitempty"`
	Comment     string         `json:"comment,omitempty"`
	Namespace   string         `json:"namespace,omitempty"`
	Synonyms    []string       `json:"synonyms,omitempty"`
	Xrefs       []string       `json:"xrefs,omitempty"`
	AltIDs      []string       `json:"alt_ids,omitempty"`
	Obsolete    bool           `json:"obsolete"`
	ReplacedBy  string         `json:"replaced_by,omitempty"`
	Parents     []string       `json:"parents,omitempty"`
	Relations   []TermRelation `json:"relations,omitempty"`
	HasChildren bool           `json:"has_children"`
}

// TermRelation is a typed edge such as part_of to another term.
type TermRelation struct {
	Type     string `json:"type"`
	TargetID string `json:"target_id"`
}
