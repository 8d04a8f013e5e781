package model

// TaxonomyTerm is an NCBI taxonomy node.
type TaxonomyTerm struct {
	TaxID          int      `json:"tax_id"`
	ScientificName string   `json:"scientific_name"`
	CommonName     string   `json:"common_name,omitempty"`
	Mnemonic       string   `json:"mnemonic,omitempty"`
	Rank           string   `json:"rank,omitempty"`
	ParentTaxID    int      `json:"parent_tax_id,omitempty"`
	Lineage        []int    `json:"lineage,omitempty"`
	Synonyms       []string `json:"synonyms,omitempty"`
}
