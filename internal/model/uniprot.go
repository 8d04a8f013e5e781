package model

// UniprotEntry is the subset of a UniProtKB entry the curation platform uses.
type UniprotEntry struct {
	Accession           string           `json:"accession"`
	SecondaryAccessions []string         `json:"secondary_accessions,omitempty"`
	EntryName           string           `json:"entry_name"`
	Reviewed            bool             `json:"reviewed"`
	ProteinName         string           `json:"protein_name,omitempty"`
	GeneNames           []string         `json:"gene_names,omitempty"`
	Organism            string           `json:"organism,omitempty"`
	TaxID               int              `json:"tax_id,omitempty"`
	Sequence            string           `json:"sequence"`
	SequenceLength      int              `json:"sequence_length"`
	CRC64               string           `json:"crc64,omitempty"`
	SequenceVersion     int              `json:"sequence_version"`
	EntryVersion        int              `json:"entry_version"`
	CrossReferences     []CrossReference `json:"cross_references,omitempty"`
}

// SequenceVersion is one archived entry version from UniSave.
type SequenceVersion struct {
	Accession        string `json:"accession"`
	Database         string `json:"database,omitempty"`
	EntryVersion     int    `json:"entry_version"`
	SequenceVersion  int    `json:"sequence_version"`
	FirstRelease     string `json:"first_release,omitempty"`
	FirstReleaseDate string `json:"first_release_date,omitempty"`
	LastRelease      string `json:"last_release,omitempty"`
	Sequence         string `json:"sequence,omitempty"`
}
