package model

// Publication is a literature record resolved from a PubMed identifier.
type Publication struct {
	PubmedID        string   `json:"pubmed_id"`
	PMCID           string   `json:"pmc_id,omitempty"`
	DOI             string   `json:"doi,omitempty"`
	Title           string   `json:"title"`
	Authors         []string `json:"authors"`
	Journal         string   `json:"journal,omitempty"`
	JournalISO      string   `json:"journal_iso,omitempty"`
	ISSN            string   `json:"issn,omitempty"`
	Year            int      `json:"year,omitempty"`
	Volume          string   `json:"volume,omitempty"`
	Issue           string   `json:"issue,omitempty"`
	Pages           string   `json:"pages,omitempty"`
	Abstract        string   `json:"abstract,omitempty"`
	PublicationDate string   `json:"publication_date,omitempty"`
}

// FirstAuthor returns the first listed author or "".
func (p Publication) FirstAuthor() string {
	if len(p.Authors) == 0 {
		return ""
	}
	return p.Authors[0]
}
