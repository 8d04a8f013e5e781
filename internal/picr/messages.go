package picr

import (
	"encoding/xml"
	"strings"

	"bridges/internal/model"
)

// Namespace is the target namespace of the PICR accession mapping service.
const Namespace = "http://www.ebi.ac.uk/picr/AccessionMappingService"

type getUPIForAccessionRequest struct {
	XMLName         xml.Name `xml:"http://www.ebi.ac.uk/picr/AccessionMappingService getUPIForAccession"`
	Accession       string   `xml:"accession"`
	AccessionVer    string   `xml:"ac_version"`
	SearchDatabases []string `xml:"searchDatabases"`
	TaxonID         string   `xml:"taxonId"`
	OnlyActive      bool     `xml:"onlyActive"`
}

type getUPIForAccessionResponse struct {
	Entries []upEntry `xml:"getUPIForAccessionReturn"`
}

type getUPIForSequenceRequest struct {
	XMLName         xml.Name `xml:"http://www.ebi.ac.uk/picr/AccessionMappingService getUPIForSequence"`
	Sequence        string   `xml:"sequence"`
	SearchDatabases []string `xml:"searchDatabases"`
	TaxonID         string   `xml:"taxonId"`
	OnlyActive      bool     `xml:"onlyActive"`
}

type getUPIForSequenceResponse struct {
	Entry *upEntry `xml:"getUPIForSequenceReturn"`
}

type getMappedDatabaseNamesRequest struct {
	XMLName xml.Name `xml:"http://www.ebi.ac.uk/picr/AccessionMappingService getMappedDatabaseNames"`
}

type getMappedDatabaseNamesResponse struct {
	Names []string `xml:"mappedDatabases"`
}

type upEntry struct {
	UPI       string     `xml:"UPI"`
	CRC64     string     `xml:"CRC64"`
	Sequence  string     `xml:"sequence"`
	Identical []crossRef `xml:"identicalCrossReferences"`
	Logical   []crossRef `xml:"logicalCrossReferences"`
}

type crossRef struct {
	Accession        string `xml:"accession"`
	AccessionVersion string `xml:"accessionVersion"`
	DatabaseName     string `xml:"databaseName"`
	TaxonID          int    `xml:"taxonId"`
	Deleted          bool   `xml:"deleted"`
}

func (e upEntry) toModel() model.UPEntry {
	out := model.UPEntry{
		UPI:       strings.TrimSpace(e.UPI),
		CRC64:     strings.TrimSpace(e.CRC64),
		Sequence:  strings.Join(strings.Fields(e.Sequence), ""),
		Identical: make([]model.CrossReference, 0, len(e.Identical)),
	}
	for _, x := range e.Identical {
		out.Identical = append(out.Identical, x.toModel(out))
	}
	for _, x := range e.Logical {
		out.Logical = append(out.Logical, x.toModel(out))
	}
	return out
}

func (x crossRef) toModel(e model.UPEntry) model.CrossReference {
	return model.CrossReference{
		Accession:        strings.TrimSpace(x.Accession),
		AccessionVersion: strings.TrimSpace(x.AccessionVersion),
		Database:         strings.TrimSpace(x.DatabaseName),
		TaxID:            x.TaxonID,
		Active:           !x.Deleted,
		UPI:              e.UPI,
		CRC64:            e.CRC64,
	}
}
