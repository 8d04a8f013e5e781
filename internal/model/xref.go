package model

// CrossReference links a sequence to an accession in another database.
type CrossReference struct {
	Accession        string `json:"accession"`
	AccessionVersion string `json:"accession_version,omitempty"`
	Database         string `json:"database"`
	TaxID            int    `json:"tax_id,omitempty"`
	Active           bool   `json:"active"`
	UPI              string `json:"upi,omitempty"`
	CRC64            string `json:"crc64,omitempty"`
}

// UPEntry is a UniParc record with the cross-references PICR found for it.
type UPEntry struct {
	UPI       string           `json:"upi"`
	CRC64     string           `json:"crc64,omitempty"`
	Sequence  string           `json:"sequence,omitempty"`
	Identical []CrossReference `json:"identical"`
	Logical   []CrossReference `json:"logical,omitempty"`
}
