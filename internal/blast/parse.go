package blast

import (
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"bridges/internal/model"
)

// EBI sequence similarity search result document. Element names are matched
// without namespace.
type sssDocument struct {
	XMLName xml.Name `xml:"EBIApplicationResult"`
	Hits    []sssHit `xml:"SequenceSimilaritySearchResult>hits>hit"`
}

type sssHit struct {
	Number      int            `xml:"number,attr"`
	Database    string         `xml:"database,attr"`
	ID          string         `xml:"id,attr"`
	Accession   string         `xml:"ac,attr"`
	Length      int            `xml:"length,attr"`
	Description string         `xml:"description,attr"`
	Alignments  []sssAlignment `xml:"alignments>alignment"`
}

type sssAlignment struct {
	Score       float64 `xml:"score"`
	Bits        float64 `xml:"bits"`
	Expectation float64 `xml:"expectation"`
	Identity    float64 `xml:"identity"`
	Positives   float64 `xml:"positives"`
	Gaps        int     `xml:"gaps"`
	QuerySeq    sssSeq  `xml:"querySeq"`
	MatchSeq    sssSeq  `xml:"matchSeq"`
}

type sssSeq struct {
	Start int    `xml:"start,attr"`
	End   int    `xml:"end,attr"`
	Value string `xml:",chardata"`
}

var (
	organismRe = regexp.MustCompile(`\bOS=(.+?)(?:\s+[A-Z]{2}=|$)`)
	taxIDRe    = regexp.MustCompile(`\bOX=(\d+)`)
)

// ParseXML reads an EBI SSS XML document. Each hit is reported with its best
// (first) alignment; hits without alignments are skipped.
func ParseXML(r io.Reader) ([]model.BlastHit, error) {
	var doc sssDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode blast xml: %w", err)
	}

	hits := make([]model.BlastHit, 0, len(doc.Hits))
	for _, h := range doc.Hits {
		if len(h.Alignments) == 0 {
			continue
		}
		a := h.Alignments[0]
		qs := strings.TrimSpace(a.QuerySeq.Value)
		ms := strings.TrimSpace(a.MatchSeq.Value)

		alignLen := len(qs)
		if alignLen == 0 && a.QuerySeq.End >= a.QuerySeq.Start {
			alignLen = a.QuerySeq.End - a.QuerySeq.Start + 1
		}

		acc := h.Accession
		if acc == "" {
			acc = AccessionFromID(h.ID)
		}
		organism, taxID := organismFromDescription(h.Description)

		hits = append(hits, model.BlastHit{
			Number:      h.Number,
			Database:    h.Database,
			ID:          h.ID,
			Accession:   acc,
			Description: h.Description,
			Length:      h.Length,
			Organism:    organism,
			TaxID:       taxID,
			Score:       a.Score,
			Bits:        a.Bits,
			Expectation: a.Expectation,
			Identity:    a.Identity,
			Positives:   a.Positives,
			Gaps:        a.Gaps,
			AlignLength: alignLen,
			QueryStart:  a.QuerySeq.Start,
			QueryEnd:    a.QuerySeq.End,
			MatchStart:  a.MatchSeq.Start,
			MatchEnd:    a.MatchSeq.End,
			QuerySeq:    qs,
			MatchSeq:    ms,
		})
	}
	return hits, nil
}

// tabularRow is one line of the 12-column BLAST tabular report.
type tabularRow struct {
	QueryID    string  `csv:"qseqid"`
	SubjectID  string  `csv:"sseqid"`
	Identity   float64 `csv:"pident"`
	Length     int     `csv:"length"`
	Mismatches int     `csv:"mismatch"`
	GapOpens   int     `csv:"gapopen"`
	QueryStart int     `csv:"qstart"`
	QueryEnd   int     `csv:"qend"`
	MatchStart int     `csv:"sstart"`
	MatchEnd   int     `csv:"send"`
	EValue     float64 `csv:"evalue"`
	BitScore   float64 `csv:"bitscore"`
}

// ParseTabular reads tab-separated BLAST output (outfmt 6 / -m 8). Lines
// starting with '#' are comments.
func ParseTabular(r io.Reader) ([]model.BlastHit, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = 12
	cr.TrimLeadingSpace = true

	var rows []tabularRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(cr, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []model.BlastHit{}, nil
		}
		return nil, fmt.Errorf("decode blast tabular: %w", err)
	}

	hits := make([]model.BlastHit, 0, len(rows))
	for i, row := range rows {
		hits = append(hits, model.BlastHit{
			Number:      i + 1,
			ID:          row.SubjectID,
			Accession:   AccessionFromID(row.SubjectID),
			Bits:        row.BitScore,
			Expectation: row.EValue,
			Identity:    row.Identity,
			GapOpens:    row.GapOpens,
			AlignLength: row.Length,
			QueryStart:  row.QueryStart,
			QueryEnd:    row.QueryEnd,
			MatchStart:  row.MatchStart,
			MatchEnd:    row.MatchEnd,
		})
	}
	return hits, nil
}

// AccessionFromID extracts the accession from a FASTA-style identifier such
// as "sp|P12345|CYC_HUMAN" or a prefixed one such as "SP:P12345". Plain
// identifiers are returned unchanged.
func AccessionFromID(id string) string {
	id = strings.TrimSpace(id)
	if parts := strings.Split(id, "|"); len(parts) >= 2 {
		switch parts[0] {
		case "sp", "tr", "gi", "ref", "gb", "emb", "dbj", "pdb":
			return strings.TrimSpace(parts[1])
		}
	}
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[i+1:]
	}
	if f := strings.Fields(id); len(f) > 0 {
		return f[0]
	}
	return id
}

func organismFromDescription(desc string) (string, int) {
	var organism string
	if m := organismRe.FindStringSubmatch(desc); m != nil {
		organism = strings.TrimSpace(m[1])
	}
	var taxID int
	if m := taxIDRe.FindStringSubmatch(desc); m != nil {
		taxID, _ = strconv.Atoi(m[1])
	}
	return organism, taxID
}
