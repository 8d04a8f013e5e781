package uniprot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FastaRecord is one sequence of a FASTA file.
type FastaRecord struct {
	Header   string
	Sequence string
}

// ParseFASTA reads every record of r. Headers lose their leading '>' and
// sequence lines are joined without whitespace.
func ParseFASTA(r io.Reader) ([]FastaRecord, error) {
	var (
		out []FastaRecord
		cur *FastaRecord
		seq strings.Builder
	)
	flush := func() {
		if cur != nil {
			cur.Sequence = seq.String()
			out = append(out, *cur)
		}
		seq.Reset()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line[0] == ';':
			continue
		case line[0] == '>':
			flush()
			cur = &FastaRecord{Header: strings.TrimSpace(line[1:])}
		default:
			if cur == nil {
				return nil, fmt.Errorf("sequence data before first header")
			}
			seq.WriteString(strings.Join(strings.Fields(line), ""))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}
