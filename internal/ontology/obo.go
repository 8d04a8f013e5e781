// Package ontology reads OBO flat files and answers graph and text queries
// over the terms they define.
package ontology

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/pgzip"

	"bridges/internal/model"
)

// Document is a parsed OBO file.
type Document struct {
	FormatVersion    string
	DataVersion      string
	Ontology         string
	DefaultNamespace string
	Terms            []model.OntologyTerm
	Typedefs         []Typedef
}

// Typedef is a relationship type declared in a [Typedef] stanza.
type Typedef struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	IsTransitive bool   `json:"is_transitive,omitempty"`
}

// Open parses the OBO file at path. Files ending in .gz are decompressed.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode parses r, decompressing it first when name ends in .gz.
func Decode(r io.Reader, name string) (*Document, error) {
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		zr, err := pgzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	}
	return Parse(r)
}

type stanza int

const (
	stanzaHeader stanza = iota
	stanzaTerm
	stanzaTypedef
	stanzaOther
)

// Parse reads an OBO 1.2/1.4 document. Unknown tags and stanza types are
// skipped. Terms keep their file order.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}

	var (
		kind    = stanzaHeader
		term    *model.OntologyTerm
		typedef *Typedef
	)
	flush := func() {
		if term != nil && term.ID != "" {
			doc.Terms = append(doc.Terms, *term)
		}
		if typedef != nil && typedef.ID != "" {
			doc.Typedefs = append(doc.Typedefs, *typedef)
		}
		term, typedef = nil, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '!' {
			continue
		}

		if line[0] == '[' && line[len(line)-1] == ']' {
			flush()
			switch line {
			case "[Term]":
				kind = stanzaTerm
				term = &model.OntologyTerm{}
			case "[Typedef]":
				kind = stanzaTypedef
				typedef = &Typedef{}
			default:
				kind = stanzaOther
			}
			continue
		}

		tag, value, ok := splitTag(line)
		if !ok {
			return nil, fmt.Errorf("line %d: malformed tag-value pair %q", lineNo, line)
		}

		switch kind {
		case stanzaHeader:
			switch tag {
			case "format-version":
				doc.FormatVersion = value
			case "data-version":
				doc.DataVersion = value
			case "ontology":
				doc.Ontology = value
			case "default-namespace":
				doc.DefaultNamespace = value
			}
		case stanzaTerm:
			applyTermTag(term, tag, value)
		case stanzaTypedef:
			switch tag {
			case "id":
				typedef.ID = value
			case "name":
				typedef.Name = value
			case "is_transitive":
				typedef.IsTransitive = value == "true"
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obo: %w", err)
	}
	flush()

	hasChildren := make(map[string]bool)
	for _, t := range doc.Terms {
		for _, p := range t.Parents {
			hasChildren[p] = true
		}
	}
	for i := range doc.Terms {
		t := &doc.Terms[i]
		t.Ontology = doc.Ontology
		if t.Namespace == "" {
			t.Namespace = doc.DefaultNamespace
		}
		t.HasChildren = hasChildren[t.ID]
	}
	return doc, nil
}

func applyTermTag(t *model.OntologyTerm, tag, value string) {
	switch tag {
	case "id":
		t.ID = value
	case "name":
		t.Name = value
	case "def":
		t.Definition = quoted(value)
	case "comment":
		t.Comment = value
	case "namespace":
		t.Namespace = value
	case "synonym":
		if s := quoted(value); s != "" {
			t.Synonyms = append(t.Synonyms, s)
		}
	case "xref":
		if f := strings.Fields(value); len(f) > 0 {
			t.Xrefs = append(t.Xrefs, f[0])
		}
	case "is_a":
		t.Parents = append(t.Parents, value)
	case "relationship":
		if f := strings.Fields(value); len(f) >= 2 {
			t.Relations = append(t.Relations, model.TermRelation{Type: f[0], TargetID: f[1]})
		}
	case "is_obsolete":
		t.Obsolete = value == "true"
	case "replaced_by":
		t.ReplacedBy = value
	case "alt_id":
		t.AltIDs = append(t.AltIDs, value)
	}
}

// splitTag splits "tag: value ! comment {modifiers}" into tag and the bare value.
func splitTag(line string) (string, string, bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	tag := strings.TrimSpace(line[:i])
	value := stripTrailing(strings.TrimSpace(line[i+1:]))
	return tag, value, true
}

// stripTrailing removes an unquoted "!" comment and a trailing {...}
// modifier block.
func stripTrailing(v string) string {
	inQuote, escaped := false, false
	for i, r := range v {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case r == '!' && !inQuote:
			v = v[:i]
			return stripModifiers(strings.TrimSpace(v))
		}
	}
	return stripModifiers(strings.TrimSpace(v))
}

func stripModifiers(v string) string {
	if !strings.HasSuffix(v, "}") {
		return v
	}
	inQuote, escaped := false, false
	open := -1
	for i, r := range v {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case r == '{' && !inQuote:
			open = i
		}
	}
	if open < 0 {
		return v
	}
	return strings.TrimSpace(v[:open])
}

// quoted returns the first double-quoted string of v with OBO escapes
// resolved, or v itself when it holds no quotes.
func quoted(v string) string {
	if !strings.HasPrefix(v, `"`) {
		return v
	}
	var b strings.Builder
	escaped := false
	for _, r := range v[1:] {
		if escaped {
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			return b.String()
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TermIDs returns the ids of the document's terms, sorted.
func (d *Document) TermIDs() []string {
	ids := make([]string, 0, len(d.Terms))
	for _, t := range d.Terms {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}
