package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"

	"bridges/internal/model"
)

// printJSON writes v as indented JSON, colored unless color is disabled.
// The json format always prints compact uncolored JSON.
func printJSON(w io.Writer, format string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "pretty", "":
		out := pretty.Pretty(b)
		if !color.NoColor {
			out = pretty.Color(out, nil)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// printHits writes one line per hit. Identities of 90% and more are green,
// below 50% red.
func printHits(w io.Writer, format string, hits []model.BlastHit) error {
	if format != "pretty" && format != "" {
		return printJSON(w, format, hits)
	}
	if len(hits) == 0 {
		fmt.Fprintln(w, "(no hits)")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, h := range hits {
		ident := fmt.Sprintf("%6.2f%%", h.Identity)
		switch {
		case h.Identity >= 90:
			ident = green(ident)
		case h.Identity >= 50:
			ident = yellow(ident)
		default:
			ident = red(ident)
		}
		fmt.Fprintf(w, "%3d  %-12s %s  e=%-9.3g len=%-5d %s\n",
			h.Number, h.Accession, ident, h.Expectation, h.AlignLength, h.Description)
	}
	return nil
}

// printTerms writes id and name per term, obsolete terms dimmed.
func printTerms(w io.Writer, format string, terms []model.OntologyTerm) error {
	if format != "pretty" && format != "" {
		return printJSON(w, format, terms)
	}
	if len(terms) == 0 {
		fmt.Fprintln(w, "(no terms)")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	for _, t := range terms {
		line := fmt.Sprintf("%s  %s", bold(t.ID), t.Name)
		if t.Obsolete {
			line = faint(line + " (obsolete)")
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func parseInts(csv string) ([]int, error) {
	var out []int
	for _, s := range strings.Split(csv, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		out = append(out, n)
	}
	return out, nil
}
