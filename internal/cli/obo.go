package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bridges/internal/database"
	"bridges/internal/database/migration"
	"bridges/internal/ontology"
	"bridges/internal/repository/postgres"
	"bridges/internal/service"
	"bridges/internal/storage"
)

func oboCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "obo",
		Short: "Read local OBO files and load them into the term store",
	}

	var limit int
	search := &cobra.Command{
		Use:   "search <file> <text>",
		Short: "Search a file by name and synonyms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(args[0])
			if err != nil {
				return err
			}
			return printTerms(cmd.OutOrStdout(), s.format, g.Search(args[1], limit))
		},
	}
	search.Flags().IntVar(&limit, "limit", 20, "Maximum results, 0 for all")

	var descendants bool
	children := &cobra.Command{
		Use:   "children <file> <id>",
		Short: "Direct children of a term, or all descendants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(args[0])
			if err != nil {
				return err
			}
			if _, ok := g.Term(args[1]); !ok {
				return fmt.Errorf("%s: no term %s", args[0], args[1])
			}
			if descendants {
				return printTerms(cmd.OutOrStdout(), s.format, g.Descendants(args[1]))
			}
			return printTerms(cmd.OutOrStdout(), s.format, g.Children(args[1]))
		},
	}
	children.Flags().BoolVar(&descendants, "all", false, "Every descendant, not only direct children")

	var name string
	load := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace an ontology in the Postgres term store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.importOBO(cmd, args[0], name)
		},
	}
	load.Flags().StringVarP(&name, "ontology", "o", "", "Ontology name (defaults to the file's ontology header)")

	c.AddCommand(&cobra.Command{
		Use:   "stats <file>",
		Short: "Print the header and term counts of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ontology.Open(args[0])
			if err != nil {
				return err
			}
			g := ontology.NewGraph(doc.Terms)
			obsolete := 0
			for _, t := range doc.Terms {
				if t.Obsolete {
					obsolete++
				}
			}
			roots := make([]string, 0)
			for _, t := range g.Roots() {
				roots = append(roots, t.ID)
			}
			return printJSON(cmd.OutOrStdout(), s.format, map[string]any{
				"ontology":       doc.Ontology,
				"format_version": doc.FormatVersion,
				"data_version":   doc.DataVersion,
				"terms":          len(doc.Terms),
				"obsolete":       obsolete,
				"typedefs":       doc.Typedefs,
				"roots":          roots,
			})
		},
	}, search, children, load)
	return c
}

func openGraph(path string) (*ontology.Graph, error) {
	doc, err := ontology.Open(path)
	if err != nil {
		return nil, err
	}
	return ontology.NewGraph(doc.Terms), nil
}

// importOBO loads path through the ontology service. The source is archived
// in object storage when MinIO is configured.
func (s *session) importOBO(cmd *cobra.Command, path, name string) error {
	ctx := commandContext(cmd)
	log := s.log()

	if name == "" {
		doc, err := ontology.Open(path)
		if err != nil {
			return err
		}
		name = doc.Ontology
	}

	db, err := database.NewPostgres(s.cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migration.EnsureMigrated(ctx, db, log, s.cfg.Database.Host); err != nil {
		return err
	}

	var store storage.Storage
	if s.cfg.MinIO.Endpoint != "" {
		if store, err = storage.NewMinIO(s.cfg.MinIO, log); err != nil {
			return err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	svc := service.NewOntologyService(store, postgres.NewTermPostgres(db), log)
	res, err := svc.Import(ctx, name, f, filepath.Base(path))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), s.format, res)
}
