package cli

import (
	"context"

	"github.com/spf13/cobra"

	"bridges/internal/model"
	"bridges/internal/ols"
)

func olsCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "ols",
		Short: "Browse ontologies through the Ontology Lookup Service",
	}

	var opts ols.SearchOptions
	search := &cobra.Command{
		Use:   "search <text>",
		Short: "Search terms by name and synonyms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, _, err := s.ols().Search(commandContext(cmd), args[0], opts)
			if err != nil {
				return err
			}
			return printTerms(cmd.OutOrStdout(), s.format, terms)
		},
	}
	search.Flags().StringVarP(&opts.Ontology, "ontology", "o", "", "Restrict to one ontology")
	search.Flags().IntVar(&opts.Rows, "rows", 20, "Maximum results")
	search.Flags().BoolVar(&opts.Exact, "exact", false, "Exact matches only")

	c.AddCommand(
		&cobra.Command{
			Use:   "term <ontology> <id>",
			Short: "Print one term",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := s.ols().Term(commandContext(cmd), args[0], args[1])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), s.format, t)
			},
		},
		olsListCmd(s, "children", "Direct children of a term", (*ols.Client).Children),
		olsListCmd(s, "parents", "Direct parents of a term", (*ols.Client).Parents),
		&cobra.Command{
			Use:   "roots <ontology>",
			Short: "Root terms of an ontology",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				terms, err := s.ols().Roots(commandContext(cmd), args[0])
				if err != nil {
					return err
				}
				return printTerms(cmd.OutOrStdout(), s.format, terms)
			},
		},
		search,
	)
	return c
}

func olsListCmd(s *session, use, short string, fn func(*ols.Client, context.Context, string, string) ([]model.OntologyTerm, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <ontology> <id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := fn(s.ols(), commandContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			return printTerms(cmd.OutOrStdout(), s.format, terms)
		},
	}
}

func (s *session) ols() *ols.Client {
	c, ttl := s.cache()
	return ols.New(s.client(ols.Name, s.cfg.Bridges.OLSURL), c, ttl)
}
