package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bridges/internal/taxonomy"
)

func taxonomyCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "taxonomy",
		Short: "Look up NCBI taxonomy nodes",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "get <taxid>",
			Short: "Print a taxon; -1..-5 are the IntAct pseudo taxids",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseTaxID(args[0])
				if err != nil {
					return err
				}
				t, err := s.taxonomy().Term(commandContext(cmd), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), s.format, t)
			},
		},
		&cobra.Command{
			Use:   "children <taxid>",
			Short: "Print the direct children of a taxon",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseTaxID(args[0])
				if err != nil {
					return err
				}
				children, err := s.taxonomy().Children(commandContext(cmd), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), s.format, children)
			},
		},
	)
	return c
}

func parseTaxID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid taxid %q", s)
	}
	return id, nil
}

func (s *session) taxonomy() *taxonomy.Client {
	c, ttl := s.cache()
	return taxonomy.New(s.client(taxonomy.Name, s.cfg.Bridges.UniProtURL), c, ttl)
}
