package cli

import (
	"github.com/spf13/cobra"

	"bridges/internal/citexplore"
)

func pubmedCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "pubmed",
		Short: "Look up publications in Europe PMC",
	}

	var pageSize int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Europe PMC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubs, hits, err := s.citexplore().Search(commandContext(cmd), args[0], pageSize)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, map[string]any{"hit_count": hits, "data": pubs})
		},
	}
	search.Flags().IntVar(&pageSize, "page-size", 25, "Results per page")

	c.AddCommand(&cobra.Command{
		Use:   "get <pmid>",
		Short: "Fetch a publication by PubMed id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := s.citexplore().Publication(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, pub)
		},
	}, search)
	return c
}

func (s *session) citexplore() *citexplore.Client {
	return citexplore.New(s.client(citexplore.Name, s.cfg.Bridges.EuropePMCURL))
}
