package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridges/internal/model"
	"bridges/internal/uniprot"
)

func uniprotCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "uniprot",
		Short: "Look up UniProtKB entries",
	}

	var limit int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search UniProtKB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := s.uniprot().Search(commandContext(cmd), args[0], limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, entries)
		},
	}
	search.Flags().IntVar(&limit, "limit", 25, "Maximum results")

	c.AddCommand(&cobra.Command{
		Use:   "entry <accession>",
		Short: "Print an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := s.uniprot().Entry(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, e)
		},
	}, search)
	return c
}

func unisaveCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "unisave",
		Short: "Read archived UniProtKB entry versions",
	}

	var version int
	sequence := &cobra.Command{
		Use:   "sequence <accession>",
		Short: "Print a sequence version as FASTA, the latest by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sv  *model.SequenceVersion
				err error
			)
			if version > 0 {
				sv, err = s.uniprot().SequenceVersion(commandContext(cmd), args[0], version)
			} else {
				sv, err = s.uniprot().LatestSequence(commandContext(cmd), args[0])
			}
			if err != nil {
				return err
			}
			if s.format == "json" {
				return printJSON(cmd.OutOrStdout(), s.format, sv)
			}
			fmt.Fprintf(cmd.OutOrStdout(), ">%s sv=%d ev=%d\n%s\n", sv.Accession, sv.SequenceVersion, sv.EntryVersion, sv.Sequence)
			return nil
		},
	}
	sequence.Flags().IntVar(&version, "version", 0, "Sequence version")

	var since int
	updates := &cobra.Command{
		Use:   "updates <accession>",
		Short: "Sequence versions newer than --since, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svs, err := s.uniprot().SequenceUpdates(commandContext(cmd), args[0], since)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, svs)
		},
	}
	updates.Flags().IntVar(&since, "since", 0, "Last sequence version already known")

	c.AddCommand(&cobra.Command{
		Use:   "versions <accession>",
		Short: "List entry versions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := s.uniprot().Versions(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, versions)
		},
	}, sequence, updates)
	return c
}

func (s *session) uniprot() *uniprot.Client {
	c, ttl := s.cache()
	return uniprot.New(s.client(uniprot.Name, s.cfg.Bridges.UniProtURL), c, ttl)
}
