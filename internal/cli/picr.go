package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"bridges/internal/picr"
)

func picrCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "picr",
		Short: "Map protein identifiers through PICR",
	}

	var (
		opts      picr.Options
		databases string
	)
	mapCmd := &cobra.Command{
		Use:   "map <accession>...",
		Short: "Map accessions to UniParc and their SwissProt and TrEMBL cross-references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Databases = splitList(databases)
			byAcc, err := s.picr().MapAccessions(commandContext(cmd), args, opts)
			if err != nil {
				return err
			}
			out := make(map[string]any, len(byAcc))
			for acc, entries := range byAcc {
				out[acc] = map[string]any{
					"swissprot": picr.SwissProtIDs(entries),
					"trembl":    picr.TremblIDs(entries),
					"upis":      picr.UPIs(entries),
				}
			}
			return printJSON(cmd.OutOrStdout(), s.format, out)
		},
	}
	mapCmd.Flags().StringVar(&databases, "database", "", "Comma separated PICR databases, e.g. SWISSPROT,TREMBL")
	mapCmd.Flags().IntVar(&opts.TaxID, "taxid", 0, "Restrict to taxid")
	mapCmd.Flags().BoolVar(&opts.OnlyActive, "only-active", true, "Skip deleted cross-references")

	seqCmd := &cobra.Command{
		Use:   "sequence <sequence>",
		Short: "Map a raw sequence to its UniParc entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Databases = splitList(databases)
			e, err := s.picr().MapSequence(commandContext(cmd), args[0], opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, e)
		},
	}
	seqCmd.Flags().StringVar(&databases, "database", "", "Comma separated PICR databases")
	seqCmd.Flags().IntVar(&opts.TaxID, "taxid", 0, "Restrict to taxid")
	seqCmd.Flags().BoolVar(&opts.OnlyActive, "only-active", true, "Skip deleted cross-references")

	c.AddCommand(mapCmd, seqCmd, &cobra.Command{
		Use:   "databases",
		Short: "List the databases PICR maps to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbs, err := s.picr().MappedDatabases(commandContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.format, dbs)
		},
	})
	return c
}

func splitList(csv string) []string {
	var out []string
	for _, v := range strings.Split(csv, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *session) picr() *picr.Client {
	return picr.New(s.client(picr.Name, s.cfg.Bridges.PICRURL))
}
