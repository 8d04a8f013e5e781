package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridges/internal/blast"
	"bridges/internal/model"
	"bridges/internal/uniprot"
)

func blastCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "blast",
		Short: "Run and inspect EBI NCBI BLAST jobs",
	}
	c.AddCommand(blastRunCmd(s), blastStatusCmd(s), blastHitsCmd(s))
	return c
}

type hitFlags struct {
	minIdentity float64
	maxEvalue   float64
	minLength   int
	taxIDs      string
	organism    string
}

func (f *hitFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.minIdentity, "min-identity", 0, "Minimum identity percentage")
	cmd.Flags().Float64Var(&f.maxEvalue, "max-evalue", 0, "Maximum expectation")
	cmd.Flags().IntVar(&f.minLength, "min-length", 0, "Minimum alignment length")
	cmd.Flags().StringVar(&f.taxIDs, "taxid", "", "Comma separated taxids to keep")
	cmd.Flags().StringVar(&f.organism, "organism", "", "Organism name to keep")
}

func (f *hitFlags) filter() (model.BlastFilter, error) {
	ids, err := parseInts(f.taxIDs)
	if err != nil {
		return model.BlastFilter{}, err
	}
	return model.BlastFilter{
		MinIdentity:    f.minIdentity,
		MaxExpectation: f.maxEvalue,
		MinAlignLength: f.minLength,
		TaxIDs:         ids,
		Organism:       f.organism,
	}, nil
}

func (s *session) blast() *blast.Client {
	return blast.New(s.client(blast.Name, s.cfg.Bridges.BlastURL), s.cfg.Bridges.BlastEmail)
}

func blastRunCmd(s *session) *cobra.Command {
	var (
		req   model.BlastRequest
		file  string
		wait  bool
		hitsF hitFlags
	)

	c := &cobra.Command{
		Use:   "run",
		Short: "Submit a sequence, optionally waiting for its hits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file != "" {
				seq, err := readFirstSequence(file)
				if err != nil {
					return err
				}
				req.Sequence = seq
			}
			if strings.TrimSpace(req.Sequence) == "" {
				return fmt.Errorf("a sequence is required (--sequence or --file)")
			}
			filter, err := hitsF.filter()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			client := s.blast()
			id, err := client.Run(ctx, req)
			if err != nil {
				return err
			}
			if !wait {
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}

			color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "waiting for %s\n", id)
			opts := blast.DefaultWaitOptions()
			if s.cfg.Bridges.BlastPollMax > 0 {
				opts.MaxElapsed = s.cfg.Bridges.BlastPollMax
			}
			if _, err := client.Wait(ctx, id, opts); err != nil {
				return err
			}
			hits, err := client.Hits(ctx, id)
			if err != nil {
				return err
			}
			return printHits(cmd.OutOrStdout(), s.format, blast.Filter(hits, filter))
		},
	}

	c.Flags().StringVarP(&req.Sequence, "sequence", "s", "", "Protein or nucleotide sequence")
	c.Flags().StringVarP(&file, "file", "f", "", "FASTA file; its first record is searched")
	c.Flags().StringVar(&req.Program, "program", "", "BLAST program (default blastp)")
	c.Flags().StringVar(&req.Database, "database", "", "Database to search (default uniprotkb_swissprot)")
	c.Flags().StringVar(&req.SequenceType, "stype", "", "Sequence type: protein|dna|rna (default protein)")
	c.Flags().StringVar(&req.Email, "email", "", "Submitter email (defaults to BLAST_EMAIL)")
	c.Flags().StringVar(&req.Expectation, "exp", "", "Expectation threshold, e.g. 1e-3")
	c.Flags().BoolVar(&wait, "wait", false, "Poll until the job finishes and print its hits")
	hitsF.register(c)
	return c
}

func blastStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status <job-id>",
		Short: "Print the status of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.blast().Status(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func blastHitsCmd(s *session) *cobra.Command {
	var hitsF hitFlags

	c := &cobra.Command{
		Use:   "hits <job-id>",
		Short: "Print the filtered hits of a finished job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := hitsF.filter()
			if err != nil {
				return err
			}
			hits, err := s.blast().Hits(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printHits(cmd.OutOrStdout(), s.format, blast.Filter(hits, filter))
		},
	}
	hitsF.register(c)
	return c
}

func readFirstSequence(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	recs, err := uniprot.ParseFASTA(f)
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", fmt.Errorf("%s: no FASTA records", path)
	}
	return recs[0].Sequence, nil
}
