package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bridges/internal/imex"
	"bridges/internal/model"
)

func imexCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "imex",
		Short: "Manage publication records in IMEx Central",
	}

	var message string
	status := &cobra.Command{
		Use:   "status <pmid> <status>",
		Short: "Change the curation status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := model.ImexStatus(strings.ToUpper(args[1]))
			if !st.Valid() {
				return fmt.Errorf("invalid imex status %q", args[1])
			}
			return s.imexCall(cmd, func(ctx context.Context, c *imex.Client) (*model.ImexPublication, error) {
				return c.UpdateStatus(ctx, args[0], st, message)
			})
		},
	}
	status.Flags().StringVarP(&message, "message", "m", "", "Comment recorded with the change")

	var create bool
	accession := &cobra.Command{
		Use:   "accession <pmid>",
		Short: "Assign an IMEx accession",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.imexCall(cmd, func(ctx context.Context, c *imex.Client) (*model.ImexPublication, error) {
				return c.AssignImexAccession(ctx, args[0], create)
			})
		},
	}
	accession.Flags().BoolVar(&create, "create", true, "Register the publication first when it is unknown")

	c.AddCommand(
		&cobra.Command{
			Use:   "get <pmid>",
			Short: "Print the record of a publication",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.imexCall(cmd, func(ctx context.Context, c *imex.Client) (*model.ImexPublication, error) {
					return c.Publication(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "create <pmid>",
			Short: "Register a publication",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.imexCall(cmd, func(ctx context.Context, c *imex.Client) (*model.ImexPublication, error) {
					return c.Create(ctx, args[0])
				})
			},
		},
		status,
		accession,
		&cobra.Command{
			Use:   "admin-user <pmid> <user>",
			Short: "Add an admin user to a record",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.imexCall(cmd, func(ctx context.Context, c *imex.Client) (*model.ImexPublication, error) {
					return c.AddAdminUser(ctx, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "admin-group <pmid> <group>",
			Short: "Add an admin group to a record",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.imexCall(cmd, func(ctx context.Context, c *imex.Client) (*model.ImexPublication, error) {
					return c.AddAdminGroup(ctx, args[0], args[1])
				})
			},
		},
	)
	return c
}

func (s *session) imexCall(cmd *cobra.Command, fn func(context.Context, *imex.Client) (*model.ImexPublication, error)) error {
	b := s.cfg.Bridges
	client := imex.New(s.client(imex.Name, b.ImexURL), b.ImexUser, b.ImexPassword)
	pub, err := fn(commandContext(cmd), client)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), s.format, pub)
}
