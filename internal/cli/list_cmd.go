package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tfauvel/diptrack/internal/cli/formatter"
	"github.com/tfauvel/diptrack/internal/domain"
)

// parseDIPArg parses a positional proposal number, accepting an optional
// "DIP" prefix ("1003", "DIP1003", "dip 1003").
func parseDIPArg(arg string) (int, error) {
	trimmed := strings.TrimSpace(arg)
	lower := strings.ToLower(trimmed)
	lower = strings.TrimPrefix(lower, "dip")
	lower = strings.TrimSpace(lower)

	n, err := strconv.Atoi(lower)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid proposal number %q", arg)
	}
	return n, nil
}

func newListCmd(app *App) *cobra.Command {
	var status statusFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var proposals []*domain.Proposal
			var err error
			if status.set {
				proposals, err = app.Registry.ListByStatus(ctx, status.status)
			} else {
				proposals, err = app.Registry.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(proposals) == 0 {
				fmt.Println("No proposals found.")
				return nil
			}

			fmt.Println(formatter.FormatProposalList(proposals))
			return nil
		},
	}

	cmd.Flags().Var(&status, "status", "Only show proposals with this status")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var bodyLines int
	var full bool

	cmd := &cobra.Command{
		Use:   "show DIP",
		Short: "Show one proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dip, err := parseDIPArg(args[0])
			if err != nil {
				return err
			}

			p, err := app.Registry.Get(context.Background(), dip)
			if err != nil {
				return err
			}

			lines := bodyLines
			if full {
				lines = len(strings.Split(p.Body, "\n"))
			}
			fmt.Println(formatter.FormatProposalInspect(p, lines))
			return nil
		},
	}

	cmd.Flags().IntVar(&bodyLines, "body", 12, "Body preview lines (0 to hide)")
	cmd.Flags().BoolVar(&full, "full", false, "Show the entire body")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status DIP NEW_STATUS",
		Short: "Move a proposal to a new lifecycle stage",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dip, err := parseDIPArg(args[0])
			if err != nil {
				return err
			}

			// Multi-word statuses like "Formal Review" may arrive as
			// separate arguments.
			raw := strings.Join(args[1:], " ")

			p, err := app.Registry.SetStatus(context.Background(), dip, raw)
			if err != nil {
				return err
			}

			fmt.Printf("%s is now %s\n", p.Label(), formatter.StatusPill(p.Status))
			return nil
		},
	}
}
