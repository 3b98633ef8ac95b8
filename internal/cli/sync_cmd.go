package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tfauvel/diptrack/internal/cli/formatter"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [DIR]",
		Short: "Index a directory of proposal documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.DocsDir
			if len(args) == 1 {
				dir = args[0]
			}

			result, err := app.Registry.Sync(context.Background(), dir)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSyncResult(result))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Registry.RecentSyncs(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No sync runs recorded.")
				return nil
			}

			headers := []string{"RUN", "ROOT", "DOCS", "ERRORS", "WHEN"}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				id := r.ID
				if len(id) > 8 {
					id = id[:8]
				}
				rows = append(rows, []string{
					formatter.Dim(id),
					r.Root,
					fmt.Sprintf("%d", r.DocumentCount),
					fmt.Sprintf("%d", r.ErrorCount),
					r.RanAt.Local().Format("Jan 2 15:04"),
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show proposal counts per status",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := app.Registry.Summary(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSummary(counts))
			return nil
		},
	}
}
