package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tfauvel/diptrack/internal/cli/formatter"
	"github.com/tfauvel/diptrack/internal/store"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [DIR]",
		Short: "Check proposal documents without touching the index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.DocsDir
			if len(args) == 1 {
				dir = args[0]
			}

			docs, parseErrs, err := store.Load(dir)
			if err != nil {
				return err
			}

			fmt.Printf("%d well-formed document(s) in %s\n", docs.Len(), dir)
			if len(parseErrs) > 0 {
				fmt.Print(formatter.FormatParseErrors(parseErrs))
				return fmt.Errorf("%d document(s) failed validation", len(parseErrs))
			}
			return nil
		},
	}
}
