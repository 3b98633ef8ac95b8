package cli

import (
	"github.com/spf13/cobra"

	"github.com/tfauvel/diptrack/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Registry service.RegistryService
	Drafts   service.DraftService

	// DocsDir is the default document directory, used when a command is
	// invoked without an explicit DIR argument.
	DocsDir string

	// IsInteractive reports whether stdin is an interactive terminal.
	// The browser and the draft wizard require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "diptrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "diptrack",
		Short: "Registry for design improvement proposals",
	}

	root.AddCommand(
		newSyncCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newStatusCmd(app),
		newValidateCmd(app),
		newNewCmd(app),
		newBrowseCmd(app),
		newHistoryCmd(app),
		newSummaryCmd(app),
	)

	return root
}
