package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/tfauvel/diptrack/internal/cli"
	"github.com/tfauvel/diptrack/internal/db"
	"github.com/tfauvel/diptrack/internal/repository"
	"github.com/tfauvel/diptrack/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.diptrack/diptrack.db
	dbPath := os.Getenv("DIPTRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".diptrack", "diptrack.db")
	}

	// Determine default document directory
	docsDir := os.Getenv("DIPTRACK_DIR")
	if docsDir == "" {
		// Check for ./dips in the current directory first (a checked-out
		// proposal repository), fall back to the working directory itself.
		if stat, err := os.Stat("./dips"); err == nil && stat.IsDir() {
			docsDir = "./dips"
		} else {
			docsDir = "."
		}
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	proposalRepo := repository.NewSQLiteProposalRepo(database)
	syncRunRepo := repository.NewSQLiteSyncRunRepo(database)

	// Wire unit of work for transactional syncs
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Registry: service.NewRegistryService(proposalRepo, syncRunRepo, uow),
		Drafts:   service.NewDraftService(proposalRepo),
		DocsDir:  docsDir,
	}

	// Detect interactive terminal for the browser and the draft wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
