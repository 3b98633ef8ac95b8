package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tfauvel/diptrack/internal/cli/formatter"
)

func newNewCmd(app *App) *cobra.Command {
	var dip int
	var title, author, dir string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a skeleton proposal document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if dir == "" {
				dir = app.DocsDir
			}

			// Flags take precedence; whatever is missing is collected
			// interactively. A missing number alone never needs the
			// wizard, the next unused one serves.
			if title == "" || author == "" {
				if !app.IsInteractive() {
					return fmt.Errorf("--title and --author are required when not running interactively")
				}
				var err error
				dip, title, author, err = runDraftWizard(ctx, app, dip, title, author)
				if err != nil {
					return err
				}
			} else if dip == 0 {
				var err error
				dip, err = app.Drafts.NextNumber(ctx)
				if err != nil {
					return err
				}
			}

			path, err := app.Drafts.CreateDraft(ctx, dir, dip, title, author)
			if err != nil {
				return err
			}

			fmt.Printf("Created %s (%s)\n", formatter.Bold(fmt.Sprintf("DIP %d", dip)), path)
			fmt.Println(formatter.Dim("Run `diptrack sync` to index it."))
			return nil
		},
	}

	cmd.Flags().IntVar(&dip, "dip", 0, "Proposal number (default: next unused)")
	cmd.Flags().StringVar(&title, "title", "", "Proposal title")
	cmd.Flags().StringVar(&author, "author", "", "Proposal author")
	cmd.Flags().StringVar(&dir, "dir", "", "Document directory (default: the configured docs dir)")

	return cmd
}

// runDraftWizard collects missing draft fields through a huh form.
func runDraftWizard(ctx context.Context, app *App, dip int, title, author string) (int, string, string, error) {
	dipStr := ""
	if dip > 0 {
		dipStr = strconv.Itoa(dip)
	} else if next, err := app.Drafts.NextNumber(ctx); err == nil {
		dipStr = strconv.Itoa(next)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Proposal number").
				Value(&dipStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Title").
				Placeholder("Scoped enum members").
				Value(&title).
				Validate(validateNonEmpty("title")),
			huh.NewInput().
				Title("Author").
				Value(&author).
				Validate(validateNonEmpty("author")),
		),
	).WithTheme(diptrackHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return 0, "", "", err
	}

	n, err := strconv.Atoi(strings.TrimSpace(dipStr))
	if err != nil {
		return 0, "", "", fmt.Errorf("invalid proposal number %q", dipStr)
	}
	return n, strings.TrimSpace(title), strings.TrimSpace(author), nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// diptrackHuhTheme matches the form styling to the formatter palette.
func diptrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
