package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tfauvel/diptrack/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored lifecycle indicator for a proposal status.
func StatusPill(status domain.ProposalStatus) string {
	switch status {
	case domain.StatusDraft:
		return StyleBlue.Render("○ Draft")
	case domain.StatusCommunityReview:
		return StyleYellow.Render("◐ Community Review")
	case domain.StatusFormalReview:
		return StyleYellow.Render("● Formal Review")
	case domain.StatusAccepted:
		return StyleGreen.Render("✔ Accepted")
	case domain.StatusRejected:
		return StyleRed.Render("✖ Rejected")
	case domain.StatusFinal:
		return StyleGreen.Render("★ Final")
	case domain.StatusPostponed:
		return StyleDim.Render("⏸ Postponed")
	case domain.StatusSuperseded:
		return StyleDim.Render("↪ Superseded")
	case domain.StatusWithdrawn:
		return StyleDim.Render("⊘ Withdrawn")
	default:
		return StyleDim.Render(string(status))
	}
}

// StatusStyle returns the style used for a status, for callers that color
// their own text.
func StatusStyle(status domain.ProposalStatus) lipgloss.Style {
	switch status {
	case domain.StatusAccepted, domain.StatusFinal:
		return StyleGreen
	case domain.StatusCommunityReview, domain.StatusFormalReview:
		return StyleYellow
	case domain.StatusRejected:
		return StyleRed
	case domain.StatusDraft:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
