package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tfauvel/diptrack/internal/domain"
	"github.com/tfauvel/diptrack/internal/repository"
	"github.com/tfauvel/diptrack/internal/service"
)

// FormatProposalList renders a styled proposal table inside a bordered box.
func FormatProposalList(proposals []*domain.Proposal) string {
	headers := []string{"DIP", "TITLE", "AUTHOR", "STATUS", "REVIEWS"}
	rows := make([][]string, 0, len(proposals))

	for _, p := range proposals {
		reviews := Dim("--")
		if p.ReviewCount > 0 {
			reviews = StyleFg.Render(strconv.Itoa(p.ReviewCount))
		}
		rows = append(rows, []string{
			StyleGreen.Render(strconv.Itoa(p.DIP)),
			Bold(TruncTitle(p.Title, 48)),
			StylePurple.Render(p.Author),
			StatusPill(p.Status),
			reviews,
		})
	}

	return RenderBox("Proposals", RenderTable(headers, rows))
}

// FormatProposalInspect renders a metadata panel and a body preview for one
// proposal.
func FormatProposalInspect(p *domain.Proposal, bodyLines int) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Label()) + "\n")
	if p.Title != "" {
		b.WriteString(StyleFg.Render(p.Title) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS "), StatusPill(p.Status)))
	if p.Author != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("AUTHOR "), StylePurple.Render(p.Author)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("REVIEWS"), StyleFg.Render(strconv.Itoa(p.ReviewCount))))
	if p.Implementation != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("IMPL   "), StyleBlue.Render(p.Implementation)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SOURCE "), Dim(p.SourceFile)))

	if preview := bodyPreview(p.Body, bodyLines); preview != "" {
		b.WriteString("\n" + Header("Body") + "\n" + preview + "\n")
	}

	return RenderBox("", b.String())
}

// FormatSummary renders per-status proposal counts.
func FormatSummary(counts []repository.StatusCount) string {
	if len(counts) == 0 {
		return Dim("Index is empty. Run `diptrack sync DIR` first.")
	}

	total := 0
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		total += c.Count
		rows = append(rows, []string{
			StatusPill(c.Status),
			StyleFg.Render(strconv.Itoa(c.Count)),
		})
	}
	rows = append(rows, []string{Bold("Total"), Bold(strconv.Itoa(total))})

	return RenderBox("Summary", RenderTable([]string{"STATUS", "COUNT"}, rows))
}

// FormatSyncResult renders the outcome of a directory sync.
func FormatSyncResult(result *service.SyncResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Indexed %s from %s",
		pluralize(result.Run.DocumentCount, "proposal"),
		result.Run.Root)
	if result.Pruned > 0 {
		fmt.Fprintf(&b, ", pruned %d stale", result.Pruned)
	}
	b.WriteString("\n")

	if len(result.ParseErrors) > 0 {
		b.WriteString("\n" + FormatParseErrors(result.ParseErrors))
	}
	return b.String()
}

// FormatParseErrors renders per-document load failures.
func FormatParseErrors(errs []*domain.ParseError) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("%s failed to parse:", pluralize(len(errs), "document"))) + "\n")
	for _, e := range errs {
		b.WriteString("  " + StyleRed.Render("✖") + " " + e.Error() + "\n")
	}
	return b.String()
}

// TruncTitle truncates a title to a maximum width with an ellipsis.
// Truncation counts runes, so multi-byte titles are never cut mid-rune.
func TruncTitle(s string, width int) string {
	if s == "" {
		return "--"
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// bodyPreview returns the first n non-empty-prefix lines of a body.
func bodyPreview(body string, n int) string {
	if n <= 0 || body == "" {
		return ""
	}
	lines := strings.Split(body, "\n")
	if len(lines) > n {
		lines = append(lines[:n], Dim(fmt.Sprintf("… (%d more lines)", len(lines)-n)))
	}
	return strings.Join(lines, "\n")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
