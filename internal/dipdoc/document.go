package dipdoc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tfauvel/diptrack/internal/domain"
)

// headingPattern matches the conventional "# DIP 1003: Title" heading.
var headingPattern = regexp.MustCompile(`^#\s+DIP\s+(\d+)\s*[:—-]\s*(.+)$`)

// ParseDocument parses one DIP document. The document is an optional title
// heading, a metadata table with required DIP and Status fields, and a
// verbatim body. All failures are reported as *domain.ParseError so a
// directory load can collect them per file.
func ParseDocument(file string, content []byte) (*domain.Proposal, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	p := &domain.Proposal{SourceFile: file}
	i := 0

	// Skip leading blank lines.
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}

	// Optional title heading.
	if i < len(lines) && strings.HasPrefix(lines[i], "#") {
		p.Title = parseTitle(lines[i])
		i++
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
	}

	// Metadata table: consecutive lines starting with "|".
	tableStart := i
	for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "|") {
		i++
	}
	if i == tableStart {
		return nil, &domain.ParseError{File: file, Reason: "no metadata table"}
	}

	table, err := ParseTable(lines[tableStart:i])
	if err != nil {
		return nil, &domain.ParseError{File: file, Reason: err.Error()}
	}
	if err := applyTable(p, table, file); err != nil {
		return nil, err
	}

	// Body: everything after the table, leading blank lines dropped.
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	p.Body = strings.Join(lines[i:], "\n")

	return p, nil
}

// applyTable copies the metadata fields out of the table into the proposal.
func applyTable(p *domain.Proposal, t *Table, file string) error {
	raw, ok := t.Get("DIP")
	if !ok || raw == "" {
		return &domain.ParseError{File: file, Field: "DIP", Reason: "required field is missing"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return &domain.ParseError{File: file, Field: "DIP", Reason: "not a positive integer: " + strconv.Quote(raw)}
	}
	p.DIP = n

	raw, ok = t.Get("Status")
	if !ok || raw == "" {
		return &domain.ParseError{File: file, Field: "Status", Reason: "required field is missing"}
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return &domain.ParseError{File: file, Field: "Status", Reason: err.Error()}
	}
	p.Status = status

	if raw, ok := t.Get("Author"); ok {
		p.Author = raw
	}
	if raw, ok := t.Get("Review Count"); ok && raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			return &domain.ParseError{File: file, Field: "Review Count", Reason: "not a non-negative integer: " + strconv.Quote(raw)}
		}
		p.ReviewCount = count
	}
	if raw, ok := t.Get("Implementation"); ok {
		p.Implementation = raw
	}

	return nil
}

// parseTitle extracts the title text from a heading line. The conventional
// "# DIP NNNN: Title" form yields just the title; any other heading yields
// its full text.
func parseTitle(line string) string {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(strings.TrimLeft(line, "# "))
}
