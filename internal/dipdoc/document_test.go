package dipdoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfauvel/diptrack/internal/domain"
)

const sampleDoc = `# DIP 1003: Remove the implicit with-statement lookup

| Field           | Value          |
|-----------------|----------------|
| DIP:            | 1003           |
| Review Count:   | 1              |
| Author:         | A. Hejlsberg   |
| Implementation: | https://example.org/pr/42 |
| Status:         | Accepted       |

## Abstract

Lookup inside a with-statement currently shadows locals.

` + "```" + `
with (expr) { x = 1; }
` + "```" + `

## Grammar

- WithStatement: with ( Expression ) ScopeStatement
+ WithStatement: with ( Expression ) BlockStatement

[pr42]: https://example.org/pr/42
`

func TestParseDocument(t *testing.T) {
	p, err := ParseDocument("1003.md", []byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, 1003, p.DIP)
	assert.Equal(t, "Remove the implicit with-statement lookup", p.Title)
	assert.Equal(t, "A. Hejlsberg", p.Author)
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, "https://example.org/pr/42", p.Implementation)
	assert.Equal(t, domain.StatusAccepted, p.Status)
	assert.Equal(t, "1003.md", p.SourceFile)

	// Body is verbatim: fences, grammar diff lines, and reference links
	// survive untouched.
	assert.Contains(t, p.Body, "## Abstract")
	assert.Contains(t, p.Body, "with (expr) { x = 1; }")
	assert.Contains(t, p.Body, "+ WithStatement: with ( Expression ) BlockStatement")
	assert.Contains(t, p.Body, "[pr42]: https://example.org/pr/42")
	assert.NotContains(t, p.Body, "| DIP:")
}

func TestParseDocument_NoHeading(t *testing.T) {
	doc := "| DIP:    | 22    |\n| Status: | Draft |\n\nBody text.\n"
	p, err := ParseDocument("22.md", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 22, p.DIP)
	assert.Empty(t, p.Title)
	assert.Equal(t, domain.StatusDraft, p.Status)
	assert.Equal(t, "Body text.\n", p.Body)
}

func TestParseDocument_PlainHeading(t *testing.T) {
	doc := "# Scoped enum members\n\n| DIP:    | 44    |\n| Status: | Draft |\n"
	p, err := ParseDocument("44.md", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Scoped enum members", p.Title)
}

func TestParseDocument_MissingTable(t *testing.T) {
	_, err := ParseDocument("bad.md", []byte("# Just a heading\n\nProse only.\n"))
	var perr *domain.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.md", perr.File)
	assert.Contains(t, perr.Reason, "no metadata table")
}

func TestParseDocument_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"no DIP", "| Author: | X |\n| Status: | Draft |\n", "DIP"},
		{"no status", "| DIP: | 5 |\n| Author: | X |\n", "Status"},
		{"bad DIP", "| DIP: | abc |\n| Status: | Draft |\n", "DIP"},
		{"negative DIP", "| DIP: | -3 |\n| Status: | Draft |\n", "DIP"},
		{"bad status", "| DIP: | 5 |\n| Status: | Shipped |\n", "Status"},
		{"bad review count", "| DIP: | 5 |\n| Review Count: | many |\n| Status: | Draft |\n", "Review Count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument("x.md", []byte(tt.doc))
			var perr *domain.ParseError
			require.True(t, errors.As(err, &perr), "want ParseError, got %v", err)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestParseDocument_CRLF(t *testing.T) {
	doc := "| DIP: | 9 |\r\n| Status: | Final |\r\n\r\nBody.\r\n"
	p, err := ParseDocument("9.md", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 9, p.DIP)
	assert.Equal(t, domain.StatusFinal, p.Status)
}
