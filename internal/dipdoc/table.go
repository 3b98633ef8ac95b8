// Package dipdoc parses DIP documents: a leading markdown metadata table
// followed by free-form body text.
package dipdoc

import (
	"fmt"
	"strings"
)

// TableRow is one key-value row of a metadata table. Key is stored as
// written (a trailing colon is preserved); lookups normalize it.
type TableRow struct {
	Key   string
	Value string
}

// Table is a parsed metadata pipe table. Rows keep document order so that
// serialization reproduces the original layout.
type Table struct {
	Rows []TableRow

	// Header labels when the table carries a "Field | Value" style header
	// row. Empty when the table starts directly with data rows.
	HeaderKey   string
	HeaderValue string
}

// HasHeader reports whether the table carried a header row.
func (t *Table) HasHeader() bool {
	return t.HeaderKey != "" || t.HeaderValue != ""
}

// Get returns the value for a field name. Matching is case-insensitive and
// ignores a trailing colon on the stored key.
func (t *Table) Get(key string) (string, bool) {
	want := fieldKey(key)
	for _, row := range t.Rows {
		if fieldKey(row.Key) == want {
			return row.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing row or appends a new one.
func (t *Table) Set(key, value string) {
	want := fieldKey(key)
	for i, row := range t.Rows {
		if fieldKey(row.Key) == want {
			t.Rows[i].Value = value
			return
		}
	}
	t.Rows = append(t.Rows, TableRow{Key: key, Value: value})
}

// fieldKey normalizes a field name for lookup: trailing colon stripped,
// lowercased, interior whitespace collapsed.
func fieldKey(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ":")
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ParseTable parses consecutive markdown pipe-table lines. Separator rows
// (dashes) are recognized and dropped; a leading non-separator row followed
// by a separator is treated as the header.
func ParseTable(lines []string) (*Table, error) {
	t := &Table{}
	sawSeparator := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") {
			return nil, fmt.Errorf("line %d: not a table row: %q", i+1, line)
		}

		key, value := splitRow(trimmed)
		if isSeparator(key) && isSeparator(value) {
			// The row above the first separator is the header.
			if !sawSeparator && len(t.Rows) == 1 && !t.HasHeader() {
				t.HeaderKey = t.Rows[0].Key
				t.HeaderValue = t.Rows[0].Value
				t.Rows = t.Rows[:0]
			}
			sawSeparator = true
			continue
		}

		t.Rows = append(t.Rows, TableRow{Key: key, Value: value})
	}

	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("table has no data rows")
	}
	return t, nil
}

// splitRow splits "| key | value |" into its two cells. Rows with a single
// cell yield an empty value; extra cells are folded into the value.
func splitRow(line string) (key, value string) {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	key = strings.TrimSpace(cells[0])
	if len(cells) > 1 {
		rest := make([]string, 0, len(cells)-1)
		for _, c := range cells[1:] {
			rest = append(rest, strings.TrimSpace(c))
		}
		value = strings.TrimSpace(strings.Join(rest, " | "))
	}
	return key, value
}

func isSeparator(cell string) bool {
	if cell == "" {
		return false
	}
	for _, r := range cell {
		if r != '-' && r != ':' && r != ' ' {
			return false
		}
	}
	return true
}

// Serialize renders the table in canonical form: cells padded to the widest
// entry per column, a dash separator under the header when one is present.
// Parsing a canonically formatted table and serializing it again yields the
// original text.
func (t *Table) Serialize() string {
	keyWidth := len(t.HeaderKey)
	valWidth := len(t.HeaderValue)
	for _, row := range t.Rows {
		if len(row.Key) > keyWidth {
			keyWidth = len(row.Key)
		}
		if len(row.Value) > valWidth {
			valWidth = len(row.Value)
		}
	}

	var b strings.Builder
	writeRow := func(key, value string) {
		fmt.Fprintf(&b, "| %-*s | %-*s |\n", keyWidth, key, valWidth, value)
	}

	if t.HasHeader() {
		writeRow(t.HeaderKey, t.HeaderValue)
		fmt.Fprintf(&b, "|%s|%s|\n",
			strings.Repeat("-", keyWidth+2),
			strings.Repeat("-", valWidth+2))
	}
	for _, row := range t.Rows {
		writeRow(row.Key, row.Value)
	}
	return b.String()
}
