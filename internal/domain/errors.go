package domain

import "fmt"

// ParseError reports a malformed or missing metadata field in one document.
// A load collects these per document; one bad document never aborts the rest.
type ParseError struct {
	File   string
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Reason)
	}
	return fmt.Sprintf("%s: field %s: %s", e.File, e.Field, e.Reason)
}

// NotFoundError reports a lookup miss by proposal number.
type NotFoundError struct {
	DIP int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("DIP %d not found", e.DIP)
}
