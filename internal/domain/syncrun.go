package domain

import "time"

// SyncRun records one ingest of a document directory into the index.
type SyncRun struct {
	ID            string
	Root          string
	DocumentCount int
	ErrorCount    int
	RanAt         time.Time
}
