package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tfauvel/diptrack/internal/db"
	"github.com/tfauvel/diptrack/internal/domain"
)

// SQLiteSyncRunRepo implements SyncRunRepo against a SQLite database.
type SQLiteSyncRunRepo struct {
	db db.DBTX
}

// NewSQLiteSyncRunRepo creates a new SQLiteSyncRunRepo.
func NewSQLiteSyncRunRepo(dbtx db.DBTX) *SQLiteSyncRunRepo {
	return &SQLiteSyncRunRepo{db: dbtx}
}

func (r *SQLiteSyncRunRepo) Create(ctx context.Context, run *domain.SyncRun) error {
	query := `INSERT INTO sync_runs (id, root, document_count, error_count, ran_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Root,
		run.DocumentCount,
		run.ErrorCount,
		run.RanAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sync run: %w", err)
	}
	return nil
}

func (r *SQLiteSyncRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.SyncRun, error) {
	query := `SELECT id, root, document_count, error_count, ran_at
		FROM sync_runs ORDER BY ran_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sync runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.SyncRun
	for rows.Next() {
		var run domain.SyncRun
		var ranAtStr string
		if err := rows.Scan(&run.ID, &run.Root, &run.DocumentCount, &run.ErrorCount, &ranAtStr); err != nil {
			return nil, fmt.Errorf("scanning sync run row: %w", err)
		}
		run.RanAt, err = time.Parse(time.RFC3339, ranAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing ran_at: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}
	return runs, nil
}
