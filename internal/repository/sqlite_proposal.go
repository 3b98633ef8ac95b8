package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tfauvel/diptrack/internal/db"
	"github.com/tfauvel/diptrack/internal/domain"
)

// SQLiteProposalRepo implements ProposalRepo against a SQLite index.
type SQLiteProposalRepo struct {
	db db.DBTX
}

// NewSQLiteProposalRepo creates a new SQLiteProposalRepo. The DBTX may be a
// *sql.DB or a transaction handed out by the UnitOfWork.
func NewSQLiteProposalRepo(dbtx db.DBTX) *SQLiteProposalRepo {
	return &SQLiteProposalRepo{db: dbtx}
}

const proposalColumns = `dip, title, author, review_count, implementation, status, body, source_file, created_at, updated_at`

func (r *SQLiteProposalRepo) Upsert(ctx context.Context, p *domain.Proposal) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO proposals (` + proposalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(dip) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			review_count = excluded.review_count,
			implementation = excluded.implementation,
			status = excluded.status,
			body = excluded.body,
			source_file = excluded.source_file,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.DIP,
		p.Title,
		p.Author,
		p.ReviewCount,
		p.Implementation,
		string(p.Status),
		p.Body,
		p.SourceFile,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting proposal %d: %w", p.DIP, err)
	}
	return nil
}

func (r *SQLiteProposalRepo) GetByDIP(ctx context.Context, dip int) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE dip = ?`
	row := r.db.QueryRowContext(ctx, query, dip)

	p, err := scanProposal(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.NotFoundError{DIP: dip}
		}
		return nil, fmt.Errorf("scanning proposal: %w", err)
	}
	return p, nil
}

func (r *SQLiteProposalRepo) List(ctx context.Context) ([]*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY dip`
	return r.queryProposals(ctx, query)
}

func (r *SQLiteProposalRepo) ListByStatus(ctx context.Context, status domain.ProposalStatus) ([]*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE status = ? ORDER BY dip`
	return r.queryProposals(ctx, query, string(status))
}

func (r *SQLiteProposalRepo) SetStatus(ctx context.Context, dip int, status domain.ProposalStatus) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE proposals SET status = ?, updated_at = ? WHERE dip = ?`,
		string(status), now, dip)
	if err != nil {
		return fmt.Errorf("updating status of proposal %d: %w", dip, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status update of proposal %d: %w", dip, err)
	}
	if affected == 0 {
		return &domain.NotFoundError{DIP: dip}
	}
	return nil
}

func (r *SQLiteProposalRepo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM proposals GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting proposals by status: %w", err)
	}
	defer rows.Close()

	byStatus := make(map[domain.ProposalStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		byStatus[domain.ProposalStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}

	// Emit in lifecycle order, skipping statuses with no proposals.
	var counts []StatusCount
	for _, s := range domain.AllStatuses {
		if n, ok := byStatus[s]; ok {
			counts = append(counts, StatusCount{Status: s, Count: n})
		}
	}
	return counts, nil
}

// DeleteMissing removes index rows whose proposal number was not seen in the
// latest sync. The document files themselves are never touched. Returns the
// number of rows removed.
func (r *SQLiteProposalRepo) DeleteMissing(ctx context.Context, seenDIPs []int) (int, error) {
	if len(seenDIPs) == 0 {
		res, err := r.db.ExecContext(ctx, `DELETE FROM proposals`)
		if err != nil {
			return 0, fmt.Errorf("pruning proposals: %w", err)
		}
		n, _ := res.RowsAffected()
		return int(n), nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(seenDIPs)), ",")
	args := make([]any, len(seenDIPs))
	for i, d := range seenDIPs {
		args[i] = d
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM proposals WHERE dip NOT IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("pruning proposals: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *SQLiteProposalRepo) queryProposals(ctx context.Context, query string, args ...any) ([]*domain.Proposal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning proposal row: %w", err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposals: %w", err)
	}
	return proposals, nil
}

// scanProposal scans one proposal row via the given Scan function, shared
// between *sql.Row and *sql.Rows.
func scanProposal(scan func(dest ...any) error) (*domain.Proposal, error) {
	var p domain.Proposal
	var statusStr, createdAtStr, updatedAtStr string

	err := scan(
		&p.DIP, &p.Title, &p.Author, &p.ReviewCount, &p.Implementation,
		&statusStr, &p.Body, &p.SourceFile,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.ProposalStatus(statusStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
