package auditstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hochfrequenz/erp-console/internal/domain"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed audit persistence
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// A single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Write appends an audit record. It makes Store usable as an audit sink.
func (s *Store) Write(ctx context.Context, rec domain.AuditRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auditor (id, ideusu, detusu, fecusu)
		VALUES (?, ?, ?, ?)
	`, rec.ID, rec.User, rec.Detail, rec.Timestamp.UTC())
	return err
}

// ListOptions specifies filters for listing audit records
type ListOptions struct {
	User  string
	Limit int
}

// List returns audit records, newest first
func (s *Store) List(ctx context.Context, opts ListOptions) ([]domain.AuditRecord, error) {
	query := `SELECT id, ideusu, detusu, fecusu FROM auditor WHERE 1=1`
	var args []interface{}

	if opts.User != "" {
		query += " AND ideusu = ?"
		args = append(args, opts.User)
	}

	query += " ORDER BY fecusu DESC, id"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		if err := rows.Scan(&rec.ID, &rec.User, &rec.Detail, &rec.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM auditor`).Scan(&n)
	return n, err
}
