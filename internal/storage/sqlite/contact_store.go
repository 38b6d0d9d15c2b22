package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/softsell/site/backend/internal/model/contact"
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	company      TEXT NOT NULL,
	license_type TEXT NOT NULL,
	message      TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TEXT NOT NULL
);`

// Fixed-width UTC timestamps so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ContactStore keeps contact submissions in a SQLite database.
type ContactStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*ContactStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create contact_submissions table: %w", err)
	}
	return &ContactStore{db: db}, nil
}

// Close releases the database handle.
func (s *ContactStore) Close() error {
	return s.db.Close()
}

// Save inserts a submission.
func (s *ContactStore) Save(ctx context.Context, sub contact.Submission) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, company, license_type, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Form.Name, sub.Form.Email, sub.Form.Company, sub.Form.LicenseType, sub.Form.Message,
		sub.Status, sub.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert submission %s: %w", sub.ID, err)
	}
	return nil
}

// Get loads a submission by id.
func (s *ContactStore) Get(ctx context.Context, id string) (contact.Submission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, company, license_type, message, status, created_at
		 FROM contact_submissions WHERE id = ?`, id)

	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Submission{}, contact.ErrSubmissionNotFound
	}
	return sub, err
}

// List returns every submission, oldest first.
func (s *ContactStore) List(ctx context.Context) ([]contact.Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, company, license_type, message, status, created_at
		 FROM contact_submissions ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []contact.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (contact.Submission, error) {
	var (
		sub       contact.Submission
		createdAt string
	)
	err := row.Scan(&sub.ID, &sub.Form.Name, &sub.Form.Email, &sub.Form.Company,
		&sub.Form.LicenseType, &sub.Form.Message, &sub.Status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return contact.Submission{}, err
		}
		return contact.Submission{}, fmt.Errorf("scan submission: %w", err)
	}

	sub.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return sub, nil
}

var _ contact.Store = (*ContactStore)(nil)
