package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new contact submission. The id, is_read default and
// submitted_at are assigned by the store.
func (r *PostgresRepository) Create(ctx context.Context, s *Submission) error {
	query := `
		INSERT INTO contact_submissions (name, email, message, project_type, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, submitted_at`

	err := r.pool.QueryRow(ctx, query,
		s.Name, s.Email, s.Message, s.ProjectType, s.Phone,
	).Scan(&s.ID, &s.IsRead, &s.SubmittedAt)
	if err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}

	return nil
}

// List retrieves all contact submissions, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Submission, error) {
	query := `
		SELECT id, name, email, message, project_type, phone, is_read, submitted_at
		FROM contact_submissions
		ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := []Submission{}
	for rows.Next() {
		var s Submission
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.ProjectType,
			&s.Phone, &s.IsRead, &s.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contact rows: %w", err)
	}

	return submissions, nil
}

// MarkRead sets is_read on a submission and returns the updated row.
// Idempotent; returns ErrSubmissionNotFound when no row matches the id.
func (r *PostgresRepository) MarkRead(ctx context.Context, id uuid.UUID) (*Submission, error) {
	query := `
		UPDATE contact_submissions
		SET is_read = TRUE
		WHERE id = $1
		RETURNING id, name, email, message, project_type, phone, is_read, submitted_at`

	var s Submission
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email,
		&s.Message, &s.ProjectType, &s.Phone, &s.IsRead, &s.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("marking contact submission read: %w", err)
	}

	return &s, nil
}

// Delete removes a contact submission by its UUID. Deleting an absent row is
// not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contact_submissions WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting contact submission: %w", err)
	}

	return nil
}
