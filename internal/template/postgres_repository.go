package template

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const templateColumns = `id, title, description, image_url, difficulty, tags,
	          live_preview_url, is_featured, display_order, created_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new template record. The id and created_at are assigned
// by the store.
func (r *PostgresRepository) Create(ctx context.Context, t *Template) error {
	query := `
		INSERT INTO project_templates (title, description, image_url, difficulty, tags,
		                               live_preview_url, is_featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		t.Title, t.Description, t.ImageURL, t.Difficulty, t.Tags,
		t.LivePreviewURL, t.IsFeatured, t.DisplayOrder,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}

	return nil
}

// GetByID retrieves a single template by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Template, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM project_templates
		WHERE id = $1`, templateColumns)

	t, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("querying template: %w", err)
	}

	return t, nil
}

// List retrieves all templates in display order, manually ordered entries
// first, ties and unordered entries newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Template, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM project_templates
		ORDER BY display_order ASC NULLS LAST, created_at DESC`, templateColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		t, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}

	return templates, nil
}

// Update modifies the provided fields on a template and returns the updated
// row. Returns ErrTemplateNotFound when no row matches the id.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Template, error) {
	var setClauses []string
	var args []any
	argIdx := 1

	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if fields.Title != nil {
		set("title", *fields.Title)
	}
	if fields.Description != nil {
		set("description", *fields.Description)
	}
	if fields.ImageURL != nil {
		set("image_url", *fields.ImageURL)
	}
	if fields.Difficulty != nil {
		set("difficulty", *fields.Difficulty)
	}
	if fields.Tags != nil {
		set("tags", *fields.Tags)
	}
	if fields.LivePreviewURL != nil {
		set("live_preview_url", *fields.LivePreviewURL)
	}
	if fields.IsFeatured != nil {
		set("is_featured", *fields.IsFeatured)
	}
	if fields.DisplayOrder != nil {
		set("display_order", *fields.DisplayOrder)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE project_templates
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argIdx, templateColumns)

	t, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("updating template: %w", err)
	}

	return t, nil
}

// Delete removes a template by its UUID. Deleting an absent row is not an
// error.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM project_templates WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	return nil
}

// SetDisplayOrder sets the display_order of a single template.
func (r *PostgresRepository) SetDisplayOrder(ctx context.Context, id uuid.UUID, position int) error {
	query := `UPDATE project_templates SET display_order = $1 WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, position, id); err != nil {
		return fmt.Errorf("setting template display order: %w", err)
	}

	return nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*Template, error) {
	var t Template
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.ImageURL, &t.Difficulty, &t.Tags,
		&t.LivePreviewURL, &t.IsFeatured, &t.DisplayOrder, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
