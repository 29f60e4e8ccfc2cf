package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, title, description, image_url, tags, live_link,
	          is_featured, display_order, created_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new portfolio project. The id and created_at are assigned
// by the store.
func (r *PostgresRepository) Create(ctx context.Context, p *Project) error {
	query := `
		INSERT INTO portfolio_projects (title, description, image_url, tags,
		                                live_link, is_featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.ImageURL, p.Tags,
		p.LiveLink, p.IsFeatured, p.DisplayOrder,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting portfolio project: %w", err)
	}

	return nil
}

// GetByID retrieves a single portfolio project by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM portfolio_projects
		WHERE id = $1`, projectColumns)

	p, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("querying portfolio project: %w", err)
	}

	return p, nil
}

// List retrieves all portfolio projects in display order, manually ordered
// entries first, ties and unordered entries newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM portfolio_projects
		ORDER BY display_order ASC NULLS LAST, created_at DESC`, projectColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing portfolio projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		p, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning portfolio row: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating portfolio rows: %w", err)
	}

	return projects, nil
}

// Update modifies the provided fields on a project and returns the updated
// row. Returns ErrProjectNotFound when no row matches the id.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Project, error) {
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
	if fields.Tags != nil {
		set("tags", *fields.Tags)
	}
	if fields.LiveLink != nil {
		set("live_link", *fields.LiveLink)
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
		UPDATE portfolio_projects
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argIdx, projectColumns)

	p, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating portfolio project: %w", err)
	}

	return p, nil
}

// Delete removes a portfolio project by its UUID. Deleting an absent row is
// not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM portfolio_projects WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting portfolio project: %w", err)
	}

	return nil
}

// SetDisplayOrder sets the display_order of a single portfolio project.
func (r *PostgresRepository) SetDisplayOrder(ctx context.Context, id uuid.UUID, position int) error {
	query := `UPDATE portfolio_projects SET display_order = $1 WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, position, id); err != nil {
		return fmt.Errorf("setting portfolio display order: %w", err)
	}

	return nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Tags, &p.LiveLink,
		&p.IsFeatured, &p.DisplayOrder, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
