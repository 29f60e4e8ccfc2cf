package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memberColumns = `id, name, role, bio, skills, avatar_url, github_url,
	          linkedin_url, color_theme, display_order, created_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new team member. The id and created_at are assigned by
// the store.
func (r *PostgresRepository) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO team_members (name, role, bio, skills, avatar_url, github_url,
		                          linkedin_url, color_theme, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		m.Name, m.Role, m.Bio, m.Skills, m.AvatarURL, m.GitHubURL,
		m.LinkedInURL, m.ColorTheme, m.DisplayOrder,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting team member: %w", err)
	}

	return nil
}

// GetByID retrieves a single team member by their UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM team_members
		WHERE id = $1`, memberColumns)

	m, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("querying team member: %w", err)
	}

	return m, nil
}

// List retrieves all team members ordered by display_order.
func (r *PostgresRepository) List(ctx context.Context) ([]Member, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM team_members
		ORDER BY display_order ASC`, memberColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	members := []Member{}
	for rows.Next() {
		m, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning team member row: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team member rows: %w", err)
	}

	return members, nil
}

// Update modifies the provided fields on a member and returns the updated
// row. Returns ErrMemberNotFound when no row matches the id.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Member, error) {
	var setClauses []string
	var args []any
	argIdx := 1

	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if fields.Name != nil {
		set("name", *fields.Name)
	}
	if fields.Role != nil {
		set("role", *fields.Role)
	}
	if fields.Bio != nil {
		set("bio", *fields.Bio)
	}
	if fields.Skills != nil {
		set("skills", *fields.Skills)
	}
	if fields.AvatarURL != nil {
		set("avatar_url", *fields.AvatarURL)
	}
	if fields.GitHubURL != nil {
		set("github_url", *fields.GitHubURL)
	}
	if fields.LinkedInURL != nil {
		set("linkedin_url", *fields.LinkedInURL)
	}
	if fields.ColorTheme != nil {
		set("color_theme", *fields.ColorTheme)
	}
	if fields.DisplayOrder != nil {
		set("display_order", *fields.DisplayOrder)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE team_members
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argIdx, memberColumns)

	m, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("updating team member: %w", err)
	}

	return m, nil
}

// Delete removes a team member by their UUID. Deleting an absent row is not
// an error.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM team_members WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting team member: %w", err)
	}

	return nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*Member, error) {
	var m Member
	err := row.Scan(
		&m.ID, &m.Name, &m.Role, &m.Bio, &m.Skills, &m.AvatarURL, &m.GitHubURL,
		&m.LinkedInURL, &m.ColorTheme, &m.DisplayOrder, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
