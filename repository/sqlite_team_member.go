package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emrekav/ajansly/database"
	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/google/uuid"
)

// sqliteTeamMemberRepo, TeamMemberRepository interface'inin SQLite implementasyonu.
type sqliteTeamMemberRepo struct {
	db database.TxQuerier
}

// NewSQLiteTeamMemberRepo, constructor — interface döner.
func NewSQLiteTeamMemberRepo(db database.TxQuerier) TeamMemberRepository {
	return &sqliteTeamMemberRepo{db: db}
}

func (r *sqliteTeamMemberRepo) Create(ctx context.Context, member *models.TeamMember) error {
	member.ID = uuid.NewString()

	query := `
		INSERT INTO team_members (id, name, title, bio, linkedin, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		member.ID,
		member.Name,
		member.Title,
		member.Bio,
		member.LinkedIn,
		member.ImageURL,
	).Scan(&member.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}

	return nil
}

func (r *sqliteTeamMemberRepo) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	query := `
		SELECT id, name, title, bio, linkedin, image_url, created_at
		FROM team_members WHERE id = ?`

	member := &models.TeamMember{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Title, &member.Bio,
		&member.LinkedIn, &member.ImageURL, &member.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member by id: %w", err)
	}

	return member, nil
}

func (r *sqliteTeamMemberRepo) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	query := `
		SELECT id, name, title, bio, linkedin, image_url, created_at
		FROM team_members ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Title, &m.Bio,
			&m.LinkedIn, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}

	return members, nil
}

func (r *sqliteTeamMemberRepo) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = ?, title = ?, bio = ?, linkedin = ?, image_url = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		member.Name, member.Title, member.Bio, member.LinkedIn, member.ImageURL, member.ID)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteTeamMemberRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteTeamMemberRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}
