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

// sqliteCareerRepo, CareerRepository interface'inin SQLite implementasyonu.
type sqliteCareerRepo struct {
	db database.TxQuerier
}

// NewSQLiteCareerRepo, constructor — interface döner.
func NewSQLiteCareerRepo(db database.TxQuerier) CareerRepository {
	return &sqliteCareerRepo{db: db}
}

func (r *sqliteCareerRepo) Create(ctx context.Context, career *models.Career) error {
	career.ID = uuid.NewString()

	query := `
		INSERT INTO careers (id, title, department, location, type, description, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		career.ID,
		career.Title,
		career.Department,
		career.Location,
		career.Type,
		career.Description,
		career.Active,
	).Scan(&career.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create career: %w", err)
	}

	return nil
}

func (r *sqliteCareerRepo) GetByID(ctx context.Context, id string) (*models.Career, error) {
	query := `
		SELECT id, title, department, location, type, description, active, created_at
		FROM careers WHERE id = ?`

	career := &models.Career{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&career.ID, &career.Title, &career.Department, &career.Location,
		&career.Type, &career.Description, &career.Active, &career.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get career by id: %w", err)
	}

	return career, nil
}

func (r *sqliteCareerRepo) getList(ctx context.Context, query string) ([]models.Career, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get careers: %w", err)
	}
	defer rows.Close()

	var careers []models.Career
	for rows.Next() {
		var c models.Career
		if err := rows.Scan(&c.ID, &c.Title, &c.Department, &c.Location,
			&c.Type, &c.Description, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan career row: %w", err)
		}
		careers = append(careers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating career rows: %w", err)
	}

	return careers, nil
}

func (r *sqliteCareerRepo) GetAll(ctx context.Context) ([]models.Career, error) {
	return r.getList(ctx, `
		SELECT id, title, department, location, type, description, active, created_at
		FROM careers ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteCareerRepo) GetActive(ctx context.Context) ([]models.Career, error) {
	return r.getList(ctx, `
		SELECT id, title, department, location, type, description, active, created_at
		FROM careers WHERE active = 1 ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteCareerRepo) Update(ctx context.Context, career *models.Career) error {
	query := `
		UPDATE careers
		SET title = ?, department = ?, location = ?, type = ?, description = ?, active = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		career.Title, career.Department, career.Location,
		career.Type, career.Description, career.Active, career.ID)
	if err != nil {
		return fmt.Errorf("failed to update career: %w", err)
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

func (r *sqliteCareerRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM careers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete career: %w", err)
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

func (r *sqliteCareerRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM careers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count careers: %w", err)
	}
	return count, nil
}
