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

// sqliteServiceRepo, ServiceRepository interface'inin SQLite implementasyonu.
type sqliteServiceRepo struct {
	db database.TxQuerier
}

// NewSQLiteServiceRepo, constructor — interface döner.
func NewSQLiteServiceRepo(db database.TxQuerier) ServiceRepository {
	return &sqliteServiceRepo{db: db}
}

func (r *sqliteServiceRepo) Create(ctx context.Context, service *models.Service) error {
	service.ID = uuid.NewString()

	query := `
		INSERT INTO services (id, title, description, icon, image_url)
		VALUES (?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		service.ID,
		service.Title,
		service.Description,
		service.Icon,
		service.ImageURL,
	).Scan(&service.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *sqliteServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	query := `SELECT id, title, description, icon, image_url, created_at FROM services WHERE id = ?`

	service := &models.Service{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&service.ID, &service.Title, &service.Description,
		&service.Icon, &service.ImageURL, &service.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service by id: %w", err)
	}

	return service, nil
}

func (r *sqliteServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT id, title, description, icon, image_url, created_at
		FROM services ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description,
			&s.Icon, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}

	return services, nil
}

func (r *sqliteServiceRepo) Update(ctx context.Context, service *models.Service) error {
	query := `UPDATE services SET title = ?, description = ?, icon = ?, image_url = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		service.Title, service.Description, service.Icon, service.ImageURL, service.ID)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
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

func (r *sqliteServiceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
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

func (r *sqliteServiceRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}
