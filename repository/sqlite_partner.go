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

// sqlitePartnerRepo, PartnerRepository interface'inin SQLite implementasyonu.
type sqlitePartnerRepo struct {
	db database.TxQuerier
}

// NewSQLitePartnerRepo, constructor — interface döner.
func NewSQLitePartnerRepo(db database.TxQuerier) PartnerRepository {
	return &sqlitePartnerRepo{db: db}
}

func (r *sqlitePartnerRepo) Create(ctx context.Context, partner *models.Partner) error {
	partner.ID = uuid.NewString()

	query := `
		INSERT INTO partners (id, name, website, image_url)
		VALUES (?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		partner.ID,
		partner.Name,
		partner.Website,
		partner.ImageURL,
	).Scan(&partner.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}

	return nil
}

func (r *sqlitePartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	query := `SELECT id, name, website, image_url, created_at FROM partners WHERE id = ?`

	partner := &models.Partner{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&partner.ID, &partner.Name, &partner.Website, &partner.ImageURL, &partner.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get partner by id: %w", err)
	}

	return partner, nil
}

func (r *sqlitePartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) {
	query := `
		SELECT id, name, website, image_url, created_at
		FROM partners ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get partners: %w", err)
	}
	defer rows.Close() // Önemli: rows'u kapatmayı ASLA unutma — aksi halde bağlantı sızar (leak)

	var partners []models.Partner
	for rows.Next() {
		var p models.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Website, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan partner row: %w", err)
		}
		partners = append(partners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", err)
	}

	return partners, nil
}

func (r *sqlitePartnerRepo) Update(ctx context.Context, partner *models.Partner) error {
	query := `UPDATE partners SET name = ?, website = ?, image_url = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		partner.Name, partner.Website, partner.ImageURL, partner.ID)
	if err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
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

func (r *sqlitePartnerRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
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

func (r *sqlitePartnerRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM partners`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count partners: %w", err)
	}
	return count, nil
}
