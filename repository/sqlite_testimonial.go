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

// sqliteTestimonialRepo, TestimonialRepository interface'inin SQLite implementasyonu.
type sqliteTestimonialRepo struct {
	db database.TxQuerier
}

// NewSQLiteTestimonialRepo, constructor — interface döner.
func NewSQLiteTestimonialRepo(db database.TxQuerier) TestimonialRepository {
	return &sqliteTestimonialRepo{db: db}
}

func (r *sqliteTestimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.ID = uuid.NewString()

	query := `
		INSERT INTO testimonials (id, author, company, quote, rating, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		testimonial.ID,
		testimonial.Author,
		testimonial.Company,
		testimonial.Quote,
		testimonial.Rating,
		testimonial.ImageURL,
	).Scan(&testimonial.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

func (r *sqliteTestimonialRepo) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	query := `
		SELECT id, author, company, quote, rating, image_url, created_at
		FROM testimonials WHERE id = ?`

	testimonial := &models.Testimonial{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&testimonial.ID, &testimonial.Author, &testimonial.Company,
		&testimonial.Quote, &testimonial.Rating, &testimonial.ImageURL, &testimonial.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial by id: %w", err)
	}

	return testimonial, nil
}

func (r *sqliteTestimonialRepo) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	// Dikkat: DESC — en yeni yorum listenin başında
	query := `
		SELECT id, author, company, quote, rating, image_url, created_at
		FROM testimonials ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Company,
			&t.Quote, &t.Rating, &t.ImageURL, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonial rows: %w", err)
	}

	return testimonials, nil
}

func (r *sqliteTestimonialRepo) Update(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		UPDATE testimonials
		SET author = ?, company = ?, quote = ?, rating = ?, image_url = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		testimonial.Author, testimonial.Company, testimonial.Quote,
		testimonial.Rating, testimonial.ImageURL, testimonial.ID)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
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

func (r *sqliteTestimonialRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
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

func (r *sqliteTestimonialRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count testimonials: %w", err)
	}
	return count, nil
}
