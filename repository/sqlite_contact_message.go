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

// sqliteContactMessageRepo, ContactMessageRepository interface'inin SQLite implementasyonu.
type sqliteContactMessageRepo struct {
	db database.TxQuerier
}

// NewSQLiteContactMessageRepo, constructor — interface döner.
func NewSQLiteContactMessageRepo(db database.TxQuerier) ContactMessageRepository {
	return &sqliteContactMessageRepo{db: db}
}

func (r *sqliteContactMessageRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	message.ID = uuid.NewString()
	message.Read = false

	query := `
		INSERT INTO contact_messages (id, name, email, subject, body, read)
		VALUES (?, ?, ?, ?, ?, 0)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Body,
	).Scan(&message.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (r *sqliteContactMessageRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, body, read, created_at
		FROM contact_messages WHERE id = ?`

	message := &models.ContactMessage{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&message.ID, &message.Name, &message.Email, &message.Subject,
		&message.Body, &message.Read, &message.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message by id: %w", err)
	}

	return message, nil
}

func (r *sqliteContactMessageRepo) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, body, read, created_at
		FROM contact_messages ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject,
			&m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", err)
	}

	return messages, nil
}

func (r *sqliteContactMessageRepo) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact message read: %w", err)
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

func (r *sqliteContactMessageRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
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

func (r *sqliteContactMessageRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}

func (r *sqliteContactMessageRepo) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE read = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread contact messages: %w", err)
	}
	return count, nil
}
