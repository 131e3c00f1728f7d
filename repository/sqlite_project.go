package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/emrekav/ajansly/database"
	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/google/uuid"
)

// sqliteProjectRepo, ProjectRepository interface'inin SQLite implementasyonu.
// tech_stack slice'ı tek bir TEXT kolonunda JSON olarak saklanır; ayrı bir
// join tablosuna gerek yok, liste küçük ve her zaman projeyle birlikte okunur.
type sqliteProjectRepo struct {
	db database.TxQuerier
}

// NewSQLiteProjectRepo, constructor — interface döner.
func NewSQLiteProjectRepo(db database.TxQuerier) ProjectRepository {
	return &sqliteProjectRepo{db: db}
}

// marshalTechStack, nil slice'ı boş JSON dizisine çevirir ki kolonda
// asla NULL veya "null" kalmasın.
func marshalTechStack(stack []string) (string, error) {
	if stack == nil {
		stack = []string{}
	}
	raw, err := json.Marshal(stack)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tech stack: %w", err)
	}
	return string(raw), nil
}

func unmarshalTechStack(raw string, dest *[]string) error {
	if raw == "" {
		*dest = []string{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to unmarshal tech stack: %w", err)
	}
	if *dest == nil {
		*dest = []string{}
	}
	return nil
}

func (r *sqliteProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = uuid.NewString()

	stack, err := marshalTechStack(project.TechStack)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, title, description, category, tech_stack, project_url, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Category,
		stack,
		project.ProjectURL,
		project.ImageURL,
	).Scan(&project.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *sqliteProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT id, title, description, category, tech_stack, project_url, image_url, created_at
		FROM projects WHERE id = ?`

	project := &models.Project{}
	var stack string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID, &project.Title, &project.Description, &project.Category,
		&stack, &project.ProjectURL, &project.ImageURL, &project.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}

	if err := unmarshalTechStack(stack, &project.TechStack); err != nil {
		return nil, err
	}

	return project, nil
}

func (r *sqliteProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, title, description, category, tech_stack, project_url, image_url, created_at
		FROM projects ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var stack string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category,
			&stack, &p.ProjectURL, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		if err := unmarshalTechStack(stack, &p.TechStack); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func (r *sqliteProjectRepo) Update(ctx context.Context, project *models.Project) error {
	stack, err := marshalTechStack(project.TechStack)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET title = ?, description = ?, category = ?, tech_stack = ?, project_url = ?, image_url = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.Category,
		stack, project.ProjectURL, project.ImageURL, project.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

func (r *sqliteProjectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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

func (r *sqliteProjectRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
