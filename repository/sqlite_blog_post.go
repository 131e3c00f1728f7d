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

// sqliteBlogPostRepo, BlogPostRepository interface'inin SQLite implementasyonu.
type sqliteBlogPostRepo struct {
	db database.TxQuerier
}

// NewSQLiteBlogPostRepo, constructor — interface döner.
func NewSQLiteBlogPostRepo(db database.TxQuerier) BlogPostRepository {
	return &sqliteBlogPostRepo{db: db}
}

const blogPostColumns = `id, title, slug, excerpt, content, author, image_url, published, created_at, updated_at`

func scanBlogPost(row interface{ Scan(...any) error }, post *models.BlogPost) error {
	return row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content,
		&post.Author, &post.ImageURL, &post.Published, &post.CreatedAt, &post.UpdatedAt,
	)
}

func (r *sqliteBlogPostRepo) Create(ctx context.Context, post *models.BlogPost) error {
	post.ID = uuid.NewString()

	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, content, author, image_url, published)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Author,
		post.ImageURL,
		post.Published,
	).Scan(&post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return pkg.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *sqliteBlogPostRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = ?`

	post := &models.BlogPost{}
	err := scanBlogPost(r.db.QueryRowContext(ctx, query, id), post)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}

	return post, nil
}

func (r *sqliteBlogPostRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = ?`

	post := &models.BlogPost{}
	err := scanBlogPost(r.db.QueryRowContext(ctx, query, slug), post)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}

	return post, nil
}

func (r *sqliteBlogPostRepo) getList(ctx context.Context, query string) ([]models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := scanBlogPost(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan blog post row: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog post rows: %w", err)
	}

	return posts, nil
}

func (r *sqliteBlogPostRepo) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	return r.getList(ctx, `SELECT `+blogPostColumns+` FROM blog_posts ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteBlogPostRepo) GetPublished(ctx context.Context) ([]models.BlogPost, error) {
	return r.getList(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE published = 1 ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteBlogPostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = ?)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists == 1, nil
}

func (r *sqliteBlogPostRepo) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = ?, excerpt = ?, content = ?, author = ?, image_url = ?, published = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Excerpt, post.Content, post.Author,
		post.ImageURL, post.Published, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
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

func (r *sqliteBlogPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
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

func (r *sqliteBlogPostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}
