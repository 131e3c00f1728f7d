package repository

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// BlogPostRepository, blog yazıları için veri erişim sözleşmesi.
//
// İki liste metodu vardır: GetAll (admin paneli, taslaklar dahil) ve
// GetPublished (herkese açık site, sadece published=true). İkisi de
// en yeni yazı önce olacak şekilde sıralar.
//
// Slug benzersizdir; Create slug çakışmasında pkg.ErrAlreadyExists döner,
// benzersiz slug üretme sorumluluğu servis katmanındadır.
type BlogPostRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	GetPublished(ctx context.Context) ([]models.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
