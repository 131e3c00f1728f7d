package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// BlogService, blog yazıları iş mantığı interface'i.
//
// GetPublished herkese açık siteyi, GetAll admin panelini besler
// (taslaklar dahil). GetBySlug yayınlanmamış yazıyı da döner — admin
// önizleme linki paylaşabilsin; yayın filtresi liste seviyesindedir.
type BlogService interface {
	GetPublished(ctx context.Context) ([]models.BlogPost, error)
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, req *models.CreateBlogPostRequest, imageURL *string) (*models.BlogPost, error)
	Update(ctx context.Context, id string, req *models.UpdateBlogPostRequest, imageURL *string) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	postRepo repository.BlogPostRepository
	hub      ws.EventPublisher
}

func NewBlogService(postRepo repository.BlogPostRepository, hub ws.EventPublisher) BlogService {
	return &blogService{
		postRepo: postRepo,
		hub:      hub,
	}
}

func (s *blogService) GetPublished(ctx context.Context) ([]models.BlogPost, error) {
	return s.postRepo.GetPublished(ctx)
}

func (s *blogService) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *blogService) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetBySlug önce slug ile arar; bulamazsa ID ile dener.
// Public site okunabilir slug URL'leri kullanır, admin paneli ise ID ile
// çalışır — tek endpoint ikisini de karşılar.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err == nil {
		return post, nil
	}
	if errors.Is(err, pkg.ErrNotFound) {
		return s.postRepo.GetByID(ctx, slug)
	}
	return nil, err
}

func (s *blogService) Create(ctx context.Context, req *models.CreateBlogPostRequest, imageURL *string) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	slug, err := s.uniqueSlug(ctx, models.Slugify(req.Title))
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Author:    req.Author,
		Published: req.Published,
		ImageURL:  imageURL,
	}
	if req.Excerpt != "" {
		post.Excerpt = &req.Excerpt
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("blog", ws.ActionCreate),
		Data: post,
	})

	return post, nil
}

func (s *blogService) Update(ctx context.Context, id string, req *models.UpdateBlogPostRequest, imageURL *string) (*models.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Slug bilinçli olarak yeniden üretilmez — başlık değişse bile
	// yayınlanmış URL'ler kırılmamalı.
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		if *req.Excerpt == "" {
			post.Excerpt = nil
		} else {
			post.Excerpt = req.Excerpt
		}
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if imageURL != nil {
		post.ImageURL = imageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	// updated_at DB'de CURRENT_TIMESTAMP ile değişti — taze halini oku
	post, err = s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("blog", ws.ActionUpdate),
		Data: post,
	})

	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("blog", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}

// uniqueSlug, base slug çakışıyorsa sonuna artan bir sayaç ekler:
// "yeni-hizmetimiz", "yeni-hizmetimiz-2", "yeni-hizmetimiz-3"...
// 100 denemeden sonra pes edilir — pratikte imkânsız ama sonsuz döngü olmaz.
func (s *blogService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; i <= 100; i++ {
		exists, err := s.postRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("%w: could not generate unique slug for %q", pkg.ErrInternal, base)
}
