package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
)

// memBlogRepo, BlogPostRepository'nin bellek içi implementasyonu.
// Liste metodları en yeni önce döner — gerçek repo'daki DESC sıralama.
type memBlogRepo struct {
	mu    sync.Mutex
	posts []models.BlogPost
}

func (r *memBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return pkg.ErrAlreadyExists
		}
	}
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	r.posts = append(r.posts, *post)
	return nil
}

func (r *memBlogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (r *memBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			out := p
			return &out, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (r *memBlogRepo) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BlogPost, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		out = append(out, r.posts[i])
	}
	return out, nil
}

func (r *memBlogRepo) GetPublished(ctx context.Context) ([]models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BlogPost, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		if r.posts[i].Published {
			out = append(out, r.posts[i])
		}
	}
	return out, nil
}

func (r *memBlogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *memBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			post.UpdatedAt = time.Now()
			r.posts[i] = *post
			return nil
		}
	}
	return pkg.ErrNotFound
}

func (r *memBlogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return pkg.ErrNotFound
}

func (r *memBlogRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.posts), nil
}

func createRequest(title string) *models.CreateBlogPostRequest {
	return &models.CreateBlogPostRequest{
		Title:     title,
		Content:   "content",
		Author:    "Ayşe",
		Published: true,
	}
}

func TestBlogServiceCreateGeneratesSlug(t *testing.T) {
	svc := NewBlogService(&memBlogRepo{}, &fakeHub{})

	post, err := svc.Create(context.Background(), createRequest("Yeni Web Sitemiz Yayında!"), nil)
	require.NoError(t, err)
	assert.Equal(t, "yeni-web-sitemiz-yayinda", post.Slug)
}

func TestBlogServiceCreateSlugCollision(t *testing.T) {
	repo := &memBlogRepo{}
	svc := NewBlogService(repo, &fakeHub{})

	first, err := svc.Create(context.Background(), createRequest("Duyuru"), nil)
	require.NoError(t, err)
	assert.Equal(t, "duyuru", first.Slug)

	second, err := svc.Create(context.Background(), createRequest("Duyuru"), nil)
	require.NoError(t, err)
	assert.Equal(t, "duyuru-2", second.Slug)

	third, err := svc.Create(context.Background(), createRequest("Duyuru"), nil)
	require.NoError(t, err)
	assert.Equal(t, "duyuru-3", third.Slug)
}

func TestBlogServiceUpdateKeepsSlug(t *testing.T) {
	svc := NewBlogService(&memBlogRepo{}, &fakeHub{})

	post, err := svc.Create(context.Background(), createRequest("İlk Başlık"), nil)
	require.NoError(t, err)
	originalSlug := post.Slug

	newTitle := "Tamamen Farklı Başlık"
	updated, err := svc.Update(context.Background(), post.ID,
		&models.UpdateBlogPostRequest{Title: &newTitle}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Tamamen Farklı Başlık", updated.Title)
	// Yayınlanmış URL kırılmasın: slug asla yeniden üretilmez
	assert.Equal(t, originalSlug, updated.Slug)
}

func TestBlogServicePublishedFilter(t *testing.T) {
	repo := &memBlogRepo{}
	svc := NewBlogService(repo, &fakeHub{})

	_, err := svc.Create(context.Background(), createRequest("Yayında"), nil)
	require.NoError(t, err)

	draft := createRequest("Taslak")
	draft.Published = false
	_, err = svc.Create(context.Background(), draft, nil)
	require.NoError(t, err)

	published, err := svc.GetPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Yayında", published[0].Title)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// En yeni yazı önce
	assert.Equal(t, "Taslak", all[0].Title)
}

func TestBlogServiceGetBySlug(t *testing.T) {
	svc := NewBlogService(&memBlogRepo{}, &fakeHub{})

	_, err := svc.Create(context.Background(), createRequest("Bulunacak Yazı"), nil)
	require.NoError(t, err)

	post, err := svc.GetBySlug(context.Background(), "bulunacak-yazi")
	require.NoError(t, err)
	assert.Equal(t, "Bulunacak Yazı", post.Title)

	// Slug bulunamazsa ID ile denenir — admin paneli ID ile çalışır
	byID, err := svc.GetBySlug(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, byID.ID)

	_, err = svc.GetBySlug(context.Background(), "yok-boyle-bir-yazi")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestBlogServiceBroadcasts(t *testing.T) {
	hub := &fakeHub{}
	svc := NewBlogService(&memBlogRepo{}, hub)

	post, err := svc.Create(context.Background(), createRequest("Duyuru"), nil)
	require.NoError(t, err)

	newTitle := "Duyuru v2"
	_, err = svc.Update(context.Background(), post.ID,
		&models.UpdateBlogPostRequest{Title: &newTitle}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), post.ID))
	assert.Equal(t, []string{"blog_create", "blog_update", "blog_delete"}, hub.ops())
}
