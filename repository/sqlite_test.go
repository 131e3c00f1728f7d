package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekav/ajansly/database"
	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
)

// newTestDB, geçici dosyada gerçek bir SQLite veritabanı açar ve
// migration'ları uygular. Her test kendi izole DB'sini alır.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(t.TempDir()+"/test.db", database.EmbeddedMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPartnerRepoCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePartnerRepo(db.Conn)
	ctx := context.Background()

	website := "https://acme.example"
	partner := &models.Partner{Name: "Acme", Website: &website}
	require.NoError(t, repo.Create(ctx, partner))
	assert.NotEmpty(t, partner.ID)
	// RETURNING created_at gerçek DB değerini doldurmalı
	assert.False(t, partner.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	require.NotNil(t, got.Website)
	assert.Equal(t, website, *got.Website)
	assert.Nil(t, got.ImageURL)

	got.Name = "Acme Corp"
	got.Website = nil
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Nil(t, updated.Website)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, partner.ID))
	_, err = repo.GetByID(ctx, partner.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, partner.ID), pkg.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, partner), pkg.ErrNotFound)
}

func TestPartnerRepoInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePartnerRepo(db.Conn)
	ctx := context.Background()

	// Aynı saniye içinde art arda insert: sıralama yine de ekleme
	// sırası olmalı (created_at eşitliğinde rowid kırar)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Partner{Name: fmt.Sprintf("partner-%d", i)}))
	}

	partners, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 5)
	for i, p := range partners {
		assert.Equal(t, fmt.Sprintf("partner-%d", i), p.Name)
	}
}

func TestTestimonialRepoNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteTestimonialRepo(db.Conn)
	ctx := context.Background()

	company := "Acme"
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Testimonial{
			Author:  fmt.Sprintf("author-%d", i),
			Company: &company,
			Quote:   "harika iş çıkardılar",
			Rating:  5,
		}))
	}

	testimonials, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, 3)
	// En yeni kayıt başta
	assert.Equal(t, "author-2", testimonials[0].Author)
	assert.Equal(t, "author-0", testimonials[2].Author)
}

func TestProjectRepoTechStackRoundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteProjectRepo(db.Conn)
	ctx := context.Background()

	project := &models.Project{
		Title:       "Kurumsal Site",
		Description: "Next.js tabanlı kurumsal web sitesi",
		Category:    "web",
		TechStack:   []string{"go", "sqlite", "react"},
	}
	require.NoError(t, repo.Create(ctx, project))

	got, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sqlite", "react"}, got.TechStack)

	// Boş tech stack nil değil boş slice olarak dönmeli
	empty := &models.Project{Title: "Logo", Description: "Logo tasarımı", Category: "design"}
	require.NoError(t, repo.Create(ctx, empty))
	got, err = repo.GetByID(ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.TechStack)
	assert.Empty(t, got.TechStack)
}

func TestBlogPostRepoSlugUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBlogPostRepo(db.Conn)
	ctx := context.Background()

	post := &models.BlogPost{Title: "Duyuru", Slug: "duyuru", Content: "içerik", Author: "Ayşe"}
	require.NoError(t, repo.Create(ctx, post))
	assert.False(t, post.UpdatedAt.IsZero())

	dup := &models.BlogPost{Title: "Duyuru", Slug: "duyuru", Content: "içerik", Author: "Ayşe"}
	assert.ErrorIs(t, repo.Create(ctx, dup), pkg.ErrAlreadyExists)

	exists, err := repo.SlugExists(ctx, "duyuru")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.SlugExists(ctx, "baska-slug")
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := repo.GetBySlug(ctx, "duyuru")
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestBlogPostRepoPublishedFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteBlogPostRepo(db.Conn)
	ctx := context.Background()

	published := &models.BlogPost{Title: "Yayında", Slug: "yayinda", Content: "c", Author: "a", Published: true}
	draft := &models.BlogPost{Title: "Taslak", Slug: "taslak", Content: "c", Author: "a", Published: false}
	require.NoError(t, repo.Create(ctx, published))
	require.NoError(t, repo.Create(ctx, draft))

	visible, err := repo.GetPublished(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "yayinda", visible[0].Slug)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestContactMessageRepoUnread(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteContactMessageRepo(db.Conn)
	ctx := context.Background()

	m1 := &models.ContactMessage{Name: "a", Email: "a@example.com", Body: "merhaba"}
	m2 := &models.ContactMessage{Name: "b", Email: "b@example.com", Body: "selam"}
	require.NoError(t, repo.Create(ctx, m1))
	require.NoError(t, repo.Create(ctx, m2))

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, repo.MarkRead(ctx, m1.ID))
	unread, err = repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	got, err := repo.GetByID(ctx, m1.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	// En yeni mesaj önce
	messages, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, m2.ID, messages[0].ID)
}

func TestSessionRepoLifecycle(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewSQLiteUserRepo(db.Conn)
	sessionRepo := NewSQLiteSessionRepo(db.Conn)
	ctx := context.Background()

	user := &models.User{Username: "admin", PasswordHash: "hash"}
	require.NoError(t, userRepo.Create(ctx, user))

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: "token-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	require.NoError(t, sessionRepo.Create(ctx, session))

	got, err := sessionRepo.GetByRefreshToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	require.NoError(t, sessionRepo.DeleteByID(ctx, got.ID))
	_, err = sessionRepo.GetByRefreshToken(ctx, "token-1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestUserRepoUniqueUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteUserRepo(db.Conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "admin", PasswordHash: "h1"}))
	err := repo.Create(ctx, &models.User{Username: "admin", PasswordHash: "h2"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}
