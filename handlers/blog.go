package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// BlogHandler, blog yazısı endpoint'lerini yöneten struct.
type BlogHandler struct {
	blogService   services.BlogService
	uploadService services.UploadService
	maxUploadSize int64
}

// NewBlogHandler, constructor.
func NewBlogHandler(blogService services.BlogService, uploadService services.UploadService, maxUploadSize int64) *BlogHandler {
	return &BlogHandler{
		blogService:   blogService,
		uploadService: uploadService,
		maxUploadSize: maxUploadSize,
	}
}

// ListPublished godoc
// GET /api/blog — herkese açık, sadece yayınlanmış yazılar
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.GetPublished(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, posts)
}

// ListAll godoc
// GET /api/blog/all — admin, taslaklar dahil
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, posts)
}

// GetBySlug godoc
// GET /api/blog/{slug} — yazı detayı (slug ile, URL'ler okunabilir olsun)
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Create godoc
// POST /api/blog (JSON veya multipart)
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogPostRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	post, err := h.blogService.Create(r.Context(), &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, post)
}

// Update godoc
// PUT /api/blog/{id} (JSON veya multipart)
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateBlogPostRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	post, err := h.blogService.Update(r.Context(), id, &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Delete godoc
// DELETE /api/blog/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "blog post deleted"})
}
