package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// TestimonialHandler, müşteri yorumu endpoint'lerini yöneten struct.
type TestimonialHandler struct {
	testimonialService services.TestimonialService
	uploadService      services.UploadService
	maxUploadSize      int64
}

// NewTestimonialHandler, constructor.
func NewTestimonialHandler(testimonialService services.TestimonialService, uploadService services.UploadService, maxUploadSize int64) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
		uploadService:      uploadService,
		maxUploadSize:      maxUploadSize,
	}
}

// List godoc
// GET /api/testimonials
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, testimonials)
}

// Get godoc
// GET /api/testimonials/{id}
func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	testimonial, err := h.testimonialService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, testimonial)
}

// Create godoc
// POST /api/testimonials (JSON veya multipart)
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTestimonialRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	testimonial, err := h.testimonialService.Create(r.Context(), &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, testimonial)
}

// Update godoc
// PUT /api/testimonials/{id} (JSON veya multipart)
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateTestimonialRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	testimonial, err := h.testimonialService.Update(r.Context(), id, &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, testimonial)
}

// Delete godoc
// DELETE /api/testimonials/{id}
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.testimonialService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "testimonial deleted"})
}
