package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// PartnerHandler, partner endpoint'lerini yöneten struct.
type PartnerHandler struct {
	partnerService services.PartnerService
	uploadService  services.UploadService
	maxUploadSize  int64
}

// NewPartnerHandler, constructor.
func NewPartnerHandler(partnerService services.PartnerService, uploadService services.UploadService, maxUploadSize int64) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
		uploadService:  uploadService,
		maxUploadSize:  maxUploadSize,
	}
}

// List godoc
// GET /api/partners
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, partners)
}

// Get godoc
// GET /api/partners/{id}
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	partner, err := h.partnerService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, partner)
}

// Create godoc
// POST /api/partners (JSON veya multipart)
func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartnerRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	partner, err := h.partnerService.Create(r.Context(), &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, partner)
}

// Update godoc
// PUT /api/partners/{id} (JSON veya multipart)
func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdatePartnerRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	partner, err := h.partnerService.Update(r.Context(), id, &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, partner)
}

// Delete godoc
// DELETE /api/partners/{id}
func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.partnerService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "partner deleted"})
}
