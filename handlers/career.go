package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// CareerHandler, iş ilanı endpoint'lerini yöneten struct.
// İlanlar görsel taşımaz — istekler her zaman düz JSON'dur.
type CareerHandler struct {
	careerService services.CareerService
}

// NewCareerHandler, constructor.
func NewCareerHandler(careerService services.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

// ListActive godoc
// GET /api/careers — herkese açık, sadece aktif ilanlar
func (h *CareerHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	careers, err := h.careerService.GetActive(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, careers)
}

// ListAll godoc
// GET /api/careers/all — admin, pasif ilanlar dahil
func (h *CareerHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	careers, err := h.careerService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, careers)
}

// Get godoc
// GET /api/careers/{id}
func (h *CareerHandler) Get(w http.ResponseWriter, r *http.Request) {
	career, err := h.careerService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, career)
}

// Create godoc
// POST /api/careers
func (h *CareerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	career, err := h.careerService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, career)
}

// Update godoc
// PUT /api/careers/{id}
func (h *CareerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	career, err := h.careerService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, career)
}

// Delete godoc
// DELETE /api/careers/{id}
func (h *CareerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.careerService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "career deleted"})
}
