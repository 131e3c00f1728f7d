package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// ServiceHandler, hizmet kartı endpoint'lerini yöneten struct.
type ServiceHandler struct {
	serviceService services.ServiceService
	uploadService  services.UploadService
	maxUploadSize  int64
}

// NewServiceHandler, constructor.
func NewServiceHandler(serviceService services.ServiceService, uploadService services.UploadService, maxUploadSize int64) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
		uploadService:  uploadService,
		maxUploadSize:  maxUploadSize,
	}
}

// List godoc
// GET /api/services
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, services)
}

// Get godoc
// GET /api/services/{id}
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.serviceService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, service)
}

// Create godoc
// POST /api/services (JSON veya multipart)
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	service, err := h.serviceService.Create(r.Context(), &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, service)
}

// Update godoc
// PUT /api/services/{id} (JSON veya multipart)
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateServiceRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	service, err := h.serviceService.Update(r.Context(), id, &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, service)
}

// Delete godoc
// DELETE /api/services/{id}
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serviceService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "service deleted"})
}
