package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// ProjectHandler, portfolyo projesi endpoint'lerini yöneten struct.
type ProjectHandler struct {
	projectService services.ProjectService
	uploadService  services.UploadService
	maxUploadSize  int64
}

// NewProjectHandler, constructor.
func NewProjectHandler(projectService services.ProjectService, uploadService services.UploadService, maxUploadSize int64) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		uploadService:  uploadService,
		maxUploadSize:  maxUploadSize,
	}
}

// List godoc
// GET /api/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, projects)
}

// Get godoc
// GET /api/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, project)
}

// Create godoc
// POST /api/projects (JSON veya multipart)
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	project, err := h.projectService.Create(r.Context(), &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, project)
}

// Update godoc
// PUT /api/projects/{id} (JSON veya multipart)
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateProjectRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), id, &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, project)
}

// Delete godoc
// DELETE /api/projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
