package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// TeamMemberHandler, ekip üyesi endpoint'lerini yöneten struct.
type TeamMemberHandler struct {
	memberService services.TeamMemberService
	uploadService services.UploadService
	maxUploadSize int64
}

// NewTeamMemberHandler, constructor.
func NewTeamMemberHandler(memberService services.TeamMemberService, uploadService services.UploadService, maxUploadSize int64) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
		uploadService: uploadService,
		maxUploadSize: maxUploadSize,
	}
}

// List godoc
// GET /api/team
func (h *TeamMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, members)
}

// Get godoc
// GET /api/team/{id}
func (h *TeamMemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, member)
}

// Create godoc
// POST /api/team (JSON veya multipart)
func (h *TeamMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamMemberRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	member, err := h.memberService.Create(r.Context(), &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, member)
}

// Update godoc
// PUT /api/team/{id} (JSON veya multipart)
func (h *TeamMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateTeamMemberRequest
	imageURL, err := decodeContentRequest(r, h.uploadService, h.maxUploadSize, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	member, err := h.memberService.Update(r.Context(), id, &req, imageURL)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, member)
}

// Delete godoc
// DELETE /api/team/{id}
func (h *TeamMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.memberService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "team member deleted"})
}
