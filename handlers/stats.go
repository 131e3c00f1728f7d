package handlers

import (
	"net/http"

	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/services"
)

// StatsHandler, sayaç endpoint'lerini yöneten struct.
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler, constructor.
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Site godoc
// GET /api/stats — herkese açık, landing page sayaçları (cache'li)
func (h *StatsHandler) Site(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetSiteStats(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, stats)
}

// Admin godoc
// GET /api/stats/admin — admin dashboard özeti
func (h *StatsHandler) Admin(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetAdminStats(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, stats)
}
