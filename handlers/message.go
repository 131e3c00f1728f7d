package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/pkg/ratelimit"
	"github.com/emrekav/ajansly/services"
)

// MessageHandler, iletişim formu endpoint'lerini yöneten struct.
//
// Submit herkese açık tek POST endpoint'idir — spam koruması için
// IP bazlı rate limit uygulanır. Kalan endpoint'ler admin'e aittir.
type MessageHandler struct {
	contactService services.ContactService
	submitLimiter  *ratelimit.RateLimiter
}

// NewMessageHandler, constructor.
// submitLimiter: Form spam koruması. nil ise rate limiting devre dışı kalır.
func NewMessageHandler(contactService services.ContactService, submitLimiter *ratelimit.RateLimiter) *MessageHandler {
	return &MessageHandler{
		contactService: contactService,
		submitLimiter:  submitLimiter,
	}
}

// Submit godoc
// POST /api/messages — herkese açık iletişim formu
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.submitLimiter != nil && !h.submitLimiter.Allow(ip) {
		retryAfter := h.submitLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many messages, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.contactService.Submit(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSONWithMessage(w, http.StatusCreated, message, "message received")
}

// List godoc
// GET /api/messages — admin, en yeni önce
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, messages)
}

// Get godoc
// GET /api/messages/{id}
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	message, err := h.contactService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, message)
}

// MarkRead godoc
// PATCH /api/messages/{id}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	message, err := h.contactService.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, message)
}

// Delete godoc
// DELETE /api/messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "message deleted"})
}
