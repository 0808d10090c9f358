// internal/collection/handler.go
package collection

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gameshelf/internal/apperr"
	"gameshelf/internal/web"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the game copy endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleListAll)
	r.Get("/owner/{ownerID}", h.handleListByOwner)
	r.Get("/owner/{ownerID}/{title}", h.handleGet)
	r.Patch("/owner/{ownerID}/{title}/status", h.handleUpdateStatus)
	r.Patch("/owner/{ownerID}/{title}/description", h.handleUpdateDescription)
	r.Delete("/owner/{ownerID}/{title}", h.handleDelete)
}

func copyKey(r *http.Request) (int64, string, error) {
	ownerID, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil {
		return 0, "", apperr.BadRequest("invalid owner id")
	}
	raw := chi.URLParam(r, "title")
	title, err := url.PathUnescape(raw)
	if err != nil {
		title = raw
	}
	return ownerID, title, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID     int64  `json:"owner_id"`
		GameTitle   string `json:"game_title"`
		Description string `json:"description"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}

	copy, err := h.service.CreateCopy(r.Context(), req.OwnerID, req.GameTitle, req.Description)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, copy)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	copies, err := h.service.ListAll(r.Context())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if copies == nil {
		copies = []*GameCopy{}
	}
	web.WriteJSON(w, http.StatusOK, copies)
}

func (h *Handler) handleListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil {
		web.WriteError(w, apperr.BadRequest("invalid owner id"))
		return
	}
	copies, err := h.service.ListByOwner(r.Context(), ownerID)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if copies == nil {
		copies = []*GameCopy{}
	}
	web.WriteJSON(w, http.StatusOK, copies)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ownerID, title, err := copyKey(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	copy, err := h.service.GetCopy(r.Context(), ownerID, title)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, copy)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, title, err := copyKey(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	if err := h.service.UpdateStatus(r.Context(), ownerID, title, req.Status); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateDescription(w http.ResponseWriter, r *http.Request) {
	ownerID, title, err := copyKey(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	var req struct {
		Description string `json:"description"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	if err := h.service.UpdateDescription(r.Context(), ownerID, title, req.Description); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, title, err := copyKey(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if err := h.service.DeleteCopy(r.Context(), ownerID, title); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
