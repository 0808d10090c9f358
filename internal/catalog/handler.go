// internal/catalog/handler.go
package catalog

import (
	"net/http"
	"net/url"

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

// Routes mounts the catalog endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/{title}", h.handleGet)
	r.Put("/{title}", h.handleUpdate)
	r.Delete("/{title}", h.handleDelete)
}

// gameTitle returns the decoded {title} URL parameter.
func gameTitle(r *http.Request) string {
	raw := chi.URLParam(r, "title")
	if title, err := url.PathUnescape(raw); err == nil {
		return title
	}
	return raw
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}

	game, err := h.service.CreateGame(r.Context(), req.Title, req.Description, req.Category)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, game)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if games == nil {
		games = []*Game{}
	}
	web.WriteJSON(w, http.StatusOK, games)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.GetGameByTitle(r.Context(), gameTitle(r))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, game)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}

	game, err := h.service.UpdateGame(r.Context(), gameTitle(r), req.Description, req.Category)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, game)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGame(r.Context(), gameTitle(r)); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
