// internal/review/handler.go
package review

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gameshelf/internal/apperr"
	"gameshelf/internal/web"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the review endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/user/{reviewerID}", h.handleListByReviewer)
	r.Get("/game/{title}", h.handleListByGame)
	r.Get("/{reviewerID}/{title}", h.handleGet)
	r.Delete("/{reviewerID}/{title}", h.handleDelete)
}

type reviewResponse struct {
	ReviewerID int64  `json:"reviewer_id"`
	GameTitle  string `json:"game_title"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
}

func toResponse(rev *Review) reviewResponse {
	return reviewResponse{
		ReviewerID: rev.ReviewerID,
		GameTitle:  rev.GameTitle,
		Rating:     rev.Rating,
		Comment:    rev.Comment,
		Date:       rev.Date.Format(dateLayout),
	}
}

func toResponses(reviews []*Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, toResponse(rev))
	}
	return out
}

func reviewerID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "reviewerID"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid reviewer id")
	}
	return id, nil
}

func gameTitle(r *http.Request) (string, error) {
	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil {
		return "", apperr.BadRequest("invalid game title")
	}
	return title, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReviewerID int64  `json:"reviewer_id"`
		GameTitle  string `json:"game_title"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	review, err := h.service.CreateReview(r.Context(), req.ReviewerID, req.GameTitle, req.Rating, req.Comment)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, toResponse(review))
}

func (h *Handler) handleListByReviewer(w http.ResponseWriter, r *http.Request) {
	id, err := reviewerID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	reviews, err := h.service.ListByReviewer(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponses(reviews))
}

func (h *Handler) handleListByGame(w http.ResponseWriter, r *http.Request) {
	title, err := gameTitle(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	reviews, err := h.service.ListByGame(r.Context(), title)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponses(reviews))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := reviewerID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	title, err := gameTitle(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	review, err := h.service.GetReview(r.Context(), id, title)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponse(review))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := reviewerID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	title, err := gameTitle(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if err := h.service.DeleteReview(r.Context(), id, title); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
