// internal/lending/handler.go
package lending

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

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

// Routes mounts the borrow request endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Get("/borrower/{borrowerID}", h.handleListByBorrower)
	r.Post("/{id}/accept", h.handleAccept)
	r.Post("/{id}/decline", h.handleDecline)
}

// requestResponse is the wire shape of a borrow request; dates are date-only.
type requestResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	RequestDate  string `json:"request_date"`
	DecisionDate string `json:"decision_date,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	BorrowerID   int64  `json:"borrower_id"`
	OwnerID      int64  `json:"owner_id"`
	GameTitle    string `json:"game_title"`
}

func toResponse(r *BorrowRequest) requestResponse {
	resp := requestResponse{
		ID:          r.ID.String(),
		Status:      string(r.Status),
		RequestDate: r.RequestDate.Format(dateLayout),
		StartDate:   r.StartDate.Format(dateLayout),
		EndDate:     r.EndDate.Format(dateLayout),
		BorrowerID:  r.BorrowerID,
		OwnerID:     r.OwnerID,
		GameTitle:   r.GameTitle,
	}
	if r.DecisionDate != nil {
		resp.DecisionDate = r.DecisionDate.Format(dateLayout)
	}
	return resp
}

func toResponses(requests []*BorrowRequest) []requestResponse {
	out := make([]requestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toResponse(r))
	}
	return out
}

func requestID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid borrow request id")
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BorrowerID int64  `json:"borrower_id"`
		OwnerID    int64  `json:"owner_id"`
		GameTitle  string `json:"game_title"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		web.WriteError(w, apperr.BadRequest("invalid start date: %s", req.StartDate))
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		web.WriteError(w, apperr.BadRequest("invalid end date: %s", req.EndDate))
		return
	}

	request, err := h.service.CreateBorrowRequest(r.Context(), req.BorrowerID, req.OwnerID, req.GameTitle, startDate, endDate)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, toResponse(request))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListRequests(r.Context())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponses(requests))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	request, err := h.service.GetRequest(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponse(request))
}

func (h *Handler) handleListByBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := strconv.ParseInt(chi.URLParam(r, "borrowerID"), 10, 64)
	if err != nil {
		web.WriteError(w, apperr.BadRequest("invalid borrower id"))
		return
	}
	requests, err := h.service.ListByBorrower(r.Context(), borrowerID)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponses(requests))
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	request, err := h.service.AcceptRequest(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponse(request))
}

func (h *Handler) handleDecline(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	request, err := h.service.DeclineRequest(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toResponse(request))
}
