// internal/events/handler.go
package events

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gameshelf/internal/apperr"
	"gameshelf/internal/web"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Handler struct {
	service       Service
	registrations RegistrationService
}

func NewHandler(service Service, registrations RegistrationService) *Handler {
	return &Handler{service: service, registrations: registrations}
}

// Routes mounts the event endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}/description", h.handleUpdateDescription)
	r.Delete("/{id}", h.handleDelete)
	r.Get("/registrant/{userID}", h.handleListByRegistrant)

	r.Post("/{id}/registrations", h.handleRegister)
	r.Get("/{id}/registrations", h.handleListRegistrationsByEvent)
	r.Get("/{id}/registrations/{userID}", h.handleGetRegistration)
	r.Delete("/{id}/registrations/{userID}", h.handleCancelRegistration)
}

// RegistrationRoutes mounts the cross-event registration views on r.
func (h *Handler) RegistrationRoutes(r chi.Router) {
	r.Get("/", h.handleListAllRegistrations)
	r.Get("/user/{userID}", h.handleListRegistrationsByUser)
}

// eventResponse is the wire shape of an event; the date is date-only and the
// start time is clock-only.
type eventResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	MaxParticipants int    `json:"max_participants"`
	GameTitle       string `json:"game_title"`
	CreatorID       int64  `json:"creator_id"`
}

func toEventResponse(e *Event) eventResponse {
	return eventResponse{
		ID:              e.ID.String(),
		Name:            e.Name,
		Date:            e.Date.Format(dateLayout),
		StartTime:       e.StartTime.Format(timeLayout),
		Location:        e.Location,
		Description:     e.Description,
		MaxParticipants: e.MaxParticipants,
		GameTitle:       e.GameTitle,
		CreatorID:       e.CreatorID,
	}
}

func toEventResponses(events []*Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

type registrationResponse struct {
	ParticipantID int64  `json:"participant_id"`
	EventID       string `json:"event_id"`
	Status        string `json:"participation_status"`
}

func toRegistrationResponse(reg *EventRegistration) registrationResponse {
	return registrationResponse{
		ParticipantID: reg.ParticipantID,
		EventID:       reg.EventID.String(),
		Status:        string(reg.Status),
	}
}

func toRegistrationResponses(regs []*EventRegistration) []registrationResponse {
	out := make([]registrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, toRegistrationResponse(reg))
	}
	return out
}

func eventID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid event id")
	}
	return id, nil
}

func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid user id")
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string `json:"name"`
		Date            string `json:"date"`
		StartTime       string `json:"start_time"`
		Location        string `json:"location"`
		Description     string `json:"description"`
		MaxParticipants int    `json:"max_participants"`
		GameTitle       string `json:"game_title"`
		CreatorID       int64  `json:"creator_id"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		web.WriteError(w, apperr.BadRequest("invalid event date: %s", req.Date))
		return
	}
	startTime, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		web.WriteError(w, apperr.BadRequest("invalid start time: %s", req.StartTime))
		return
	}

	details := EventDetails{
		Name:            req.Name,
		Date:            date,
		StartTime:       startTime,
		Location:        req.Location,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
		GameTitle:       req.GameTitle,
	}
	event, err := h.service.CreateEvent(r.Context(), details, req.CreatorID)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, toEventResponse(event))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toEventResponses(events))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	event, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toEventResponse(event))
}

func (h *Handler) handleUpdateDescription(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
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
	if err := h.service.UpdateDescription(r.Context(), id, req.Description); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListByRegistrant(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	events, err := h.service.ListByUserRegistration(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toEventResponses(events))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	var req struct {
		ParticipantID int64 `json:"participant_id"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	reg, err := h.registrations.Register(r.Context(), req.ParticipantID, id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, toRegistrationResponse(reg))
}

func (h *Handler) handleListRegistrationsByEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	regs, err := h.registrations.ListByEvent(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toRegistrationResponses(regs))
}

func (h *Handler) handleGetRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	uid, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	reg, err := h.registrations.GetRegistration(r.Context(), uid, id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toRegistrationResponse(reg))
}

func (h *Handler) handleCancelRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	uid, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if err := h.registrations.CancelRegistration(r.Context(), uid, id); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAllRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.ListAll(r.Context())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toRegistrationResponses(regs))
}

func (h *Handler) handleListRegistrationsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	regs, err := h.registrations.ListByUser(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, toRegistrationResponses(regs))
}
