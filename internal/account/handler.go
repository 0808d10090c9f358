// internal/account/handler.go
package account

import (
	"net/http"
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

// Routes mounts the account endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Patch("/{id}/password", h.handleUpdatePassword)
	r.Delete("/{id}", h.handleDelete)
	r.Post("/{id}/login", h.handleLogin)
}

func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid user id")
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		AccountType string `json:"account_type"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}

	user, err := h.service.CreateAccount(r.Context(), req.Name, req.Email, req.Password, AccountType(req.AccountType))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListAccounts(r.Context())
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if users == nil {
		users = []*UserAccount{}
	}
	web.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	user, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		AccountType string `json:"account_type"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	user, err := h.service.UpdateAccount(r.Context(), id, req.Name, req.Email, AccountType(req.AccountType))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	if err := h.service.UpdatePassword(r.Context(), id, req.Password); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	if err := h.service.DeleteAccount(r.Context(), id); err != nil {
		web.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperr.BadRequest("invalid request body: %s", err))
		return
	}
	user, err := h.service.Login(r.Context(), id, req.Password)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, user)
}
