package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/ideaforge/ideaforge/server/internal/api/respond"
	"github.com/ideaforge/ideaforge/server/internal/api/validate"
	"github.com/ideaforge/ideaforge/server/internal/storage"
)

// UserHandler provides HTTP transport for user records. Production identity
// lives with the external auth provider; these endpoints exist so owner
// expansion has rows to join against in local mode.
type UserHandler struct {
	storage storage.Storage
}

func NewUserHandler(store storage.Storage) *UserHandler {
	return &UserHandler{storage: store}
}

// CreateUser POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string  `json:"userId"`
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Image    *string `json:"image,omitempty"`
		Bio      string  `json:"bio,omitempty"`
		Location string  `json:"location,omitempty"`
		Website  string  `json:"website,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateUser(req.UserID, req.Name, req.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	u, err := h.storage.CreateUser(r.Context(), storage.CreateUserRequest{
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Image:    req.Image,
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			respond.WriteError(w, http.StatusConflict, "user already exists")
			return
		}
		log.Error().Err(err).Msg("create user failed")
		respond.WriteInternalError(w, "Internal server error")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

// GetUser GET /api/users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	u, err := h.storage.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.WriteNotFound(w, "user not found")
			return
		}
		log.Error().Err(err).Msg("get user failed")
		respond.WriteInternalError(w, "Internal server error")
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}
