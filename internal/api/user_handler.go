package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// UserHandler handles user-related HTTP requests. All of its routes sit
// behind the auth middleware.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// requestUserID extracts the authenticated user ID placed in the context
// by the auth middleware. A missing ID means the middleware did not run,
// which is treated as an unauthorized request rather than a server fault.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID route parameter. A structurally malformed value is
// a 400, distinct from a well-formed ID that matches nothing (404 later).
func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(store.ErrInvalidID))
		return uuid.Nil, false
	}
	return id, true
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}

	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, userToResponse(u))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	h.respondWithUser(w, r, func() (*domain.User, error) {
		return h.userStore.GetByID(r.Context(), userID)
	})
}

// GetUserByID handles GET /users/{id}.
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.respondWithUser(w, r, func() (*domain.User, error) {
		return h.userStore.GetByID(r.Context(), id)
	})
}

// UpdateProfile handles PATCH /users/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Request data failed validation", err)
		return
	}

	h.respondWithUser(w, r, func() (*domain.User, error) {
		return h.userStore.UpdateProfile(r.Context(), userID, req.Name, req.About)
	})
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req UpdateAvatarRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Request data failed validation", err)
		return
	}

	h.respondWithUser(w, r, func() (*domain.User, error) {
		return h.userStore.UpdateAvatar(r.Context(), userID, req.Avatar)
	})
}

// respondWithUser runs a store operation and renders either the shaped
// user or the mapped error, exactly one of the two.
func (h *UserHandler) respondWithUser(w http.ResponseWriter, r *http.Request, op func() (*domain.User, error)) {
	user, err := op()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
