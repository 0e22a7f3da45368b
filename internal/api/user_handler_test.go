package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/mocks"
)

// withUser attaches an authenticated user ID to the request context the
// way the auth middleware does.
func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// userRouter mounts the handler on the real route table so chi URL
// parameters resolve as in production.
func userRouter(h *UserHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/users", h.ListUsers)
	r.Get("/users/me", h.GetMe)
	r.Patch("/users/me", h.UpdateProfile)
	r.Patch("/users/me/avatar", h.UpdateAvatar)
	r.Get("/users/{id}", h.GetUserByID)
	return r
}

func TestGetMe(t *testing.T) {
	t.Parallel()

	users := mocks.NewFakeUserStore()
	user := seedUser(t, users, "a@b.com", "secret1")
	router := userRouter(NewUserHandler(users, nil))

	t.Run("returns own profile without password hash", func(t *testing.T) {
		req := withUser(httptest.NewRequest("GET", "/users/me", nil), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "a@b.com", resp.Email)
		assert.NotContains(t, rec.Body.String(), user.HashedPassword)
	})

	t.Run("unknown subject is not found", func(t *testing.T) {
		req := withUser(httptest.NewRequest("GET", "/users/me", nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserByID(t *testing.T) {
	t.Parallel()

	users := mocks.NewFakeUserStore()
	user := seedUser(t, users, "a@b.com", "secret1")
	router := userRouter(NewUserHandler(users, nil))

	t.Run("found", func(t *testing.T) {
		req := withUser(httptest.NewRequest("GET", "/users/"+user.ID.String(), nil), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("well-formed but absent id is not found", func(t *testing.T) {
		req := withUser(httptest.NewRequest("GET", "/users/"+uuid.NewString(), nil), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is a bad request, not a miss", func(t *testing.T) {
		req := withUser(httptest.NewRequest("GET", "/users/zzz-not-a-uuid", nil), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	users := mocks.NewFakeUserStore()
	me := seedUser(t, users, "a@b.com", "secret1")
	seedUser(t, users, "c@d.com", "secret2")
	router := userRouter(NewUserHandler(users, nil))

	req := withUser(httptest.NewRequest("GET", "/users", nil), me.ID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	users := mocks.NewFakeUserStore()
	user := seedUser(t, users, "a@b.com", "secret1")
	router := userRouter(NewUserHandler(users, nil))

	t.Run("updates name and about", func(t *testing.T) {
		req := withUser(jsonRequest(t, "PATCH", "/users/me", UpdateProfileRequest{
			Name:  "Marie Curie",
			About: "Chemist",
		}), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Marie Curie", resp.Name)
		assert.Equal(t, "Chemist", resp.About)
	})

	t.Run("rejects out-of-bounds fields", func(t *testing.T) {
		req := withUser(jsonRequest(t, "PATCH", "/users/me", UpdateProfileRequest{
			Name:  "x",
			About: "Chemist",
		}), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateAvatar(t *testing.T) {
	t.Parallel()

	users := mocks.NewFakeUserStore()
	user := seedUser(t, users, "a@b.com", "secret1")
	router := userRouter(NewUserHandler(users, nil))

	t.Run("updates avatar", func(t *testing.T) {
		req := withUser(jsonRequest(t, "PATCH", "/users/me/avatar", UpdateAvatarRequest{
			Avatar: "https://example.com/me.png",
		}), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "https://example.com/me.png", resp.Avatar)
	})

	t.Run("rejects non-url avatar", func(t *testing.T) {
		req := withUser(jsonRequest(t, "PATCH", "/users/me/avatar", UpdateAvatarRequest{
			Avatar: "not-a-url",
		}), user.ID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
