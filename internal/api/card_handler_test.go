package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/mocks"
)

func cardRouter(h *CardHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/cards", h.ListCards)
	r.Post("/cards", h.CreateCard)
	r.Delete("/cards/{id}", h.DeleteCard)
	r.Put("/cards/{id}/likes", h.LikeCard)
	r.Delete("/cards/{id}/likes", h.DislikeCard)
	return r
}

func seedCard(t *testing.T, cards *mocks.FakeCardStore, owner uuid.UUID) *domain.Card {
	t.Helper()
	card, err := domain.NewCard("Lake Baikal", "https://example.com/baikal.jpg", owner)
	require.NoError(t, err)
	cards.Seed(card)
	return card
}

func TestCreateCard(t *testing.T) {
	t.Parallel()

	t.Run("authenticated user becomes owner", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		router := cardRouter(NewCardHandler(cards, nil))
		owner := uuid.New()

		req := withUser(jsonRequest(t, "POST", "/cards", CreateCardRequest{
			Name: "Lake Baikal",
			Link: "https://example.com/baikal.jpg",
		}), owner)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, owner, resp.Owner)
		assert.Empty(t, resp.Likes)
		assert.True(t, cards.Has(resp.ID))
	})

	tests := []struct {
		name string
		req  CreateCardRequest
	}{
		{"missing name", CreateCardRequest{Link: "https://example.com/x.jpg"}},
		{"name too short", CreateCardRequest{Name: "x", Link: "https://example.com/x.jpg"}},
		{"link not a url", CreateCardRequest{Name: "Lake Baikal", Link: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := mocks.NewFakeCardStore()
			router := cardRouter(NewCardHandler(cards, nil))

			req := withUser(jsonRequest(t, "POST", "/cards", tt.req), uuid.New())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteCard(t *testing.T) {
	t.Parallel()

	t.Run("non-owner is forbidden and card survives", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		owner := uuid.New()
		card := seedCard(t, cards, owner)
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("DELETE", "/cards/"+card.ID.String(), nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.True(t, cards.Has(card.ID))
	})

	t.Run("owner deletes, repeat delete is not found", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		owner := uuid.New()
		card := seedCard(t, cards, owner)
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("DELETE", "/cards/"+card.ID.String(), nil), owner)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, cards.Has(card.ID))

		var resp DeleteCardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, card.ID, resp.ID)
		assert.Contains(t, resp.Message, card.ID.String())

		// Second delete of the same card.
		repeat := withUser(httptest.NewRequest("DELETE", "/cards/"+card.ID.String(), nil), owner)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, repeat)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("DELETE", "/cards/123", nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLikeCard(t *testing.T) {
	t.Parallel()

	t.Run("repeated likes leave a single entry", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		card := seedCard(t, cards, uuid.New())
		router := cardRouter(NewCardHandler(cards, nil))
		liker := uuid.New()

		var resp CardResponse
		for i := 0; i < 2; i++ {
			req := withUser(httptest.NewRequest("PUT", "/cards/"+card.ID.String()+"/likes", nil), liker)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		}

		assert.Equal(t, []uuid.UUID{liker}, resp.Likes)
	})

	t.Run("any authenticated user may like a foreign card", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		card := seedCard(t, cards, uuid.New())
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("PUT", "/cards/"+card.ID.String()+"/likes", nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("absent card is not found", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("PUT", "/cards/"+uuid.NewString()+"/likes", nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDislikeCard(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing like", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		card := seedCard(t, cards, uuid.New())
		liker := uuid.New()
		card.AddLike(liker)
		cards.Seed(card)
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("DELETE", "/cards/"+card.ID.String()+"/likes", nil), liker)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Likes)
	})

	t.Run("dislike without a prior like is a no-op, not an error", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		card := seedCard(t, cards, uuid.New())
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("DELETE", "/cards/"+card.ID.String()+"/likes", nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("absent card is not found", func(t *testing.T) {
		cards := mocks.NewFakeCardStore()
		router := cardRouter(NewCardHandler(cards, nil))

		req := withUser(httptest.NewRequest("DELETE", "/cards/"+uuid.NewString()+"/likes", nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListCards(t *testing.T) {
	t.Parallel()

	cards := mocks.NewFakeCardStore()
	seedCard(t, cards, uuid.New())
	seedCard(t, cards, uuid.New())
	router := cardRouter(NewCardHandler(cards, nil))

	req := withUser(httptest.NewRequest("GET", "/cards", nil), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []CardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
