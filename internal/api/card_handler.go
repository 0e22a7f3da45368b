package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/api/shared"
	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/platform/logger"
	"github.com/mesto-project/mesto-api/internal/store"
)

// CardHandler handles card-related HTTP requests. All of its routes sit
// behind the auth middleware.
type CardHandler struct {
	cardStore store.CardStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore, log *slog.Logger) *CardHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CardHandler{
		cardStore: cardStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}

	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		responses = append(responses, cardToResponse(c))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// CreateCard handles POST /cards. The authenticated user becomes the
// card's owner.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Request data failed validation", err)
		return
	}

	card, err := domain.NewCard(req.Name, req.Link, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Request data failed validation", err)
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// DeleteCard handles DELETE /cards/{id}. Only the owner may delete a card;
// a deny never reaches the store's delete.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cardID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), cardID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if !card.IsOwnedBy(userID) {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, GetSafeErrorMessage(ErrNotOwner), ErrNotOwner)
		return
	}

	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("card deleted",
		slog.String("card_id", cardID.String()),
		slog.String("owner_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteCardResponse{
		Message: fmt.Sprintf("Card %s deleted", cardID),
		ID:      cardID,
	})
}

// LikeCard handles PUT /cards/{id}/likes. Any authenticated user may like
// any card; repeated likes are idempotent.
func (h *CardHandler) LikeCard(w http.ResponseWriter, r *http.Request) {
	h.updateLikes(w, r, h.cardStore.AddLike)
}

// DislikeCard handles DELETE /cards/{id}/likes. Removing an absent like
// is a no-op.
func (h *CardHandler) DislikeCard(w http.ResponseWriter, r *http.Request) {
	h.updateLikes(w, r, h.cardStore.RemoveLike)
}

func (h *CardHandler) updateLikes(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error),
) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cardID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	card, err := op(r.Context(), cardID, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}
