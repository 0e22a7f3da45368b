package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// CardStore implements the store.CardStore interface using a PostgreSQL
// database as the storage backend. Likes live in the card_likes table;
// its primary key gives the set semantics of the like operations.
type CardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCardStore creates a new PostgreSQL implementation of the CardStore
// interface. It accepts a database connection or transaction that should
// be initialized and managed by the caller.
func NewCardStore(db store.DBTX, logger *slog.Logger) *CardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

var _ store.CardStore = (*CardStore)(nil)

// cardQuery selects cards with their likes aggregated into a text array.
// COALESCE keeps cards without likes at an empty array instead of NULL.
const cardQuery = `
	SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
	       COALESCE(array_agg(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}')
	FROM cards c
	LEFT JOIN card_likes l ON l.card_id = c.id`

// Create implements store.CardStore.Create.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cards (id, name, link, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		card.ID, card.Name, card.Link, card.OwnerID, card.CreatedAt)
	if err != nil {
		return MapError(err)
	}

	s.logger.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("owner_id", card.OwnerID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID.
func (s *CardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := cardQuery + `
	WHERE c.id = $1
	GROUP BY c.id`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, MapError(err)
		}
		return nil, store.ErrCardNotFound
	}

	return scanCard(rows)
}

// List implements store.CardStore.List.
func (s *CardStore) List(ctx context.Context) ([]*domain.Card, error) {
	query := cardQuery + `
	GROUP BY c.id
	ORDER BY c.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// Delete implements store.CardStore.Delete.
func (s *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		return err
	}

	s.logger.Debug("card deleted", slog.String("card_id", id.String()))
	return nil
}

// AddLike implements store.CardStore.AddLike. ON CONFLICT DO NOTHING makes
// repeated likes idempotent; a foreign key violation on card_id means the
// card itself is gone.
func (s *CardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	query := `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, cardID, userID); err != nil {
		if IsForeignKeyViolation(err) {
			return nil, store.ErrCardNotFound
		}
		return nil, MapError(err)
	}

	return s.GetByID(ctx, cardID)
}

// RemoveLike implements store.CardStore.RemoveLike.
func (s *CardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	query := `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`

	if _, err := s.db.ExecContext(ctx, query, cardID, userID); err != nil {
		return nil, MapError(err)
	}

	// Zero rows deleted is fine (dislike of an absent like is a no-op);
	// the card lookup below decides between success and not-found.
	return s.GetByID(ctx, cardID)
}

// scanCard reads one card row produced by cardQuery, converting the
// aggregated like IDs back to UUIDs.
func scanCard(row interface{ Scan(dest ...interface{}) error }) (*domain.Card, error) {
	var (
		card    domain.Card
		rawLike []byte
	)
	if err := row.Scan(&card.ID, &card.Name, &card.Link, &card.OwnerID, &card.CreatedAt, &rawLike); err != nil {
		return nil, MapError(err)
	}

	likes, err := parseTextArray(string(rawLike))
	if err != nil {
		return nil, fmt.Errorf("failed to parse likes array: %w", err)
	}

	card.Likes = make([]uuid.UUID, 0, len(likes))
	for _, raw := range likes {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse like user ID %q: %w", raw, err)
		}
		card.Likes = append(card.Likes, id)
	}

	return &card, nil
}

// parseTextArray decodes a Postgres text[] literal of UUID strings, e.g.
// {a,b,c} or {}. UUID elements are never quoted or escaped, so a plain
// split suffices.
func parseTextArray(s string) ([]string, error) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("malformed array literal: %q", s)
	}
	body := s[1 : len(s)-1]
	if body == "" {
		return nil, nil
	}

	var elems []string
	start := 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || body[i] == ',' {
			elems = append(elems, body[start:i])
			start = i + 1
		}
	}
	return elems, nil
}
