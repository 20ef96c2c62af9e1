package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateCard validates and stores a new card.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.store.Create(ctx, ownerID, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	s.cacheUpsert(*card)

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", ownerID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return card, nil
}

// CreateCards creates each card independently. A failure on one item is
// recorded in the result and does not stop the others; the batch is not atomic.
func (s *Service) CreateCards(ctx context.Context, input BatchCreateCardsInput) (BatchCreateResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return BatchCreateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return BatchCreateResult{}, err
	}

	result := BatchCreateResult{
		Created: make([]domain.Card, 0, len(input.Cards)),
		Errors:  []BatchCreateError{},
	}

	for i, item := range input.Cards {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("create cards: %w", err)
		}

		if err := item.Validate(); err != nil {
			result.Errors = append(result.Errors, BatchCreateError{Index: i, Reason: err.Error()})
			continue
		}

		card, err := s.store.Create(ctx, ownerID, item.toDomain())
		if err != nil {
			result.Errors = append(result.Errors, BatchCreateError{Index: i, Reason: err.Error()})
			continue
		}
		s.cacheUpsert(*card)
		result.Created = append(result.Created, *card)
	}

	s.log.InfoContext(ctx, "batch card creation completed",
		slog.String("user_id", ownerID.String()),
		slog.Int("requested", len(input.Cards)),
		slog.Int("created", len(result.Created)),
		slog.Int("errors", len(result.Errors)),
	)

	return result, nil
}

// EditCard updates a card's front, back or category.
func (s *Service) EditCard(ctx context.Context, input EditCardInput) (*domain.Card, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.editCard(ctx, ownerID, input)
}

func (s *Service) editCard(ctx context.Context, ownerID uuid.UUID, input EditCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.store.Update(ctx, ownerID, input.CardID, input.toPatch())
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	s.cacheUpsert(*card)

	s.log.InfoContext(ctx, "card edited",
		slog.String("user_id", ownerID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return card, nil
}

// DeleteCard removes a card permanently.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, ownerID, input.CardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	s.cacheRemove(ownerID, input.CardID)

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", ownerID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}

// MoveCards reassigns cards to a group (or to none) as one unit.
func (s *Service) MoveCards(ctx context.Context, input MoveCardsInput) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.store.MoveMany(ctx, ownerID, input.CardIDs, input.GroupID); err != nil {
		return fmt.Errorf("move cards: %w", err)
	}
	s.cacheMove(ownerID, input.CardIDs, input.GroupID)

	s.log.InfoContext(ctx, "cards moved",
		slog.String("user_id", ownerID.String()),
		slog.Int("count", len(input.CardIDs)),
		slog.String("group", domain.GroupFilterFor(input.GroupID).String()),
	)

	return nil
}

// ListCards returns the owner's cards matching the filter, in store order.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.collection(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	out := cards[:0]
	for i := range cards {
		if input.Filter.Matches(&cards[i]) {
			out = append(out, cards[i])
		}
	}
	return out, nil
}

// GetCard returns one card from the owner's collection.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.collection(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	for i := range cards {
		if cards[i].ID == cardID {
			return &cards[i], nil
		}
	}
	return nil, fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
}

// Load refreshes the owner's in-memory collection from the store and returns its size.
func (s *Service) Load(ctx context.Context) (int, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	cards, err := s.reload(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	s.log.DebugContext(ctx, "collection loaded",
		slog.String("user_id", ownerID.String()),
		slog.Int("cards", len(cards)),
	)

	return len(cards), nil
}
