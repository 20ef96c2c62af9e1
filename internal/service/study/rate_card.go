package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// RateCard records a review of a card and reschedules it.
//
// The review instant is read once from the clock. The store is written first;
// only a successful write updates the in-memory collection. On failure the
// collection is untouched and the error is returned.
func (s *Service) RateCard(ctx context.Context, input RateCardInput) (*domain.Card, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.rateCard(ctx, ownerID, input)
}

func (s *Service) rateCard(ctx context.Context, ownerID uuid.UUID, input RateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	rating := RatingOf(input.Difficulty)
	next, known := NextReviewDate(now, rating)

	patch := domain.CardPatch{
		LastReviewed:   &now,
		NextReviewDate: &next,
	}
	if known {
		d := input.Difficulty
		patch.Difficulty = &d
	} else {
		s.log.WarnContext(ctx, "unrecognised rating, scheduling now",
			slog.String("card_id", input.CardID.String()),
			slog.String("rating", rating.String()),
		)
	}

	card, err := s.store.Update(ctx, ownerID, input.CardID, patch)
	if err != nil {
		return nil, fmt.Errorf("rate card: %w", err)
	}
	s.cacheUpsert(*card)

	s.log.InfoContext(ctx, "card rated",
		slog.String("user_id", ownerID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("session_id", ctxutil.SessionIDFromCtx(ctx)),
		slog.String("rating", rating.String()),
		slog.Time("next_review", next),
	)

	return card, nil
}
