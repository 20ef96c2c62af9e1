package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// SelectForStudy picks up to count cards for a session, in collection order.
// Due cards that pass the filter come first; if there are fewer than count,
// never-reviewed cards that pass the filter and are not already picked fill
// the remainder. count <= 0 means the default session size.
func SelectForStudy(cards []domain.Card, filter domain.GroupFilter, count int, now time.Time) []domain.Card {
	if count <= 0 {
		count = defaultSessionSize
	}

	selected := make([]domain.Card, 0, min(count, len(cards)))
	picked := make(map[uuid.UUID]struct{}, count)

	for i := range cards {
		if len(selected) == count {
			return selected
		}
		c := &cards[i]
		if _, dup := picked[c.ID]; dup || !c.IsDue(now) || !filter.Matches(c) {
			continue
		}
		picked[c.ID] = struct{}{}
		selected = append(selected, *c)
	}

	for i := range cards {
		if len(selected) == count {
			break
		}
		c := &cards[i]
		if _, dup := picked[c.ID]; dup || !c.IsNew() || !filter.Matches(c) {
			continue
		}
		picked[c.ID] = struct{}{}
		selected = append(selected, *c)
	}

	return selected
}

// StudyQueue returns the cards a session started with the same input would study.
func (s *Service) StudyQueue(ctx context.Context, input GetQueueInput) ([]domain.Card, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.selectQueue(ctx, ownerID, input.Filter, input.Count)
}

func (s *Service) selectQueue(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter, count int) ([]domain.Card, error) {
	cards, err := s.collection(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	if count <= 0 {
		count = s.cfg.SessionSize
	}

	return SelectForStudy(cards, filter, count, s.clock.Now()), nil
}
