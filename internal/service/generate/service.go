package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// cardGenerator turns free text into a model reply that contains a JSON
// array of {"front","back","category"} objects.
type cardGenerator interface {
	GenerateCards(ctx context.Context, text string, maxCards int) (string, error)
}

type cardCreator interface {
	CreateCards(ctx context.Context, input study.BatchCreateCardsInput) (study.BatchCreateResult, error)
}

// ErrNoCards is returned when the provider reply holds no usable card.
var ErrNoCards = errors.New("no cards generated")

const defaultMaxCards = 10

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service generates card candidates from text and imports them.
type Service struct {
	gen      cardGenerator
	fallback cardGenerator
	creator  cardCreator
	log      *slog.Logger
	maxCards int
}

// NewService creates a new Generate service. fallback may be nil; when set it
// is used whenever gen fails.
func NewService(log *slog.Logger, gen, fallback cardGenerator, creator cardCreator, maxCards int) *Service {
	if maxCards <= 0 {
		maxCards = defaultMaxCards
	}
	return &Service{
		gen:      gen,
		fallback: fallback,
		creator:  creator,
		log:      log.With("service", "generate"),
		maxCards: maxCards,
	}
}

// Generate asks the provider for cards and returns the usable candidates,
// at most MaxCards of them. Candidates whose question repeats an earlier one
// (per domain.QuestionKey) are dropped. Nothing is stored.
// A reply without a single usable card returns ErrNoCards.
func (s *Service) Generate(ctx context.Context, input GenerateInput) ([]domain.CardInput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	maxCards := input.MaxCards
	if maxCards == 0 {
		maxCards = s.maxCards
	}

	reply, err := s.gen.GenerateCards(ctx, input.Text, maxCards)
	if err != nil {
		if s.fallback == nil || ctx.Err() != nil {
			return nil, fmt.Errorf("generate cards: %w", err)
		}
		s.log.WarnContext(ctx, "card provider failed, using fallback", slog.String("error", err.Error()))

		reply, err = s.fallback.GenerateCards(ctx, input.Text, maxCards)
		if err != nil {
			return nil, fmt.Errorf("generate cards (fallback): %w", err)
		}
	}

	candidates, err := parseCandidates(reply)
	if err != nil {
		return nil, fmt.Errorf("parse reply: %w", err)
	}

	out := make([]domain.CardInput, 0, min(len(candidates), maxCards))
	seen := make(map[string]struct{}, len(candidates))
	dropped := 0
	for _, c := range candidates {
		front, back := strings.TrimSpace(c.Front), strings.TrimSpace(c.Back)
		if front == "" || back == "" {
			dropped++
			continue
		}
		key := domain.QuestionKey(front)
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		if len(out) == maxCards {
			break
		}
		seen[key] = struct{}{}
		out = append(out, domain.CardInput{
			Front:    front,
			Back:     back,
			Category: strings.TrimSpace(c.Category),
		})
	}

	s.log.InfoContext(ctx, "cards generated",
		slog.Int("candidates", len(candidates)),
		slog.Int("kept", len(out)),
		slog.Int("dropped", dropped),
	)

	if len(out) == 0 {
		return nil, ErrNoCards
	}
	return out, nil
}

// Import generates cards from text and creates them for the caller.
// Creation is per card; failures are reported in the result.
func (s *Service) Import(ctx context.Context, input ImportInput) (study.BatchCreateResult, error) {
	if _, ok := ctxutil.OwnerIDFromCtx(ctx); !ok {
		return study.BatchCreateResult{}, domain.ErrUnauthorized
	}

	cards, err := s.Generate(ctx, GenerateInput{Text: input.Text, MaxCards: input.MaxCards})
	if err != nil {
		return study.BatchCreateResult{}, err
	}

	batch := study.BatchCreateCardsInput{Cards: make([]study.CreateCardInput, len(cards))}
	for i, c := range cards {
		batch.Cards[i] = study.CreateCardInput{
			Front:    c.Front,
			Back:     c.Back,
			Category: c.Category,
			GroupID:  cloneID(input.GroupID),
		}
	}

	result, err := s.creator.CreateCards(ctx, batch)
	if err != nil {
		return study.BatchCreateResult{}, fmt.Errorf("import cards: %w", err)
	}
	return result, nil
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
