package study

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardStore interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error)
	Create(ctx context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	MoveMany(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds study session defaults.
type Config struct {
	SessionSize  int
	TickInterval time.Duration
}

const (
	defaultSessionSize  = 10
	defaultTickInterval = time.Second
)

// Service implements card management, rating and study sessions.
// It keeps each owner's card collection in memory after the first load
// and writes every mutation through to the store before touching the cache.
type Service struct {
	store cardStore
	clock clockwork.Clock
	log   *slog.Logger
	cfg   Config

	mu    sync.RWMutex
	cache map[uuid.UUID][]domain.Card
}

// NewService creates a new Study service.
func NewService(log *slog.Logger, store cardStore, clock clockwork.Clock, cfg Config) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = defaultSessionSize
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}

	return &Service{
		store: store,
		clock: clock,
		log:   log.With("service", "study"),
		cfg:   cfg,
		cache: make(map[uuid.UUID][]domain.Card),
	}
}

// now returns the current instant in the precision the stores keep.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// ---------------------------------------------------------------------------
// In-memory collection
// ---------------------------------------------------------------------------

// collection returns a copy of the owner's cards, loading them on first use.
func (s *Service) collection(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error) {
	s.mu.RLock()
	cards, ok := s.cache[ownerID]
	s.mu.RUnlock()
	if ok {
		return slices.Clone(cards), nil
	}
	return s.reload(ctx, ownerID)
}

func (s *Service) reload(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error) {
	cards, err := s.store.List(ctx, ownerID, domain.AllGroups())
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	s.mu.Lock()
	s.cache[ownerID] = cards
	s.mu.Unlock()

	return slices.Clone(cards), nil
}

// cacheUpsert replaces the cached card with the same id or appends it.
// Owners whose collection was never loaded are left alone.
func (s *Service) cacheUpsert(c domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, ok := s.cache[c.OwnerID]
	if !ok {
		return
	}
	if i := slices.IndexFunc(cards, func(x domain.Card) bool { return x.ID == c.ID }); i >= 0 {
		cards[i] = c
		return
	}
	s.cache[c.OwnerID] = append(cards, c)
}

func (s *Service) cacheRemove(ownerID, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cards, ok := s.cache[ownerID]; ok {
		s.cache[ownerID] = slices.DeleteFunc(cards, func(x domain.Card) bool { return x.ID == id })
	}
}

func (s *Service) cacheMove(ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, ok := s.cache[ownerID]
	if !ok {
		return
	}
	for i := range cards {
		if !slices.Contains(ids, cards[i].ID) {
			continue
		}
		if groupID == nil {
			cards[i].GroupID = nil
		} else {
			gid := *groupID
			cards[i].GroupID = &gid
		}
	}
}
