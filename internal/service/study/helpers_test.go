package study

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newCard(owner uuid.UUID) domain.Card {
	return domain.Card{
		ID:          uuid.New(),
		OwnerID:     owner,
		Front:       "front " + uuid.NewString()[:8],
		Back:        "back",
		DateCreated: testNow.AddDate(0, 0, -30),
	}
}

func reviewedCard(owner uuid.UUID, next time.Time) domain.Card {
	c := newCard(owner)
	reviewed := next.AddDate(0, 0, -1)
	d := domain.DifficultyHard
	c.LastReviewed = &reviewed
	c.NextReviewDate = &next
	c.Difficulty = &d
	return c
}

func inGroup(c domain.Card, g uuid.UUID) domain.Card {
	c.GroupID = &g
	return c
}

// memStore is an in-memory card store wired into a cardStoreMock, so tests
// can override single methods and still inspect calls.
type memStore struct {
	mu    sync.Mutex
	cards []domain.Card
	clock clockwork.Clock
}

func (m *memStore) mock() *cardStoreMock {
	return &cardStoreMock{
		ListFunc:     m.list,
		CreateFunc:   m.create,
		UpdateFunc:   m.update,
		DeleteFunc:   m.delete,
		MoveManyFunc: m.moveMany,
	}
}

func (m *memStore) list(_ context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.Card{}
	for i := range m.cards {
		if m.cards[i].OwnerID == ownerID && filter.Matches(&m.cards[i]) {
			out = append(out, m.cards[i])
		}
	}
	return out, nil
}

func (m *memStore) create(_ context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := domain.Card{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Front:       in.Front,
		Back:        in.Back,
		Category:    in.Category,
		DateCreated: m.clock.Now().UTC(),
		GroupID:     in.GroupID,
	}
	m.cards = append(m.cards, c)
	return &c, nil
}

func (m *memStore) update(_ context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(ownerID, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	m.cards[i] = m.cards[i].Apply(patch)
	c := m.cards[i]
	return &c, nil
}

func (m *memStore) delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(ownerID, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	m.cards = slices.Delete(m.cards, i, i+1)
	return nil
}

func (m *memStore) moveMany(_ context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		if m.indexLocked(ownerID, id) < 0 {
			return domain.ErrNotFound
		}
	}
	for _, id := range ids {
		m.cards[m.indexLocked(ownerID, id)].GroupID = groupID
	}
	return nil
}

func (m *memStore) indexLocked(ownerID, id uuid.UUID) int {
	return slices.IndexFunc(m.cards, func(c domain.Card) bool {
		return c.ID == id && c.OwnerID == ownerID
	})
}

func (m *memStore) get(id uuid.UUID) (domain.Card, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.cards {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Card{}, false
}

type testEnv struct {
	svc   *Service
	mem   *memStore
	store *cardStoreMock
	clock *clockwork.FakeClock
}

func newTestEnv(t *testing.T, seed ...domain.Card) *testEnv {
	t.Helper()

	clock := clockwork.NewFakeClockAt(testNow)
	mem := &memStore{cards: slices.Clone(seed), clock: clock}
	store := mem.mock()
	svc := NewService(slog.New(slog.DiscardHandler), store, clock, Config{})

	return &testEnv{svc: svc, mem: mem, store: store, clock: clock}
}

func (e *testEnv) ctx(owner uuid.UUID) context.Context {
	return ctxutil.WithOwnerID(context.Background(), owner)
}
