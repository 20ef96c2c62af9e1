package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

func newStudyService(t *testing.T) (*study.Service, context.Context) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	store, err := sqlite.Open(context.Background(), ":memory:", clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := study.NewService(slog.New(slog.DiscardHandler), store, clock, study.Config{})
	return svc, ctxutil.WithOwnerID(context.Background(), uuid.New())
}

func TestStudyLoop(t *testing.T) {
	t.Parallel()

	svc, ctx := newStudyService(t)
	for _, f := range []string{"capital of France", "capital of Peru"} {
		_, err := svc.CreateCard(ctx, study.CreateCardInput{Front: f, Back: "answer to " + f})
		require.NoError(t, err)
	}

	in := strings.NewReader("s\ne\nn\nbogus\nedit back Lima\nh\nq\n")
	var out bytes.Buffer

	require.NoError(t, studyLoop(ctx, svc, study.StartSessionInput{}, in, &out))

	got := out.String()
	assert.Contains(t, got, "Q: capital of France")
	assert.Contains(t, got, "A: answer to capital of France")
	assert.Contains(t, got, "Q: capital of Peru")
	assert.Contains(t, got, `unknown command "bogus"`)
	assert.Contains(t, got, "Session complete: 2 of 2 cards")

	cards, err := svc.ListCards(ctx, study.ListCardsInput{})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Lima", cards[1].Back)
	assert.Equal(t, domain.DifficultyHard, *cards[1].Difficulty)
}

// flakyStore fails the first Update with a storage error.
type flakyStore struct {
	*sqlite.Store
	failed atomic.Bool
}

func (s *flakyStore) Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	if s.failed.CompareAndSwap(false, true) {
		return nil, domain.NewPersistenceError("update card", errors.New("connection reset"))
	}
	return s.Store.Update(ctx, ownerID, id, patch)
}

func TestStudyLoop_RetryAfterStoreFailure(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	inner, err := sqlite.Open(context.Background(), ":memory:", clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inner.Close() })

	store := &flakyStore{Store: inner}
	svc := study.NewService(slog.New(slog.DiscardHandler), store, clock, study.Config{})
	ctx := ctxutil.WithOwnerID(context.Background(), uuid.New())

	card, err := svc.CreateCard(ctx, study.CreateCardInput{Front: "capital of Chile", Back: "Santiago"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, studyLoop(ctx, svc, study.StartSessionInput{}, strings.NewReader("e\ne\nq\n"), &out))

	got := out.String()
	assert.Contains(t, got, "! ")
	assert.Contains(t, got, "connection reset")
	assert.Contains(t, got, "Session complete: 1 of 1 cards")

	rated, err := svc.GetCard(ctx, card.ID)
	require.NoError(t, err)
	require.NotNil(t, rated.Difficulty)
	assert.Equal(t, domain.DifficultyEasy, *rated.Difficulty)
}

func TestStudyLoop_NothingDue(t *testing.T) {
	t.Parallel()

	svc, ctx := newStudyService(t)
	var out bytes.Buffer

	require.NoError(t, studyLoop(ctx, svc, study.StartSessionInput{}, strings.NewReader("e\n"), &out))
	assert.Contains(t, out.String(), "No cards are due.")
	assert.Contains(t, out.String(), study.ErrEmptyQueue.Error())
}

func TestCLI_Run(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := &cli{in: strings.NewReader(""), out: &out, errOut: &errOut}

	require.NoError(t, c.run(context.Background(), []string{"version"}))
	assert.NotEmpty(t, out.String())

	require.NoError(t, c.run(context.Background(), nil))
	assert.Contains(t, errOut.String(), "Usage: flashcards")

	err := c.run(context.Background(), []string{"frobnicate"})
	var uerr usageError
	assert.ErrorAs(t, err, &uerr)

	err = c.run(context.Background(), []string{"delete", "--id", "not-a-uuid"})
	assert.ErrorAs(t, err, &uerr)

	require.NoError(t, c.run(context.Background(), []string{"list", "--help"}))
	require.NoError(t, c.run(context.Background(), []string{"serve", "--help"}))
	assert.Contains(t, errOut.String(), "--port")

	err = c.run(context.Background(), []string{"serve", "extra"})
	assert.ErrorAs(t, err, &uerr)
}

func TestParseGroupFilter(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	f, err := parseGroupFilter("")
	require.NoError(t, err)
	assert.False(t, f.IsSet())

	f, err = parseGroupFilter("NONE")
	require.NoError(t, err)
	assert.True(t, f.IsSet())
	assert.Nil(t, f.GroupID())

	f, err = parseGroupFilter(id.String())
	require.NoError(t, err)
	assert.Equal(t, &id, f.GroupID())

	_, err = parseGroupFilter("abc")
	assert.Error(t, err)

	gid, err := parseGroupID("none")
	require.NoError(t, err)
	assert.Nil(t, gid)
}
