package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCard inserts a never-reviewed card for owner directly and returns it.
// Cards seeded in sequence keep their insertion order.
func SeedCard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, groupID *uuid.UUID) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	card := domain.Card{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Front:       "front-" + suffix,
		Back:        "back-" + suffix,
		DateCreated: time.Now().UTC().Truncate(time.Microsecond),
		GroupID:     groupID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, owner_id, front, back, category, date_created, group_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID, card.OwnerID, card.Front, card.Back, card.Category, card.DateCreated, card.GroupID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert: %v", err)
	}

	return card
}

// SeedReviewedCard inserts a card that was last reviewed at reviewed and is due at next.
func SeedReviewedCard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, reviewed, next time.Time, d domain.Difficulty) domain.Card {
	t.Helper()

	card := SeedCard(t, pool, ownerID, nil)
	reviewed = reviewed.UTC().Truncate(time.Microsecond)
	next = next.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`UPDATE cards SET last_reviewed = $2, next_review_date = $3, difficulty = $4 WHERE id = $1`,
		card.ID, reviewed, next, string(d),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewedCard update: %v", err)
	}

	card.LastReviewed = &reviewed
	card.NextReviewDate = &next
	card.Difficulty = &d
	return card
}
