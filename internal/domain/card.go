package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single reviewable flashcard owned by one user.
type Card struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Front          string
	Back           string
	Category       string
	Difficulty     *Difficulty
	DateCreated    time.Time
	LastReviewed   *time.Time
	NextReviewDate *time.Time
	GroupID        *uuid.UUID
}

// IsDue returns true if the card should be offered for review at the given time.
//   - Cards without a NextReviewDate have never been rated and are always due.
//   - Other cards are due when NextReviewDate <= now.
func (c *Card) IsDue(now time.Time) bool {
	if c.NextReviewDate == nil {
		return true
	}
	return !c.NextReviewDate.After(now)
}

// IsNew reports whether the card has never been reviewed.
func (c *Card) IsNew() bool {
	return c.LastReviewed == nil
}

// Apply merges a patch into a copy of the card. Nil patch fields are left untouched.
func (c Card) Apply(p CardPatch) Card {
	if p.Front != nil {
		c.Front = *p.Front
	}
	if p.Back != nil {
		c.Back = *p.Back
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Difficulty != nil {
		d := *p.Difficulty
		c.Difficulty = &d
	}
	if p.LastReviewed != nil {
		t := *p.LastReviewed
		c.LastReviewed = &t
	}
	if p.NextReviewDate != nil {
		t := *p.NextReviewDate
		c.NextReviewDate = &t
	}
	return c
}

// CardInput holds the caller-supplied fields of a new card.
// ID and DateCreated are assigned by the store.
type CardInput struct {
	Front    string
	Back     string
	Category string
	GroupID  *uuid.UUID
}

// CardPatch is a partial update with merge semantics: nil fields are not written.
// GroupID is intentionally absent; cards change group only through a move.
type CardPatch struct {
	Front          *string
	Back           *string
	Category       *string
	Difficulty     *Difficulty
	LastReviewed   *time.Time
	NextReviewDate *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p CardPatch) IsEmpty() bool {
	return p.Front == nil && p.Back == nil && p.Category == nil &&
		p.Difficulty == nil && p.LastReviewed == nil && p.NextReviewDate == nil
}
