package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// BatchCreateResult holds the outcome of a batch card creation.
// Every input index appears exactly once, either in Created or in Errors.
type BatchCreateResult struct {
	Created []domain.Card
	Errors  []BatchCreateError
}

// BatchCreateError describes why the card at Index of the input was not created.
type BatchCreateError struct {
	Index  int
	Reason string
}

// SessionSummary is delivered when a study session completes.
type SessionSummary struct {
	SessionID      uuid.UUID
	TotalCards     int
	CompletedCount int
	ElapsedSeconds int
}

// SessionSnapshot is a point-in-time view of a study session.
type SessionSnapshot struct {
	ID             uuid.UUID
	State          domain.SessionState
	Position       int
	Total          int
	CompletedCount int
	ElapsedSeconds int
	Current        *domain.Card
}
