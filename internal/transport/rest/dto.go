package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

type cardResponse struct {
	ID             uuid.UUID  `json:"id"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Category       string     `json:"category"`
	Difficulty     *string    `json:"difficulty"`
	DateCreated    time.Time  `json:"date_created"`
	LastReviewed   *time.Time `json:"last_reviewed"`
	NextReviewDate *time.Time `json:"next_review_date"`
	GroupID        *uuid.UUID `json:"group_id"`
}

func toCardResponse(c domain.Card) cardResponse {
	resp := cardResponse{
		ID:             c.ID,
		Front:          c.Front,
		Back:           c.Back,
		Category:       c.Category,
		DateCreated:    c.DateCreated,
		LastReviewed:   c.LastReviewed,
		NextReviewDate: c.NextReviewDate,
		GroupID:        c.GroupID,
	}
	if c.Difficulty != nil {
		d := c.Difficulty.String()
		resp.Difficulty = &d
	}
	return resp
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

type listResponse struct {
	Cards []cardResponse `json:"cards"`
	Count int            `json:"count"`
}

func newListResponse(cards []domain.Card) listResponse {
	return listResponse{Cards: toCardResponses(cards), Count: len(cards)}
}

type batchError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type batchResponse struct {
	Created []cardResponse `json:"created"`
	Errors  []batchError   `json:"errors"`
}

func toBatchResponse(res study.BatchCreateResult) batchResponse {
	resp := batchResponse{
		Created: toCardResponses(res.Created),
		Errors:  make([]batchError, 0, len(res.Errors)),
	}
	for _, e := range res.Errors {
		resp.Errors = append(resp.Errors, batchError{Index: e.Index, Reason: e.Reason})
	}
	return resp
}

type candidateResponse struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

type sessionResponse struct {
	ID             uuid.UUID     `json:"id"`
	State          string        `json:"state"`
	Position       int           `json:"position"`
	Total          int           `json:"total"`
	CompletedCount int           `json:"completed_count"`
	ElapsedSeconds int           `json:"elapsed_seconds"`
	Current        *cardResponse `json:"current"`
}

func toSessionResponse(s study.SessionSnapshot) sessionResponse {
	resp := sessionResponse{
		ID:             s.ID,
		State:          s.State.String(),
		Position:       s.Position,
		Total:          s.Total,
		CompletedCount: s.CompletedCount,
		ElapsedSeconds: s.ElapsedSeconds,
	}
	if s.Current != nil {
		c := toCardResponse(*s.Current)
		resp.Current = &c
	}
	return resp
}
