package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

type cardService interface {
	ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Card, error)
	CreateCards(ctx context.Context, input study.BatchCreateCardsInput) (study.BatchCreateResult, error)
	EditCard(ctx context.Context, input study.EditCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input study.DeleteCardInput) error
	MoveCards(ctx context.Context, input study.MoveCardsInput) error
	RateCard(ctx context.Context, input study.RateCardInput) (*domain.Card, error)
	StudyQueue(ctx context.Context, input study.GetQueueInput) ([]domain.Card, error)
}

// CardHandler serves the card collection and the study queue.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, log *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: log.With("handler", "cards")}
}

// List handles GET /cards?group=.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseGroupFilter(r.URL.Query().Get("group"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cards, err := h.svc.ListCards(r.Context(), study.ListCardsInput{Filter: filter})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(cards))
}

// Get handles GET /cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	card, err := h.svc.GetCard(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Create handles POST /cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input study.CreateCardInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	card, err := h.svc.CreateCard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(*card))
}

// CreateBatch handles POST /cards/batch. Per-card failures are reported in
// the body; the request itself succeeds unless the whole batch is invalid.
func (h *CardHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var input study.BatchCreateCardsInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CreateCards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResponse(res))
}

type editCardRequest struct {
	Front    *string `json:"front"`
	Back     *string `json:"back"`
	Category *string `json:"category"`
}

// Edit handles PATCH /cards/{id}. Omitted fields are left unchanged.
func (h *CardHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req editCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	card, err := h.svc.EditCard(r.Context(), study.EditCardInput{
		CardID:   id,
		Front:    req.Front,
		Back:     req.Back,
		Category: req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Delete handles DELETE /cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), study.DeleteCardInput{CardID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Move handles POST /cards/move. A null or missing group_id ungroups the cards.
func (h *CardHandler) Move(w http.ResponseWriter, r *http.Request) {
	var input study.MoveCardsInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.MoveCards(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rateRequest struct {
	Difficulty string `json:"difficulty"`
}

// Rate handles POST /cards/{id}/rate outside of any session.
func (h *CardHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req rateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	card, err := h.svc.RateCard(r.Context(), study.RateCardInput{
		CardID:     id,
		Difficulty: domain.ParseDifficulty(req.Difficulty),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(*card))
}

// Queue handles GET /queue?group=&count=.
func (h *CardHandler) Queue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := parseGroupFilter(q.Get("group"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	count, err := parseCount(q.Get("count"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cards, err := h.svc.StudyQueue(r.Context(), study.GetQueueInput{Filter: filter, Count: count})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(cards))
}

// parseCount reads an optional count; empty means the configured default.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidationError("count", "must be an integer")
	}
	return n, nil
}
