package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generate"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

type cardGenerator interface {
	Generate(ctx context.Context, input generate.GenerateInput) ([]domain.CardInput, error)
	Import(ctx context.Context, input generate.ImportInput) (study.BatchCreateResult, error)
}

// GenerateHandler turns free text into flashcards.
type GenerateHandler struct {
	svc cardGenerator
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc cardGenerator, log *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: log.With("handler", "generate")}
}

type generateRequest struct {
	Text     string     `json:"text"`
	MaxCards int        `json:"max_cards"`
	GroupID  *uuid.UUID `json:"group_id"`
}

// Preview handles POST /generate. Candidates are returned, not stored.
func (h *GenerateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	candidates, err := h.svc.Generate(r.Context(), generate.GenerateInput{Text: req.Text, MaxCards: req.MaxCards})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]candidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, candidateResponse{Front: c.Front, Back: c.Back, Category: c.Category})
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": out})
}

// Import handles POST /generate/import: generate and store in one step.
func (h *GenerateHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Import(r.Context(), generate.ImportInput{
		Text:     req.Text,
		MaxCards: req.MaxCards,
		GroupID:  req.GroupID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResponse(res))
}
