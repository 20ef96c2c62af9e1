package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

type sessionStarter interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (*study.Session, error)
}

// SessionHandler exposes study sessions over HTTP. Each owner has at most
// one live session; starting another closes the previous one.
type SessionHandler struct {
	svc sessionStarter
	log *slog.Logger

	mu      sync.Mutex
	byOwner map[uuid.UUID]*study.Session
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionStarter, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		svc:     svc,
		log:     log.With("handler", "sessions"),
		byOwner: make(map[uuid.UUID]*study.Session),
	}
}

// Close stops every live session.
func (h *SessionHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for owner, sess := range h.byOwner {
		sess.Close()
		delete(h.byOwner, owner)
	}
}

type startSessionRequest struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// Start handles POST /sessions.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter, err := parseGroupFilter(req.Group)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.StartSession(r.Context(), study.StartSessionInput{Filter: filter, Count: req.Count})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.mu.Lock()
	if prev, ok := h.byOwner[ownerID]; ok {
		prev.Close()
	}
	h.byOwner[ownerID] = sess
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, toSessionResponse(sess.Snapshot()))
}

// lookup returns the caller's session named in the path. Sessions of other
// owners are reported as not found.
func (h *SessionHandler) lookup(r *http.Request) (*study.Session, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context())
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.byOwner[ownerID]
	if !ok || sess.ID() != id {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.lookup(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

type sessionRateRequest struct {
	CardID     uuid.UUID `json:"card_id"`
	Difficulty string    `json:"difficulty"`
}

// Rate handles POST /sessions/{id}/rate.
func (h *SessionHandler) Rate(w http.ResponseWriter, r *http.Request) {
	sess, err := h.lookup(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req sessionRateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.CardID == uuid.Nil {
		handleError(h.log, w, r, domain.NewValidationError("card_id", "required"))
		return
	}

	if _, err := sess.Rate(r.Context(), req.CardID, domain.ParseDifficulty(req.Difficulty)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

type navigateRequest struct {
	Direction string `json:"direction"`
}

// Navigate handles POST /sessions/{id}/navigate.
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	sess, err := h.lookup(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req navigateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := sess.Navigate(domain.ParseDirection(req.Direction)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// Pause handles POST /sessions/{id}/pause.
func (h *SessionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(_ context.Context, s *study.Session) error { return s.Pause() })
}

// Resume handles POST /sessions/{id}/resume.
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(_ context.Context, s *study.Session) error { return s.Resume() })
}

// Reset handles POST /sessions/{id}/reset.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, s *study.Session) error { return s.Reset(ctx) })
}

func (h *SessionHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, *study.Session) error) {
	sess, err := h.lookup(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := fn(r.Context(), sess); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// EditCurrent handles PATCH /sessions/{id}/current.
func (h *SessionHandler) EditCurrent(w http.ResponseWriter, r *http.Request) {
	sess, err := h.lookup(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req editCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	_, err = sess.EditCurrent(r.Context(), study.EditCardInput{
		Front:    req.Front,
		Back:     req.Back,
		Category: req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// End handles DELETE /sessions/{id}.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	sess, err := h.lookup(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ownerID, _ := ctxutil.OwnerIDFromCtx(r.Context())

	h.mu.Lock()
	if h.byOwner[ownerID] == sess {
		delete(h.byOwner, ownerID)
	}
	h.mu.Unlock()

	sess.Close()
	w.WriteHeader(http.StatusNoContent)
}
