package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Session errors.
var (
	ErrNotCurrentCard    = errors.New("card is not the current session card")
	ErrRatingInFlight    = errors.New("a rating is already in flight")
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrEmptyQueue        = errors.New("session queue is empty")
)

// Session is one bounded pass over a queue of cards.
//
// All transitions are serialised by mu. Rate releases the lock while the
// store write is outstanding; the inFlight flag keeps every other transition
// out until it returns. Ticks are not blocked by a rating.
type Session struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	svc       *Service
	clock     clockwork.Clock
	tickEvery time.Duration
	input     StartSessionInput
	log       *slog.Logger

	mu        sync.Mutex
	queue     []domain.Card
	position  int
	completed int
	elapsed   int
	state     domain.SessionState
	inFlight  bool
	closed    bool
	tickGen   uint64
	stopTick  func()
}

// StartSession selects a queue and starts an ACTIVE session over it.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*Session, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	queue, err := s.selectQueue(ctx, ownerID, input.Filter, input.Count)
	if err != nil {
		return nil, fmt.Errorf("select queue: %w", err)
	}

	sess := &Session{
		id:        uuid.New(),
		ownerID:   ownerID,
		svc:       s,
		clock:     s.clock,
		tickEvery: s.cfg.TickInterval,
		input:     input,
		queue:     queue,
		state:     domain.SessionStateActive,
	}
	sess.log = s.log.With("session_id", sess.id.String())

	sess.mu.Lock()
	sess.startTickerLocked()
	sess.mu.Unlock()

	sess.log.InfoContext(ctx, "study session started",
		slog.String("user_id", ownerID.String()),
		slog.String("filter", input.Filter.String()),
		slog.Int("cards", len(queue)),
	)

	return sess, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Snapshot returns the current session view.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() SessionSnapshot {
	snap := SessionSnapshot{
		ID:             s.id,
		State:          s.state,
		Position:       s.position,
		Total:          len(s.queue),
		CompletedCount: s.completed,
		ElapsedSeconds: s.elapsed,
	}
	if s.position < len(s.queue) {
		c := s.queue[s.position]
		snap.Current = &c
	}
	return snap
}

// Pause stops elapsed-time accrual. ACTIVE -> PAUSED.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guardLocked(); err != nil {
		return err
	}
	if s.state != domain.SessionStateActive {
		return fmt.Errorf("pause from %s: %w", s.state, ErrInvalidTransition)
	}

	s.state = domain.SessionStatePaused
	s.stopTickerLocked()
	return nil
}

// Resume restarts elapsed-time accrual. PAUSED -> ACTIVE.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guardLocked(); err != nil {
		return err
	}
	if s.state != domain.SessionStatePaused {
		return fmt.Errorf("resume from %s: %w", s.state, ErrInvalidTransition)
	}

	s.state = domain.SessionStateActive
	s.startTickerLocked()
	return nil
}

// Tick adds one second of elapsed time. It has no effect unless ACTIVE.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

func (s *Session) tickLocked() {
	if s.closed || s.state != domain.SessionStateActive {
		return
	}
	s.elapsed++
}

// Rate rates the current card and advances the session.
// cardID must be the card at the current position. If the store write fails
// the session does not move and the same card stays current.
// Rating the last card completes the session and fires OnComplete.
func (s *Session) Rate(ctx context.Context, cardID uuid.UUID, difficulty domain.Difficulty) (*domain.Card, error) {
	s.mu.Lock()
	if err := s.guardLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.state != domain.SessionStateActive {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("rate from %s: %w", state, ErrInvalidTransition)
	}
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyQueue
	}
	pos := s.position
	if current := s.queue[pos].ID; current != cardID {
		s.mu.Unlock()
		return nil, fmt.Errorf("rate %s, current is %s: %w", cardID, current, ErrNotCurrentCard)
	}
	s.inFlight = true
	s.mu.Unlock()

	ctx = ctxutil.WithSessionID(ctx, s.id)
	updated, err := s.svc.rateCard(ctx, s.ownerID, RateCardInput{CardID: cardID, Difficulty: difficulty})

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.queue[pos] = *updated
	s.completed = min(s.completed+1, len(s.queue))

	var summary *SessionSummary
	if pos == len(s.queue)-1 {
		s.state = domain.SessionStateComplete
		s.stopTickerLocked()
		summary = &SessionSummary{
			SessionID:      s.id,
			TotalCards:     len(s.queue),
			CompletedCount: s.completed,
			ElapsedSeconds: s.elapsed,
		}
	} else {
		s.position++
	}
	s.mu.Unlock()

	if summary != nil {
		s.complete(ctx, *summary)
	}
	return updated, nil
}

func (s *Session) complete(ctx context.Context, summary SessionSummary) {
	s.log.InfoContext(ctx, "study session completed",
		slog.Int("total_cards", summary.TotalCards),
		slog.Int("completed", summary.CompletedCount),
		slog.Int("elapsed_seconds", summary.ElapsedSeconds),
	)
	if s.input.OnComplete != nil {
		s.input.OnComplete(summary)
	}
}

// Navigate moves to the previous or next card without rating it.
// Moving past either end is a no-op. Nothing is persisted.
func (s *Session) Navigate(direction domain.Direction) error {
	if !direction.IsValid() {
		return domain.NewValidationError("direction", "must be PREVIOUS or NEXT")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guardLocked(); err != nil {
		return err
	}
	if s.state != domain.SessionStateActive {
		return fmt.Errorf("navigate from %s: %w", s.state, ErrInvalidTransition)
	}
	if len(s.queue) == 0 {
		return ErrEmptyQueue
	}

	switch direction {
	case domain.DirectionPrevious:
		if s.position > 0 {
			s.position--
		}
	case domain.DirectionNext:
		if s.position < len(s.queue)-1 {
			s.position++
			s.completed = min(s.completed+1, len(s.queue))
		}
	}
	return nil
}

// Reset reselects the queue with the original input and restarts from the
// first card with zeroed counters. Allowed from any state. While the queue is
// being reselected other transitions fail with ErrRatingInFlight.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	if err := s.guardLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.inFlight = true
	s.mu.Unlock()

	queue, err := s.svc.selectQueue(ctx, s.ownerID, s.input.Filter, s.input.Count)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	if s.closed {
		return fmt.Errorf("session closed: %w", ErrInvalidTransition)
	}

	s.stopTickerLocked()
	s.queue = queue
	s.position = 0
	s.completed = 0
	s.elapsed = 0
	s.state = domain.SessionStateActive
	s.startTickerLocked()

	s.log.InfoContext(ctx, "study session reset", slog.Int("cards", len(queue)))
	return nil
}

// EditCurrent edits the content of the current card and refreshes its
// snapshot in the queue. The position does not change.
func (s *Session) EditCurrent(ctx context.Context, input EditCardInput) (*domain.Card, error) {
	s.mu.Lock()
	if err := s.guardLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.state == domain.SessionStateComplete {
		s.mu.Unlock()
		return nil, fmt.Errorf("edit from %s: %w", s.state, ErrInvalidTransition)
	}
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyQueue
	}
	pos := s.position
	input.CardID = s.queue[pos].ID
	s.inFlight = true
	s.mu.Unlock()

	updated, err := s.svc.editCard(ctxutil.WithSessionID(ctx, s.id), s.ownerID, input)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		return nil, err
	}
	s.queue[pos] = *updated
	return updated, nil
}

// Close stops the ticker. Later transitions fail with ErrInvalidTransition.
// Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTickerLocked()
}

func (s *Session) guardLocked() error {
	if s.closed {
		return fmt.Errorf("session closed: %w", ErrInvalidTransition)
	}
	if s.inFlight {
		return ErrRatingInFlight
	}
	return nil
}

// ---------------------------------------------------------------------------
// Ticker
// ---------------------------------------------------------------------------

// startTickerLocked starts the elapsed-time ticker if it is not running.
// An empty queue has nothing to study, so its clock never runs.
// Each ticker carries a generation so a tick delivered after its ticker was
// stopped is dropped.
func (s *Session) startTickerLocked() {
	if s.stopTick != nil || s.state != domain.SessionStateActive || len(s.queue) == 0 {
		return
	}

	s.tickGen++
	gen := s.tickGen
	ticker := s.clock.NewTicker(s.tickEvery)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.Chan():
				s.mu.Lock()
				if s.tickGen == gen {
					s.tickLocked()
				}
				s.mu.Unlock()
			}
		}
	}()

	s.stopTick = func() {
		ticker.Stop()
		close(done)
	}
}

func (s *Session) stopTickerLocked() {
	if s.stopTick == nil {
		return
	}
	s.stopTick()
	s.stopTick = nil
	s.tickGen++
}
