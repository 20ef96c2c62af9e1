// Package sqlite implements the local Card Store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const table = "cards"

var columns = []string{
	"id", "owner_id", "front", "back", "category", "difficulty",
	"date_created", "last_reviewed", "next_review_date", "group_id",
}

// Store provides card persistence in a single SQLite file.
type Store struct {
	db    *sql.DB
	clock clockwork.Clock
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, clock clockwork.Clock) (*Store, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection serialises writers and keeps a :memory: database alive.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &Store{db: db, clock: clock}, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) builder(r sq.BaseRunner) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(r)
}

// List returns the owner's cards matching filter, in insertion order.
func (s *Store) List(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error) {
	query := s.builder(s.db).Select(columns...).From(table).
		Where(sq.Eq{"owner_id": ownerID.String()}).
		OrderBy("seq ASC")
	if filter.IsSet() {
		query = query.Where(sq.Eq{"group_id": formatUUID(filter.GroupID())})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "cards of owner", ownerID)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, mapError(err, "cards of owner", ownerID)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "cards of owner", ownerID)
	}
	return cards, nil
}

// GetByID returns a single card of the owner.
func (s *Store) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Card, error) {
	row := s.builder(s.db).Select(columns...).From(table).
		Where(sq.Eq{"owner_id": ownerID.String(), "id": id.String()}).
		QueryRowContext(ctx)

	c, err := scanCard(row)
	if err != nil {
		return nil, mapError(err, "card", id)
	}
	return &c, nil
}

// Create inserts a new never-reviewed card. The store assigns ID and DateCreated.
func (s *Store) Create(ctx context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error) {
	id := uuid.New()
	now := s.clock.Now()

	row := s.builder(s.db).Insert(table).
		Columns("id", "owner_id", "front", "back", "category", "date_created", "group_id").
		Values(id.String(), ownerID.String(), in.Front, in.Back, in.Category, formatTime(&now), formatUUID(in.GroupID)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		QueryRowContext(ctx)

	c, err := scanCard(row)
	if err != nil {
		return nil, mapError(err, "card", id)
	}
	return &c, nil
}

// Update merges patch into the stored card and returns the stored result.
func (s *Store) Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	if patch.IsEmpty() {
		return s.GetByID(ctx, ownerID, id)
	}

	set := make(map[string]any, 6)
	if patch.Front != nil {
		set["front"] = *patch.Front
	}
	if patch.Back != nil {
		set["back"] = *patch.Back
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Difficulty != nil {
		set["difficulty"] = string(*patch.Difficulty)
	}
	if patch.LastReviewed != nil {
		set["last_reviewed"] = formatTime(patch.LastReviewed)
	}
	if patch.NextReviewDate != nil {
		set["next_review_date"] = formatTime(patch.NextReviewDate)
	}

	row := s.builder(s.db).Update(table).
		SetMap(set).
		Where(sq.Eq{"owner_id": ownerID.String(), "id": id.String()}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		QueryRowContext(ctx)

	c, err := scanCard(row)
	if err != nil {
		return nil, mapError(err, "card", id)
	}
	return &c, nil
}

// Delete removes a card. Returns domain.ErrNotFound if the owner has no such card.
func (s *Store) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := s.builder(s.db).Delete(table).
		Where(sq.Eq{"owner_id": ownerID.String(), "id": id.String()}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "card", id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, "card", id)
	}
	if n == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MoveMany reassigns every listed card to groupID (nil = ungrouped) in one transaction.
// If any id is unknown to the owner nothing is moved and domain.ErrNotFound is returned.
func (s *Store) MoveMany(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) (err error) {
	if len(ids) == 0 {
		return nil
	}

	unique := make([]string, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id.String())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := s.builder(tx).Update(table).
		Set("group_id", formatUUID(groupID)).
		Where(sq.Eq{"owner_id": ownerID.String(), "id": unique}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "cards of owner", ownerID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, "cards of owner", ownerID)
	}
	if n != int64(len(unique)) {
		return fmt.Errorf("move cards: %d of %d found: %w", n, len(unique), domain.ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning and encoding
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(row scanner) (domain.Card, error) {
	var (
		c                        domain.Card
		id, ownerID, created     string
		difficulty, lastReviewed sql.NullString
		nextReview, groupID      sql.NullString
	)

	if err := row.Scan(&id, &ownerID, &c.Front, &c.Back, &c.Category, &difficulty,
		&created, &lastReviewed, &nextReview, &groupID); err != nil {
		return domain.Card{}, err
	}

	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return domain.Card{}, fmt.Errorf("parse id: %w", err)
	}
	if c.OwnerID, err = uuid.Parse(ownerID); err != nil {
		return domain.Card{}, fmt.Errorf("parse owner_id: %w", err)
	}
	if c.DateCreated, err = time.Parse(timeLayout, created); err != nil {
		return domain.Card{}, fmt.Errorf("parse date_created: %w", err)
	}
	if difficulty.Valid {
		d := domain.Difficulty(difficulty.String)
		c.Difficulty = &d
	}
	if c.LastReviewed, err = parseTime(lastReviewed); err != nil {
		return domain.Card{}, fmt.Errorf("parse last_reviewed: %w", err)
	}
	if c.NextReviewDate, err = parseTime(nextReview); err != nil {
		return domain.Card{}, fmt.Errorf("parse next_review_date: %w", err)
	}
	if groupID.Valid {
		gid, err := uuid.Parse(groupID.String)
		if err != nil {
			return domain.Card{}, fmt.Errorf("parse group_id: %w", err)
		}
		c.GroupID = &gid
	}

	return c, nil
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Truncate(time.Microsecond).Format(timeLayout)
}

func parseTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

// mapError converts database/sql and sqlite errors to domain errors.
// Context errors pass through unmapped.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%s %s: %w", entity, id, domain.NewValidationError(entity, sqliteErr.Error()))
		}
	}

	return domain.NewPersistenceError(fmt.Sprintf("%s %s", entity, id), err)
}
