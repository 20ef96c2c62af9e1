// Package card implements the Card Store on PostgreSQL.
// Queries are built with squirrel; writes that touch several rows run in a transaction.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const table = "cards"

var columns = []string{
	"id", "owner_id", "front", "back", "category", "difficulty",
	"date_created", "last_reviewed", "next_review_date", "group_id",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool  *pgxpool.Pool
	txm   *postgres.TxManager
	clock clockwork.Clock
}

// New creates a new card repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager, clock clockwork.Clock) *Repo {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Repo{pool: pool, txm: txm, clock: clock}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the owner's cards matching filter, in insertion order.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error) {
	query := psql.Select(columns...).From(table).Where(sq.Eq{"owner_id": ownerID}).OrderBy("seq ASC")
	if filter.IsSet() {
		if gid := filter.GroupID(); gid != nil {
			query = query.Where(sq.Eq{"group_id": *gid})
		} else {
			query = query.Where(sq.Eq{"group_id": nil})
		}
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "cards of owner", ownerID)
	}
	defer rows.Close()

	cards, err := scanCards(rows)
	if err != nil {
		return nil, postgres.MapError(err, "cards of owner", ownerID)
	}
	return cards, nil
}

// GetByID returns a single card of the owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Card, error) {
	sqlStr, args, err := psql.Select(columns...).From(table).
		Where(sq.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new never-reviewed card. The store assigns ID and DateCreated.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error) {
	id := uuid.New()
	now := r.clock.Now().UTC().Truncate(time.Microsecond)

	sqlStr, args, err := psql.Insert(table).
		Columns("id", "owner_id", "front", "back", "category", "date_created", "group_id").
		Values(id, ownerID, in.Front, in.Back, in.Category, now, in.GroupID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// Update merges patch into the stored card atomically and returns the stored result.
// An empty patch returns the current card unchanged.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, ownerID, id)
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
		set["last_reviewed"] = patch.LastReviewed.UTC()
	}
	if patch.NextReviewDate != nil {
		set["next_review_date"] = patch.NextReviewDate.UTC()
	}

	sqlStr, args, err := psql.Update(table).
		SetMap(set).
		Where(sq.Eq{"owner_id": ownerID, "id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// Delete removes a card. Returns domain.ErrNotFound if the owner has no such card.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete(table).
		Where(sq.Eq{"owner_id": ownerID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "card", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MoveMany reassigns every listed card to groupID (nil = ungrouped) in one transaction.
// If any id is unknown to the owner nothing is moved and domain.ErrNotFound is returned.
func (r *Repo) MoveMany(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	unique := dedupe(ids)

	sqlStr, args, err := psql.Update(table).
		Set("group_id", groupID).
		Where(sq.Eq{"owner_id": ownerID}).
		Where("id = ANY(?::uuid[])", unique).
		ToSql()
	if err != nil {
		return fmt.Errorf("build move query: %w", err)
	}

	return r.txm.RunInTx(ctx, func(ctx context.Context) error {
		tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
		if err != nil {
			return postgres.MapError(err, "cards of owner", ownerID)
		}
		if got := tag.RowsAffected(); got != int64(len(unique)) {
			return fmt.Errorf("move cards: %d of %d found: %w", got, len(unique), domain.ErrNotFound)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

func scanCard(row pgx.Row) (domain.Card, error) {
	var (
		c          domain.Card
		difficulty *string
	)

	if err := row.Scan(&c.ID, &c.OwnerID, &c.Front, &c.Back, &c.Category, &difficulty,
		&c.DateCreated, &c.LastReviewed, &c.NextReviewDate, &c.GroupID); err != nil {
		return domain.Card{}, err
	}

	if difficulty != nil {
		d := domain.Difficulty(*difficulty)
		c.Difficulty = &d
	}
	c.DateCreated = c.DateCreated.UTC()
	c.LastReviewed = utcPtr(c.LastReviewed)
	c.NextReviewDate = utcPtr(c.NextReviewDate)

	return c, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
