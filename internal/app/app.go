package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/mock"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generate"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

type cardStore interface {
	List(ctx context.Context, ownerID uuid.UUID, filter domain.GroupFilter) ([]domain.Card, error)
	Create(ctx context.Context, ownerID uuid.UUID, in domain.CardInput) (*domain.Card, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.CardPatch) (*domain.Card, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	MoveMany(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, groupID *uuid.UUID) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type cardGenerator interface {
	GenerateCards(ctx context.Context, text string, maxCards int) (string, error)
}

// App holds the wired services of one process.
type App struct {
	Log      *slog.Logger
	Auth     *auth.JWTManager
	Study    *study.Service
	Generate *generate.Service

	clock   clockwork.Clock
	store   pinger
	closers []func()
}

// New opens the configured card store and wires the services on top of it.
// A nil clock means the real clock. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, clock clockwork.Clock) (*App, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	a := &App{Log: log, clock: clock}

	store, err := a.openStore(ctx, cfg, log, clock)
	if err != nil {
		return nil, err
	}

	a.Auth = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)
	a.Study = study.NewService(log, store, clock, study.Config{
		SessionSize:  cfg.Study.SessionSize,
		TickInterval: cfg.Study.TickInterval,
	})

	gen, fallback := newGenerators(cfg.Generator, log)
	a.Generate = generate.NewService(log, gen, fallback, a.Study, cfg.Generator.MaxCards)

	log.InfoContext(ctx, "application initialised",
		slog.String("version", BuildVersion()),
		slog.String("store", string(cfg.Store.Driver)),
		slog.String("generator", cfg.Generator.Provider),
	)

	return a, nil
}

// HTTPHandler builds the REST API over the wired services. The rate limiter
// and any live study sessions are released by Close.
func (a *App) HTTPHandler(cfg *config.Config) http.Handler {
	limiter := middleware.NewRateLimiter(a.clock, cfg.RateLimit.CleanupInterval)
	sessions := rest.NewSessionHandler(a.Study, a.Log)
	a.closers = append(a.closers, limiter.Stop, sessions.Close)

	return rest.NewRouter(rest.RouterConfig{
		Log:               a.Log,
		Clock:             a.clock,
		CORS:              cfg.CORS,
		Auth:              a.Auth,
		Limiter:           limiter,
		GeneratePerMinute: cfg.RateLimit.GeneratePerMinute,
		Health:            rest.NewHealthHandler(a.store, a.clock, BuildVersion()),
		Cards:             rest.NewCardHandler(a.Study, a.Log),
		Sessions:          sessions,
		Generate:          rest.NewGenerateHandler(a.Generate, a.Log),
	})
}

// Close releases the store in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config, log *slog.Logger, clock clockwork.Clock) (cardStore, error) {
	switch cfg.Store.Driver {
	case domain.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.store = pool
		return card.New(pool, postgres.NewTxManager(pool), clock), nil

	case domain.StoreDriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.Path, clock)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := s.Close(); err != nil {
				log.Warn("close local store", slog.String("error", err.Error()))
			}
		})
		a.store = s
		return s, nil

	default:
		return nil, errors.New("unknown store driver: " + string(cfg.Store.Driver))
	}
}

// newGenerators returns the configured card generator and its fallback.
// The offline generator backs up the remote one so a provider outage still
// yields cards.
func newGenerators(cfg config.GeneratorConfig, log *slog.Logger) (gen, fallback cardGenerator) {
	if cfg.Provider == config.ProviderAnthropic {
		return anthropic.New(anthropic.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}, log), mock.New()
	}
	return mock.New(), nil
}
