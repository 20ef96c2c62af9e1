package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (context.Context, error)
}

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	Log     *slog.Logger
	Clock   clockwork.Clock
	CORS    config.CORSConfig
	Auth    authenticator
	Limiter *middleware.RateLimiter

	// GeneratePerMinute caps card generation requests per owner.
	GeneratePerMinute int

	Health   *HealthHandler
	Cards    *CardHandler
	Sessions *SessionHandler
	Generate *GenerateHandler
}

// NewRouter builds the HTTP API. Health probes are public; everything else
// requires a bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	authed := middleware.Chain(middleware.Auth(cfg.Auth), middleware.TagOwner)
	limited := middleware.Chain(authed, cfg.Limiter.Limit(cfg.GeneratePerMinute))

	handle := func(pattern string, mw middleware.Middleware, h http.HandlerFunc) {
		mux.Handle(pattern, mw(h))
	}

	handle("GET /cards", authed, cfg.Cards.List)
	handle("POST /cards", authed, cfg.Cards.Create)
	handle("POST /cards/batch", authed, cfg.Cards.CreateBatch)
	handle("POST /cards/move", authed, cfg.Cards.Move)
	handle("GET /cards/{id}", authed, cfg.Cards.Get)
	handle("PATCH /cards/{id}", authed, cfg.Cards.Edit)
	handle("DELETE /cards/{id}", authed, cfg.Cards.Delete)
	handle("POST /cards/{id}/rate", authed, cfg.Cards.Rate)
	handle("GET /queue", authed, cfg.Cards.Queue)

	handle("POST /sessions", authed, cfg.Sessions.Start)
	handle("GET /sessions/{id}", authed, cfg.Sessions.Get)
	handle("DELETE /sessions/{id}", authed, cfg.Sessions.End)
	handle("POST /sessions/{id}/rate", authed, cfg.Sessions.Rate)
	handle("POST /sessions/{id}/navigate", authed, cfg.Sessions.Navigate)
	handle("POST /sessions/{id}/pause", authed, cfg.Sessions.Pause)
	handle("POST /sessions/{id}/resume", authed, cfg.Sessions.Resume)
	handle("POST /sessions/{id}/reset", authed, cfg.Sessions.Reset)
	handle("PATCH /sessions/{id}/current", authed, cfg.Sessions.EditCurrent)

	handle("POST /generate", limited, cfg.Generate.Preview)
	handle("POST /generate/import", limited, cfg.Generate.Import)

	return middleware.Chain(
		middleware.Recovery(cfg.Log),
		middleware.RequestID,
		middleware.Logger(cfg.Log, cfg.Clock),
		middleware.CORS(cfg.CORS),
	)(mux)
}
