package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and the request and owner IDs when known.
//
// The owner ID is set by Auth further down the chain, so it is read from the
// statusWriter rather than from the incoming request context.
func Logger(logger *slog.Logger, clock clockwork.Clock) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clock.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", clock.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if sw.ownerID != "" {
				attrs = append(attrs, slog.String("user_id", sw.ownerID))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	ownerID     string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// TagOwner records the authenticated owner on the request's statusWriter,
// if there is one, so the access log can include it.
func TagOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ownerID, ok := ctxutil.OwnerIDFromCtx(r.Context()); ok {
			if sw, ok := findStatusWriter(w); ok {
				sw.ownerID = ownerID.String()
			}
		}
		next.ServeHTTP(w, r)
	})
}

func findStatusWriter(w http.ResponseWriter) (*statusWriter, bool) {
	for {
		switch v := w.(type) {
		case *statusWriter:
			return v, true
		case interface{ Unwrap() http.ResponseWriter }:
			w = v.Unwrap()
		default:
			return nil, false
		}
	}
}
