package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// newRequest builds a request authenticated as ownerID. A string body is
// sent verbatim; anything else is JSON-encoded.
func newRequest(t *testing.T, ownerID uuid.UUID, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
		r = &buf
	}
	req := httptest.NewRequest(method, target, r)
	if ownerID != uuid.Nil {
		req = req.WithContext(ctxutil.WithOwnerID(req.Context(), ownerID))
	}
	return req
}

// serve routes req through a mux so path values are populated.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func testCard(front string) domain.Card {
	return domain.Card{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Front:       front,
		Back:        "back of " + front,
		DateCreated: testNow,
	}
}

func ctxOwner(ctx context.Context) uuid.UUID {
	id, _ := ctxutil.OwnerIDFromCtx(ctx)
	return id
}
