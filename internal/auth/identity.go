package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Authenticate validates the access token and returns a context carrying its owner ID.
// Any token failure is reported as domain.ErrUnauthorized.
func (m *JWTManager) Authenticate(ctx context.Context, token string) (context.Context, error) {
	ownerID, err := m.ValidateAccessToken(token)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return ctxutil.WithOwnerID(ctx, ownerID), nil
}
