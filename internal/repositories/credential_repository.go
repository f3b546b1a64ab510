package repositories

import (
	"context"
	"time"
)

// CredentialRepositoryInterface keeps the remote API bearer token of each
// dashboard session. Get returns apperrors.ErrCredentialNotFound when the
// session has no stored token.
type CredentialRepositoryInterface interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

func credentialKey(prefix, sessionID string) string {
	return prefix + ":" + sessionID
}
