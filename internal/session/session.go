// Package session is the explicit session state handed to every protected
// operation instead of a process-wide credential.
package session

import (
	"context"

	"payment-admin/internal/entities"
	"payment-admin/pkg/contextkeys"
	apperrors "payment-admin/pkg/errors"
)

type Session struct {
	ID         string
	Credential string
	User       entities.User
}

// Authenticated reports whether a credential is held.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextkeys.SessionKey, s)
}

func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(contextkeys.SessionKey).(Session)
	if !ok {
		return Session{}, apperrors.ErrSessionNotInContext
	}
	return s, nil
}

// GateResult is the session gate's answer for one request.
type GateResult struct {
	Redirect bool
	Session  Session
}
