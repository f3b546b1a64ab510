package paymentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	apperrors "payment-admin/pkg/errors"
)

const (
	msgLoginFailed    = "Connexion échouée"
	msgSessionInvalid = "Session invalide"
)

// Login exchanges the account credentials for a bearer token.
func (c *Client) Login(ctx context.Context, in dto.LoginDTO) (dto.LoginResult, error) {
	var res dto.LoginResult
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   in,
	}, &res)
	if err != nil {
		return dto.LoginResult{}, withFallback(err, msgLoginFailed)
	}
	if res.Token == "" {
		return dto.LoginResult{}, &apperrors.APIError{Status: http.StatusBadGateway, Message: msgLoginFailed}
	}
	return res, nil
}

// CurrentUser resolves the identity behind token. The API answers either
// {"user": {...}} or the bare user.
func (c *Client) CurrentUser(ctx context.Context, token string) (entities.User, error) {
	var raw map[string]json.RawMessage
	err := c.do(ctx, call{
		op:     "current_user",
		method: http.MethodGet,
		path:   "/api/auth/user",
		token:  token,
	}, &raw)
	if err != nil {
		return entities.User{}, withFallback(err, msgSessionInvalid)
	}

	var user entities.User
	if nested, ok := raw["user"]; ok && string(nested) != "null" {
		if err := json.Unmarshal(nested, &user); err != nil {
			return entities.User{}, withFallback(&apperrors.TransportError{Op: "current_user", Err: fmt.Errorf("decode user: %w", err)}, msgSessionInvalid)
		}
		return user, nil
	}

	flat, err := json.Marshal(raw)
	if err != nil {
		return entities.User{}, withFallback(&apperrors.TransportError{Op: "current_user", Err: err}, msgSessionInvalid)
	}
	if err := json.Unmarshal(flat, &user); err != nil {
		return entities.User{}, withFallback(&apperrors.TransportError{Op: "current_user", Err: fmt.Errorf("decode user: %w", err)}, msgSessionInvalid)
	}
	return user, nil
}
