package paymentapi

import (
	"context"
	"net/http"
	"net/url"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/pkg/types"
)

func (c *Client) ListUsers(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.User], error) {
	return fetchList[entities.User](c, ctx, "list_users", "/api/users", "users", token, page, perPage, nil, "Erreur chargement utilisateurs")
}

// CreateUser registers an account; role defaults to ROLE_AGENT.
func (c *Client) CreateUser(ctx context.Context, token string, in dto.CreateUserDTO) (entities.User, error) {
	if in.Role == "" {
		in.Role = entities.RoleAgent
	}
	return fetchOne[entities.User](c, ctx, call{
		op:     "create_user",
		method: http.MethodPost,
		path:   "/api/users",
		token:  token,
		body:   in,
	}, "user", "Erreur création utilisateur")
}

// UpdateUser sends the password pair only when a new password is given.
func (c *Client) UpdateUser(ctx context.Context, token, id string, in dto.UpdateUserDTO) (entities.User, error) {
	if in.Password == "" {
		in.PasswordConfirmation = ""
	}
	return fetchOne[entities.User](c, ctx, call{
		op:     "update_user",
		method: http.MethodPut,
		path:   "/api/users/" + url.PathEscape(id),
		token:  token,
		body:   in,
	}, "user", "Erreur mise à jour")
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	err := c.do(ctx, call{
		op:     "delete_user",
		method: http.MethodDelete,
		path:   "/api/users/" + url.PathEscape(id),
		token:  token,
	}, nil)
	return withFallback(err, "Erreur suppression")
}
