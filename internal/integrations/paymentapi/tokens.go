package paymentapi

import (
	"context"
	"net/http"
	"net/url"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/pkg/types"
)

func (c *Client) ListAPITokens(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.APIToken], error) {
	return fetchList[entities.APIToken](c, ctx, "list_api_tokens", "/api/api-tokens", "api_tokens", token, page, perPage, nil, "Erreur chargement tokens")
}

// CreateAPIToken issues a token for an operator. The plaintext token and
// signature come back only in this answer.
func (c *Client) CreateAPIToken(ctx context.Context, token string, in dto.APITokenRequest) (dto.CreatedAPIToken, error) {
	var res dto.CreatedAPIToken
	err := c.do(ctx, call{
		op:     "create_api_token",
		method: http.MethodPost,
		path:   "/api/api-tokens",
		token:  token,
		body:   in,
	}, &res)
	if err != nil {
		return dto.CreatedAPIToken{}, withFallback(err, "Erreur création token")
	}
	return res, nil
}

// ActivateAPIToken activates one token; the API deactivates the operator's
// other tokens on its side.
func (c *Client) ActivateAPIToken(ctx context.Context, token, id string) (entities.APIToken, error) {
	return fetchOne[entities.APIToken](c, ctx, call{
		op:     "activate_api_token",
		method: http.MethodPost,
		path:   "/api/api-tokens/" + url.PathEscape(id) + "/activate",
		token:  token,
	}, "api_token", "Erreur activation")
}

func (c *Client) DeactivateAPIToken(ctx context.Context, token, id string) (entities.APIToken, error) {
	return fetchOne[entities.APIToken](c, ctx, call{
		op:     "deactivate_api_token",
		method: http.MethodPost,
		path:   "/api/api-tokens/" + url.PathEscape(id) + "/deactivate",
		token:  token,
	}, "api_token", "Erreur désactivation")
}

func (c *Client) DeleteAPIToken(ctx context.Context, token, id string) error {
	err := c.do(ctx, call{
		op:     "delete_api_token",
		method: http.MethodDelete,
		path:   "/api/api-tokens/" + url.PathEscape(id),
		token:  token,
	}, nil)
	return withFallback(err, "Erreur suppression")
}
