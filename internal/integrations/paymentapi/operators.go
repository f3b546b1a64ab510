package paymentapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/pkg/types"
)

func (c *Client) ListOperators(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error) {
	return fetchList[entities.Operator](c, ctx, "list_operators", "/api/operators", "operators", token, page, perPage, nil, "Erreur chargement opérateurs")
}

func (c *Client) CreateOperator(ctx context.Context, token string, in dto.OperatorDTO) (entities.Operator, error) {
	in.Name = strings.TrimSpace(in.Name)
	return fetchOne[entities.Operator](c, ctx, call{
		op:     "create_operator",
		method: http.MethodPost,
		path:   "/api/operators",
		token:  token,
		body:   in,
	}, "operator", "Erreur création opérateur")
}

func (c *Client) UpdateOperator(ctx context.Context, token, id string, in dto.OperatorDTO) (entities.Operator, error) {
	in.Name = strings.TrimSpace(in.Name)
	return fetchOne[entities.Operator](c, ctx, call{
		op:     "update_operator",
		method: http.MethodPut,
		path:   "/api/operators/" + url.PathEscape(id),
		token:  token,
		body:   in,
	}, "operator", "Erreur mise à jour opérateur")
}
