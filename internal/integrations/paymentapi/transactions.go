package paymentapi

import (
	"context"
	"net/url"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/pkg/types"
)

func (c *Client) ListTransactions(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
	params := url.Values{}
	filter.Apply(params)
	return fetchList[entities.Payment](c, ctx, "list_transactions", "/api/transactions", "payments", token, page, perPage, params, "Erreur chargement des transactions")
}
