package paymentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

// fetchList loads one page of the entity found under key. A missing list is
// empty, a missing meta the single-empty-page default.
func fetchList[T any](
	c *Client,
	ctx context.Context,
	op, path, key, token string,
	page, perPage int,
	extra url.Values,
	fallback string,
) (types.ListPage[T], error) {
	query := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var raw map[string]json.RawMessage
	err := c.do(ctx, call{op: op, method: http.MethodGet, path: path, token: token, query: query}, &raw)
	if err != nil {
		return types.ListPage[T]{}, withFallback(err, fallback)
	}

	out := types.ListPage[T]{
		Items: make([]T, 0),
		Meta:  types.DefaultPageMeta(perPage),
	}

	if itemsRaw, ok := raw[key]; ok && string(itemsRaw) != "null" {
		if err := json.Unmarshal(itemsRaw, &out.Items); err != nil {
			return types.ListPage[T]{}, withFallback(&apperrors.TransportError{Op: op, Err: fmt.Errorf("decode %s: %w", key, err)}, fallback)
		}
		if out.Items == nil {
			out.Items = make([]T, 0)
		}
	}

	if metaRaw, ok := raw["meta"]; ok && string(metaRaw) != "null" {
		var meta types.PageMeta
		if err := json.Unmarshal(metaRaw, &meta); err != nil {
			return types.ListPage[T]{}, withFallback(&apperrors.TransportError{Op: op, Err: fmt.Errorf("decode meta: %w", err)}, fallback)
		}
		out.Meta = meta
	}

	c.logger.Debug("page fetched",
		zapOp(op),
		zapPage(out.Meta.CurrentPage, out.Meta.LastPage, len(out.Items)),
	)
	return out, nil
}

// fetchOne decodes the object found under key of a single-entity answer.
func fetchOne[T any](c *Client, ctx context.Context, rc call, key, fallback string) (T, error) {
	var zero T
	var raw map[string]json.RawMessage
	if err := c.do(ctx, rc, &raw); err != nil {
		return zero, withFallback(err, fallback)
	}
	var out T
	if entity, ok := raw[key]; ok && string(entity) != "null" {
		if err := json.Unmarshal(entity, &out); err != nil {
			return zero, withFallback(&apperrors.TransportError{Op: rc.op, Err: fmt.Errorf("decode %s: %w", key, err)}, fallback)
		}
	}
	return out, nil
}
