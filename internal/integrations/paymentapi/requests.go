package paymentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	apperrors "payment-admin/pkg/errors"
)

const maxErrorBody = 1 << 20

type call struct {
	op     string
	method string
	path   string
	token  string
	query  url.Values
	body   interface{}
}

// do performs one request. A non-2xx answer becomes *apperrors.APIError, a
// transport failure *apperrors.TransportError. No retries.
func (c *Client) do(ctx context.Context, rc call, out interface{}) error {
	endpoint := c.baseURL + rc.path
	if len(rc.query) > 0 {
		endpoint += "?" + rc.query.Encode()
	}

	var payload io.Reader
	if rc.body != nil {
		raw, err := json.Marshal(rc.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", rc.op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build %s request: %w", rc.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil || rc.token != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.token != "" {
		req.Header.Set("Authorization", "Bearer "+rc.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("op", rc.op),
			zap.String("method", rc.method),
			zap.String("path", rc.path),
			zap.Error(err),
		)
		return &apperrors.TransportError{Op: rc.op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		zap.String("op", rc.op),
		zap.String("method", rc.method),
		zap.String("path", rc.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := decodeAPIError(resp.StatusCode, body)
		c.logger.Warn("api returned error",
			zap.String("op", rc.op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.TransportError{Op: rc.op, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &apperrors.TransportError{Op: rc.op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

type errorBody struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// decodeAPIError reads an error body. The message field wins; otherwise the
// first validation message in document order; otherwise the caller falls back.
func decodeAPIError(status int, body []byte) *apperrors.APIError {
	apiErr := &apperrors.APIError{Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}

	if len(eb.Errors) > 0 {
		fields := make(map[string][]string)
		if err := json.Unmarshal(eb.Errors, &fields); err == nil {
			apiErr.FieldErrors = fields
		}
	}

	if eb.Message != "" {
		apiErr.Message = eb.Message
		return apiErr
	}

	field, msg := firstFieldError(eb.Errors)
	apiErr.FirstField = field
	apiErr.Message = msg
	return apiErr
}

// firstFieldError walks the errors object in document order, since map
// iteration would not preserve it.
func firstFieldError(raw json.RawMessage) (string, string) {
	if len(raw) == 0 {
		return "", ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return "", ""
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", ""
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", ""
		}
		field, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return "", ""
		}

		var msgs []string
		if err := json.Unmarshal(value, &msgs); err == nil {
			for _, m := range msgs {
				if m != "" {
					return field, m
				}
			}
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil && single != "" {
			return field, single
		}
	}
	return "", ""
}

// withFallback gives a failure the operation's message when the API sent none.
func withFallback(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*apperrors.APIError); ok && apiErr.Message == "" {
		apiErr.Message = fallback
		return apiErr
	}
	if _, ok := err.(*apperrors.TransportError); ok {
		return &apperrors.HttpError{Code: http.StatusBadGateway, Message: fallback, Err: err}
	}
	return err
}
