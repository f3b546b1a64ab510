package paymentapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	apperrors "payment-admin/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, srv.Client(), zap.NewNop())
}

func TestListOperators_SendsBearerAndPaging(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/operators", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		_, _ = w.Write([]byte(`{
			"operators": [{"id": "op-1", "name": "Orange"}],
			"meta": {"current_page": 2, "last_page": 3, "per_page": 10, "total": 21}
		}`))
	})

	page, err := client.ListOperators(context.Background(), "abc", 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Orange", page.Items[0].Name)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Equal(t, 3, page.Meta.LastPage)
	assert.Equal(t, 21, page.Meta.Total)
}

func TestListUsers_MissingMetaAndItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	page, err := client.ListUsers(context.Background(), "abc", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 1, page.Meta.CurrentPage)
	assert.Equal(t, 1, page.Meta.LastPage)
	assert.Equal(t, 10, page.Meta.PerPage)
	assert.Equal(t, 0, page.Meta.Total)
}

func TestListTransactions_FilterQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("per_page"))
		assert.Equal(t, "TX-1", q.Get("search"))
		assert.Equal(t, "success", q.Get("status_paiement"))
		assert.Equal(t, "0", q.Get("status"))
		assert.Equal(t, "2025-01-01", q.Get("date_from"))
		assert.False(t, q.Has("operator_id"))
		assert.False(t, q.Has("date_to"))

		_, _ = w.Write([]byte(`{"payments": [{"id": "p1", "amount": "1500.50", "status_paiement": "success", "status": false}]}`))
	})

	page, err := client.ListTransactions(context.Background(), "abc", 1, 10, dto.TransactionFilter{
		Search:        "  TX-1 ",
		PaymentStatus: "success",
		Used:          null.BoolFrom(false),
		DateFrom:      "2025-01-01",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "1500.5", page.Items[0].Amount.String())
	assert.Equal(t, entities.PaymentSuccess, page.Items[0].PaymentStatus)
}

func TestAPIError_MessagePriority(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "message field wins",
			status:  http.StatusUnprocessableEntity,
			body:    `{"message": "Invalid data", "errors": {"email": ["taken"]}}`,
			message: "Invalid data",
		},
		{
			name:    "first validation error in document order",
			status:  http.StatusUnprocessableEntity,
			body:    `{"errors": {"email": ["The email has already been taken."], "name": ["The name field is required."]}}`,
			message: "The email has already been taken.",
		},
		{
			name:    "fallback when nothing usable",
			status:  http.StatusInternalServerError,
			body:    `<html>oops</html>`,
			message: "Erreur création utilisateur",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CreateUser(context.Background(), "abc", dto.CreateUserDTO{Name: "A"})
			require.Error(t, err)

			var apiErr *apperrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.message, apperrors.UserMessage(err, "x"))
		})
	}
}

func TestCreateUser_DefaultRole(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, entities.RoleAgent, body["role"])
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user": {"id": "u1", "name": "Awa", "role": "ROLE_AGENT"}}`))
	})

	user, err := client.CreateUser(context.Background(), "abc", dto.CreateUserDTO{Name: "Awa", Email: "a@b.c", Password: "x", PasswordConfirmation: "x"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestCurrentUser_NestedOrBare(t *testing.T) {
	for name, body := range map[string]string{
		"nested": `{"user": {"id": "u1", "name": "Awa", "role": "ROLE_ADMIN"}}`,
		"bare":   `{"id": "u1", "name": "Awa", "role": "ROLE_ADMIN"}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/user", r.URL.Path)
				_, _ = w.Write([]byte(body))
			})
			user, err := client.CurrentUser(context.Background(), "abc")
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.True(t, user.IsAdmin())
		})
	}
}

func TestLogin_NoBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"user": {"id": "u1"}, "token": "secret"}`))
	})

	res, err := client.Login(context.Background(), dto.LoginDTO{Email: "a@b.c", Password: "p", CodeAgent: "AG1"})
	require.NoError(t, err)
	assert.Equal(t, "secret", res.Token)
}

func TestLogin_RefusedUsesFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Login(context.Background(), dto.LoginDTO{Email: "a@b.c", Password: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, "Connexion échouée", apperrors.UserMessage(err, ""))
}

func TestTransportFailure(t *testing.T) {
	client := New("http://127.0.0.1:1", 200*time.Millisecond, zap.NewNop())

	_, err := client.ListOperators(context.Background(), "abc", 1, 10)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperrors.StatusCode(err))
	assert.Equal(t, "Erreur chargement opérateurs", apperrors.UserMessage(err, ""))
}

func TestDeleteAPIToken_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/api-tokens/t-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteAPIToken(context.Background(), "abc", "t-1"))
}
