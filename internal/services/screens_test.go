package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations/mock"
	"payment-admin/internal/paging"
	"payment-admin/internal/session"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

var testSession = session.Session{ID: "sid", Credential: "abc", User: entities.User{ID: "u1"}}

func metaFor(page, last, total int) types.PageMeta {
	return types.PageMeta{CurrentPage: page, LastPage: last, PerPage: 10, Total: total}
}

func TestOperatorService_CreateReloadsFirstPage(t *testing.T) {
	api := mock.NewMockProvider()
	var pages []int
	api.ListOperatorsFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error) {
		pages = append(pages, page)
		return types.ListPage[entities.Operator]{Items: []entities.Operator{{ID: "o1", Name: "Wave"}}, Meta: metaFor(page, 3, 25)}, nil
	}
	svc := NewOperatorService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), zap.NewNop())

	_, err := svc.Mount(context.Background(), testSession)
	require.NoError(t, err)
	_, err = svc.GoTo(context.Background(), testSession, 3)
	require.NoError(t, err)

	screen, err := svc.Create(context.Background(), testSession, dto.OperatorDTO{Name: "Orange"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 1}, pages)
	assert.Equal(t, 1, api.Calls("CreateOperator"))
	require.NotNil(t, screen.Notice)
	assert.Equal(t, "Opérateur créé", screen.Notice.Title)
	assert.False(t, screen.Editor.Open())
}

func TestOperatorService_UpdateReloadsCurrentPage(t *testing.T) {
	api := mock.NewMockProvider()
	var pages []int
	api.ListOperatorsFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error) {
		pages = append(pages, page)
		return types.ListPage[entities.Operator]{Items: []entities.Operator{{ID: "o1"}}, Meta: metaFor(page, 3, 25)}, nil
	}
	svc := NewOperatorService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), zap.NewNop())

	_, err := svc.GoTo(context.Background(), testSession, 2)
	require.NoError(t, err)
	screen, err := svc.Update(context.Background(), testSession, "o1", dto.OperatorDTO{Name: "Wave"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, pages)
	assert.Equal(t, "Modification enregistrée", screen.Notice.Title)
}

func TestUserService_CreateFailureKeepsEditor(t *testing.T) {
	api := mock.NewMockProvider()
	api.CreateUserFn = func(ctx context.Context, token string, in dto.CreateUserDTO) (entities.User, error) {
		return entities.User{}, &apperrors.APIError{
			Status:      http.StatusUnprocessableEntity,
			Message:     "The email has already been taken.",
			FieldErrors: map[string][]string{"email": {"The email has already been taken."}},
		}
	}
	svc := NewUserService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), zap.NewNop())

	_, err := svc.Mount(context.Background(), testSession)
	require.NoError(t, err)

	screen, err := svc.Create(context.Background(), testSession, dto.CreateUserDTO{Name: "Awa", Email: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperrors.StatusCode(err))
	assert.Equal(t, paging.EditorCreate, screen.Editor.Mode)
	assert.Equal(t, "The email has already been taken.", screen.Error)
	require.NotNil(t, screen.Notice)
	assert.Equal(t, types.NoticeError, screen.Notice.Level)
	assert.Equal(t, 1, api.Calls("ListUsers"), "no reload after a failed create")
}

func TestUserService_DeleteLastRowStepsBack(t *testing.T) {
	api := mock.NewMockProvider()
	var pages []int
	api.ListUsersFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.User], error) {
		pages = append(pages, page)
		return types.ListPage[entities.User]{Items: []entities.User{{ID: "u9"}}, Meta: metaFor(page, 3, 21)}, nil
	}
	svc := NewUserService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), zap.NewNop())

	_, err := svc.GoTo(context.Background(), testSession, 3)
	require.NoError(t, err)
	screen, err := svc.Delete(context.Background(), testSession, "u9")
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2}, pages)
	assert.Equal(t, "Utilisateur supprimé", screen.Notice.Title)
}

func TestAPITokenService_CreateClampsDuration(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		days     int
		expected string
	}{
		{days: 0, expected: "2025-07-01T12:00:00.000Z"},
		{days: 999, expected: "2026-06-01T12:00:00.000Z"},
		{days: -5, expected: "2025-06-02T12:00:00.000Z"},
		{days: 7, expected: "2025-06-08T12:00:00.000Z"},
	}

	for _, tt := range tests {
		api := mock.NewMockProvider()
		var sent dto.APITokenRequest
		api.CreateAPITokenFn = func(ctx context.Context, token string, in dto.APITokenRequest) (dto.CreatedAPIToken, error) {
			sent = in
			return dto.CreatedAPIToken{Token: "plain", Signature: "sig"}, nil
		}
		svc := NewAPITokenService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, zap.NewNop()).(*APITokenService)
		svc.now = func() time.Time { return now }

		created, err := svc.Create(context.Background(), testSession, dto.CreateAPITokenDTO{OperatorID: "op1", DurationDays: tt.days})
		require.NoError(t, err)
		assert.Equal(t, "op1", sent.OperatorID)
		assert.Equal(t, tt.expected, sent.ExpiresAt, "days=%d", tt.days)
		require.NotNil(t, created.Secret)
		assert.Equal(t, "plain", created.Secret.Token)
		assert.Equal(t, "Token créé", created.Screen.Notice.Title)
	}
}

func TestAPITokenService_OperatorChoicesFailureIsEmpty(t *testing.T) {
	api := mock.NewMockProvider()
	api.ListOperatorsFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error) {
		assert.Equal(t, 1, page)
		assert.Equal(t, 100, perPage)
		return types.ListPage[entities.Operator]{}, errors.New("boom")
	}
	svc := NewAPITokenService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, zap.NewNop())

	choices := svc.OperatorChoices(context.Background(), testSession)
	assert.NotNil(t, choices)
	assert.Empty(t, choices)
}

func TestAPITokenService_Activate(t *testing.T) {
	api := mock.NewMockProvider()
	svc := NewAPITokenService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, zap.NewNop())

	screen, err := svc.Activate(context.Background(), testSession, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, api.Calls("ActivateAPIToken"))
	assert.Equal(t, 1, api.Calls("ListAPITokens"))
	assert.Equal(t, "Les autres tokens de cet opérateur ont été désactivés.", screen.Notice.Text)
}

func TestTransactionService_FilterResetsPage(t *testing.T) {
	api := mock.NewMockProvider()
	var got []dto.TransactionFilter
	var pages []int
	api.ListTransactionsFn = func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
		got = append(got, filter)
		pages = append(pages, page)
		return types.ListPage[entities.Payment]{Items: []entities.Payment{{ID: "p"}}, Meta: metaFor(page, 4, 40)}, nil
	}
	svc := NewTransactionService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, 100, 50, zap.NewNop())

	_, err := svc.GoTo(context.Background(), testSession, 4)
	require.NoError(t, err)
	screen, err := svc.SetFilter(context.Background(), testSession, dto.TransactionFilter{PaymentStatus: "failed"})
	require.NoError(t, err)
	assert.Equal(t, 1, screen.Page)
	assert.Equal(t, "failed", screen.Filter.PaymentStatus)

	screen, err = svc.ClearFilter(context.Background(), testSession)
	require.NoError(t, err)
	assert.False(t, screen.Filter.Active())
	assert.Equal(t, []int{4, 1, 1}, pages)
	assert.Equal(t, "failed", got[1].PaymentStatus)
}

func TestTransactionService_MountStartsUnfiltered(t *testing.T) {
	api := mock.NewMockProvider()
	var got []dto.TransactionFilter
	api.ListTransactionsFn = func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
		got = append(got, filter)
		return types.ListPage[entities.Payment]{Items: []entities.Payment{{ID: "p"}}, Meta: metaFor(page, 3, 30)}, nil
	}
	svc := NewTransactionService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, 100, 50, zap.NewNop())

	_, err := svc.SetFilter(context.Background(), testSession, dto.TransactionFilter{PaymentStatus: "failed", Search: "77"})
	require.NoError(t, err)

	screen, err := svc.Mount(context.Background(), testSession)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.True(t, got[0].Active())
	assert.False(t, got[1].Active())
	assert.False(t, screen.Filter.Active())
	assert.Equal(t, 1, screen.Page)
}

func TestTransactionService_ExportFailure(t *testing.T) {
	api := mock.NewMockProvider()
	api.ListTransactionsFn = func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
		if page == 2 {
			return types.ListPage[entities.Payment]{}, &apperrors.TransportError{Err: errors.New("connection reset")}
		}
		return types.ListPage[entities.Payment]{Items: []entities.Payment{{ID: "p"}}, Meta: metaFor(page, 3, 3)}, nil
	}
	svc := NewTransactionService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, 100, 50, zap.NewNop())

	f, err := svc.Export(context.Background(), testSession)
	assert.Nil(t, f)
	assert.Equal(t, http.StatusBadGateway, apperrors.StatusCode(err))
	assert.Equal(t, 2, api.Calls("ListTransactions"))
}

func TestTransactionService_ExportWalksPages(t *testing.T) {
	api := mock.NewMockProvider()
	var pages []int
	api.ListTransactionsFn = func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
		pages = append(pages, page)
		return types.ListPage[entities.Payment]{
			Items: []entities.Payment{{ID: "p", TransactionID: "TX", PaymentStatus: entities.PaymentSuccess, PaymentDate: "2025-01-01"}},
			Meta:  metaFor(page, 2, 2),
		}, nil
	}
	svc := NewTransactionService(api, NewWorkspaceRegistry(api, 10, time.Hour, zap.NewNop()), 100, 100, 50, zap.NewNop())

	f, err := svc.Export(context.Background(), testSession)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []int{1, 2}, pages)

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "TX", rows[1][1])
	assert.Equal(t, "Inconnu", rows[1][2])
	assert.Equal(t, "Réussi", rows[1][7])
}

func TestDashboardService(t *testing.T) {
	t.Run("totals and charts", func(t *testing.T) {
		api := mock.NewMockProvider()
		api.ListUsersFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.User], error) {
			assert.Equal(t, 1, perPage)
			return types.ListPage[entities.User]{Meta: metaFor(1, 4, 4)}, nil
		}
		api.ListOperatorsFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error) {
			return types.ListPage[entities.Operator]{Meta: metaFor(1, 3, 3)}, nil
		}
		api.ListAPITokensFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.APIToken], error) {
			return types.ListPage[entities.APIToken]{Meta: metaFor(1, 2, 2)}, nil
		}
		api.ListTransactionsFn = func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
			assert.Equal(t, 50, perPage)
			assert.False(t, filter.Active())
			return types.ListPage[entities.Payment]{
				Items: []entities.Payment{
					{PaymentStatus: entities.PaymentSuccess, PaymentDate: "2025-01-02"},
					{PaymentStatus: entities.PaymentFailed, PaymentDate: "nope"},
				},
				Meta: metaFor(1, 10, 500),
			}, nil
		}

		out := NewDashboardService(api, 50, zap.NewNop()).Overview(context.Background(), testSession)
		assert.Equal(t, KPIs{Users: 4, Operators: 3, APITokens: 2, Transactions: 500}, out.KPIs)
		assert.Len(t, out.Charts.ByStatus, 2)
		assert.Len(t, out.Charts.ByDay, 1)
		assert.Equal(t, 1, out.Charts.Undated)
		assert.Equal(t, "u1", out.User.ID)
	})

	t.Run("any failure zeroes everything", func(t *testing.T) {
		api := mock.NewMockProvider()
		api.ListAPITokensFn = func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.APIToken], error) {
			return types.ListPage[entities.APIToken]{}, &apperrors.APIError{Status: 500}
		}
		api.ListTransactionsFn = func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
			return types.ListPage[entities.Payment]{
				Items: []entities.Payment{{PaymentStatus: entities.PaymentSuccess}},
				Meta:  metaFor(1, 1, 1),
			}, nil
		}

		out := NewDashboardService(api, 50, zap.NewNop()).Overview(context.Background(), testSession)
		assert.Equal(t, KPIs{}, out.KPIs)
		assert.Empty(t, out.Charts.ByStatus)
		assert.Empty(t, out.Charts.ByOperator)
		assert.Empty(t, out.Charts.ByDay)
	})
}
