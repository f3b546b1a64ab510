// Package mock is a PaymentAPI fake for tests. Unset functions answer with
// empty values; every call is counted by method name.
package mock

import (
	"context"
	"sync"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/pkg/types"
)

type MockProvider struct {
	LoginFn       func(ctx context.Context, in dto.LoginDTO) (dto.LoginResult, error)
	CurrentUserFn func(ctx context.Context, token string) (entities.User, error)

	ListOperatorsFn  func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error)
	CreateOperatorFn func(ctx context.Context, token string, in dto.OperatorDTO) (entities.Operator, error)
	UpdateOperatorFn func(ctx context.Context, token, id string, in dto.OperatorDTO) (entities.Operator, error)

	ListUsersFn  func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.User], error)
	CreateUserFn func(ctx context.Context, token string, in dto.CreateUserDTO) (entities.User, error)
	UpdateUserFn func(ctx context.Context, token, id string, in dto.UpdateUserDTO) (entities.User, error)
	DeleteUserFn func(ctx context.Context, token, id string) error

	ListAPITokensFn      func(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.APIToken], error)
	CreateAPITokenFn     func(ctx context.Context, token string, in dto.APITokenRequest) (dto.CreatedAPIToken, error)
	ActivateAPITokenFn   func(ctx context.Context, token, id string) (entities.APIToken, error)
	DeactivateAPITokenFn func(ctx context.Context, token, id string) (entities.APIToken, error)
	DeleteAPITokenFn     func(ctx context.Context, token, id string) error

	ListTransactionsFn func(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error)

	mu    sync.Mutex
	calls map[string]int
}

var _ integrations.PaymentAPI = (*MockProvider)(nil)

func NewMockProvider() *MockProvider {
	return &MockProvider{calls: make(map[string]int)}
}

// Calls returns how many times method was invoked.
func (m *MockProvider) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockProvider) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func emptyPage[T any](perPage int) types.ListPage[T] {
	return types.ListPage[T]{Items: make([]T, 0), Meta: types.DefaultPageMeta(perPage)}
}

func (m *MockProvider) Login(ctx context.Context, in dto.LoginDTO) (dto.LoginResult, error) {
	m.record("Login")
	if m.LoginFn == nil {
		return dto.LoginResult{}, nil
	}
	return m.LoginFn(ctx, in)
}

func (m *MockProvider) CurrentUser(ctx context.Context, token string) (entities.User, error) {
	m.record("CurrentUser")
	if m.CurrentUserFn == nil {
		return entities.User{}, nil
	}
	return m.CurrentUserFn(ctx, token)
}

func (m *MockProvider) ListOperators(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error) {
	m.record("ListOperators")
	if m.ListOperatorsFn == nil {
		return emptyPage[entities.Operator](perPage), nil
	}
	return m.ListOperatorsFn(ctx, token, page, perPage)
}

func (m *MockProvider) CreateOperator(ctx context.Context, token string, in dto.OperatorDTO) (entities.Operator, error) {
	m.record("CreateOperator")
	if m.CreateOperatorFn == nil {
		return entities.Operator{Name: in.Name}, nil
	}
	return m.CreateOperatorFn(ctx, token, in)
}

func (m *MockProvider) UpdateOperator(ctx context.Context, token, id string, in dto.OperatorDTO) (entities.Operator, error) {
	m.record("UpdateOperator")
	if m.UpdateOperatorFn == nil {
		return entities.Operator{ID: id, Name: in.Name}, nil
	}
	return m.UpdateOperatorFn(ctx, token, id, in)
}

func (m *MockProvider) ListUsers(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.User], error) {
	m.record("ListUsers")
	if m.ListUsersFn == nil {
		return emptyPage[entities.User](perPage), nil
	}
	return m.ListUsersFn(ctx, token, page, perPage)
}

func (m *MockProvider) CreateUser(ctx context.Context, token string, in dto.CreateUserDTO) (entities.User, error) {
	m.record("CreateUser")
	if m.CreateUserFn == nil {
		return entities.User{Name: in.Name, Email: in.Email, Role: in.Role}, nil
	}
	return m.CreateUserFn(ctx, token, in)
}

func (m *MockProvider) UpdateUser(ctx context.Context, token, id string, in dto.UpdateUserDTO) (entities.User, error) {
	m.record("UpdateUser")
	if m.UpdateUserFn == nil {
		return entities.User{ID: id, Name: in.Name, Role: in.Role}, nil
	}
	return m.UpdateUserFn(ctx, token, id, in)
}

func (m *MockProvider) DeleteUser(ctx context.Context, token, id string) error {
	m.record("DeleteUser")
	if m.DeleteUserFn == nil {
		return nil
	}
	return m.DeleteUserFn(ctx, token, id)
}

func (m *MockProvider) ListAPITokens(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.APIToken], error) {
	m.record("ListAPITokens")
	if m.ListAPITokensFn == nil {
		return emptyPage[entities.APIToken](perPage), nil
	}
	return m.ListAPITokensFn(ctx, token, page, perPage)
}

func (m *MockProvider) CreateAPIToken(ctx context.Context, token string, in dto.APITokenRequest) (dto.CreatedAPIToken, error) {
	m.record("CreateAPIToken")
	if m.CreateAPITokenFn == nil {
		return dto.CreatedAPIToken{APIToken: entities.APIToken{OperatorID: in.OperatorID, ExpiresAt: in.ExpiresAt}}, nil
	}
	return m.CreateAPITokenFn(ctx, token, in)
}

func (m *MockProvider) ActivateAPIToken(ctx context.Context, token, id string) (entities.APIToken, error) {
	m.record("ActivateAPIToken")
	if m.ActivateAPITokenFn == nil {
		return entities.APIToken{ID: id, IsActive: true}, nil
	}
	return m.ActivateAPITokenFn(ctx, token, id)
}

func (m *MockProvider) DeactivateAPIToken(ctx context.Context, token, id string) (entities.APIToken, error) {
	m.record("DeactivateAPIToken")
	if m.DeactivateAPITokenFn == nil {
		return entities.APIToken{ID: id}, nil
	}
	return m.DeactivateAPITokenFn(ctx, token, id)
}

func (m *MockProvider) DeleteAPIToken(ctx context.Context, token, id string) error {
	m.record("DeleteAPIToken")
	if m.DeleteAPITokenFn == nil {
		return nil
	}
	return m.DeleteAPITokenFn(ctx, token, id)
}

func (m *MockProvider) ListTransactions(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error) {
	m.record("ListTransactions")
	if m.ListTransactionsFn == nil {
		return emptyPage[entities.Payment](perPage), nil
	}
	return m.ListTransactionsFn(ctx, token, page, perPage, filter)
}
