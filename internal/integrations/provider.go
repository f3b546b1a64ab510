package integrations

import (
	"context"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/pkg/types"
)

// PaymentAPI is the remote payment platform the dashboard administers. Every
// method but Login takes the bearer credential of the calling session.
type PaymentAPI interface {
	Login(ctx context.Context, in dto.LoginDTO) (dto.LoginResult, error)
	CurrentUser(ctx context.Context, token string) (entities.User, error)

	ListOperators(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.Operator], error)
	CreateOperator(ctx context.Context, token string, in dto.OperatorDTO) (entities.Operator, error)
	UpdateOperator(ctx context.Context, token, id string, in dto.OperatorDTO) (entities.Operator, error)

	ListUsers(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.User], error)
	CreateUser(ctx context.Context, token string, in dto.CreateUserDTO) (entities.User, error)
	UpdateUser(ctx context.Context, token, id string, in dto.UpdateUserDTO) (entities.User, error)
	DeleteUser(ctx context.Context, token, id string) error

	ListAPITokens(ctx context.Context, token string, page, perPage int) (types.ListPage[entities.APIToken], error)
	CreateAPIToken(ctx context.Context, token string, in dto.APITokenRequest) (dto.CreatedAPIToken, error)
	ActivateAPIToken(ctx context.Context, token, id string) (entities.APIToken, error)
	DeactivateAPIToken(ctx context.Context, token, id string) (entities.APIToken, error)
	DeleteAPIToken(ctx context.Context, token, id string) error

	ListTransactions(ctx context.Context, token string, page, perPage int, filter dto.TransactionFilter) (types.ListPage[entities.Payment], error)
}
