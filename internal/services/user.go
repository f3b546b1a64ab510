package services

import (
	"context"

	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/internal/paging"
	"payment-admin/internal/session"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

type UserScreen = paging.Snapshot[entities.User, paging.NoFilter]

type UserServiceInterface interface {
	Mount(ctx context.Context, sess session.Session) (UserScreen, error)
	GoTo(ctx context.Context, sess session.Session, page int) (UserScreen, error)
	Create(ctx context.Context, sess session.Session, payload dto.CreateUserDTO) (UserScreen, error)
	Update(ctx context.Context, sess session.Session, id string, payload dto.UpdateUserDTO) (UserScreen, error)
	Delete(ctx context.Context, sess session.Session, id string) (UserScreen, error)
	CloseEditor(sess session.Session) (UserScreen, error)
}

type UserService struct {
	api        integrations.PaymentAPI
	workspaces *WorkspaceRegistry
	logger     *zap.Logger
}

func NewUserService(api integrations.PaymentAPI, workspaces *WorkspaceRegistry, logger *zap.Logger) UserServiceInterface {
	return &UserService{api: api, workspaces: workspaces, logger: logger.Named("users")}
}

func (s *UserService) resource(sess session.Session) (*paging.Resource[entities.User, paging.NoFilter], error) {
	ws, err := s.workspaces.Get(sess.ID)
	if err != nil {
		return nil, err
	}
	return ws.Users, nil
}

func (s *UserService) Mount(ctx context.Context, sess session.Session) (UserScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return UserScreen{}, err
	}
	res.CloseEditor()
	err = res.Load(ctx, sess, 1)
	return res.Snapshot(), err
}

func (s *UserService) GoTo(ctx context.Context, sess session.Session, page int) (UserScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return UserScreen{}, err
	}
	_, err = res.GoTo(ctx, sess, page)
	return res.Snapshot(), err
}

func (s *UserService) Create(ctx context.Context, sess session.Session, payload dto.CreateUserDTO) (UserScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return UserScreen{}, err
	}
	res.OpenCreate()
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		_, err := s.api.CreateUser(ctx, credential, payload)
		return err
	}, paging.Outcome{
		ReloadPage: 1,
		Success:    types.SuccessNotice("Utilisateur créé", "L'utilisateur a été créé avec succès."),
		Fallback:   apperrors.GenericMessage,
	})
	return res.Snapshot(), err
}

// Update changes name and role, and the password when one is given. The
// email cannot change.
func (s *UserService) Update(ctx context.Context, sess session.Session, id string, payload dto.UpdateUserDTO) (UserScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return UserScreen{}, err
	}
	res.OpenEdit(id)
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		_, err := s.api.UpdateUser(ctx, credential, id, payload)
		return err
	}, paging.Outcome{
		Success:  types.SuccessNotice("Modification enregistrée", "L'utilisateur a été mis à jour."),
		Fallback: apperrors.GenericMessage,
	})
	return res.Snapshot(), err
}

func (s *UserService) Delete(ctx context.Context, sess session.Session, id string) (UserScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return UserScreen{}, err
	}
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		return s.api.DeleteUser(ctx, credential, id)
	}, paging.Outcome{
		ReloadPage: res.PageAfterDelete(),
		Success:    types.SuccessNotice("Utilisateur supprimé", "L'utilisateur a été supprimé."),
		Fallback:   apperrors.GenericMessage,
	})
	return res.Snapshot(), err
}

func (s *UserService) CloseEditor(sess session.Session) (UserScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return UserScreen{}, err
	}
	res.CloseEditor()
	return res.Snapshot(), nil
}
