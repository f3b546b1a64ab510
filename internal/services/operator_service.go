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

type OperatorScreen = paging.Snapshot[entities.Operator, paging.NoFilter]

type OperatorServiceInterface interface {
	Mount(ctx context.Context, sess session.Session) (OperatorScreen, error)
	GoTo(ctx context.Context, sess session.Session, page int) (OperatorScreen, error)
	Create(ctx context.Context, sess session.Session, payload dto.OperatorDTO) (OperatorScreen, error)
	Update(ctx context.Context, sess session.Session, id string, payload dto.OperatorDTO) (OperatorScreen, error)
	CloseEditor(sess session.Session) (OperatorScreen, error)
}

type OperatorService struct {
	api        integrations.PaymentAPI
	workspaces *WorkspaceRegistry
	logger     *zap.Logger
}

func NewOperatorService(api integrations.PaymentAPI, workspaces *WorkspaceRegistry, logger *zap.Logger) OperatorServiceInterface {
	return &OperatorService{api: api, workspaces: workspaces, logger: logger.Named("operators")}
}

func (s *OperatorService) resource(sess session.Session) (*paging.Resource[entities.Operator, paging.NoFilter], error) {
	ws, err := s.workspaces.Get(sess.ID)
	if err != nil {
		return nil, err
	}
	return ws.Operators, nil
}

// Mount shows the first page with the editor closed.
func (s *OperatorService) Mount(ctx context.Context, sess session.Session) (OperatorScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return OperatorScreen{}, err
	}
	res.CloseEditor()
	err = res.Load(ctx, sess, 1)
	return res.Snapshot(), err
}

func (s *OperatorService) GoTo(ctx context.Context, sess session.Session, page int) (OperatorScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return OperatorScreen{}, err
	}
	_, err = res.GoTo(ctx, sess, page)
	return res.Snapshot(), err
}

func (s *OperatorService) Create(ctx context.Context, sess session.Session, payload dto.OperatorDTO) (OperatorScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return OperatorScreen{}, err
	}
	res.OpenCreate()
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		_, err := s.api.CreateOperator(ctx, credential, payload)
		return err
	}, paging.Outcome{
		ReloadPage: 1,
		Success:    types.SuccessNotice("Opérateur créé", "L'opérateur a été créé avec succès."),
		Fallback:   apperrors.GenericMessage,
	})
	return res.Snapshot(), err
}

func (s *OperatorService) Update(ctx context.Context, sess session.Session, id string, payload dto.OperatorDTO) (OperatorScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return OperatorScreen{}, err
	}
	res.OpenEdit(id)
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		_, err := s.api.UpdateOperator(ctx, credential, id, payload)
		return err
	}, paging.Outcome{
		Success:  types.SuccessNotice("Modification enregistrée", "L'opérateur a été mis à jour."),
		Fallback: apperrors.GenericMessage,
	})
	return res.Snapshot(), err
}

func (s *OperatorService) CloseEditor(sess session.Session) (OperatorScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return OperatorScreen{}, err
	}
	res.CloseEditor()
	return res.Snapshot(), nil
}

// operatorChoices lists operators for select inputs. A failure yields an
// empty list.
func operatorChoices(ctx context.Context, api integrations.PaymentAPI, sess session.Session, perPage int, logger *zap.Logger) []entities.OperatorRef {
	choices := make([]entities.OperatorRef, 0)
	if !sess.Authenticated() {
		return choices
	}
	page, err := api.ListOperators(ctx, sess.Credential, 1, perPage)
	if err != nil {
		logger.Warn("operator choices unavailable", zap.Error(err))
		return choices
	}
	for _, op := range page.Items {
		choices = append(choices, entities.OperatorRef{ID: op.ID, Name: op.Name})
	}
	return choices
}
