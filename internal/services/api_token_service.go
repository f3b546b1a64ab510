package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/internal/paging"
	"payment-admin/internal/session"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

// expiresAtLayout matches what browsers produce for Date.toISOString.
const expiresAtLayout = "2006-01-02T15:04:05.000Z07:00"

type APITokenScreen = paging.Snapshot[entities.APIToken, paging.NoFilter]

// APITokenCreated is the screen after a create, plus the plaintext secret
// when the API issued one.
type APITokenCreated struct {
	Screen APITokenScreen       `json:"screen"`
	Secret *dto.CreatedAPIToken `json:"secret,omitempty"`
}

type APITokenServiceInterface interface {
	Mount(ctx context.Context, sess session.Session) (APITokenScreen, error)
	GoTo(ctx context.Context, sess session.Session, page int) (APITokenScreen, error)
	Create(ctx context.Context, sess session.Session, payload dto.CreateAPITokenDTO) (APITokenCreated, error)
	Activate(ctx context.Context, sess session.Session, id string) (APITokenScreen, error)
	Deactivate(ctx context.Context, sess session.Session, id string) (APITokenScreen, error)
	Delete(ctx context.Context, sess session.Session, id string) (APITokenScreen, error)
	CloseEditor(sess session.Session) (APITokenScreen, error)
	OperatorChoices(ctx context.Context, sess session.Session) []entities.OperatorRef
}

type APITokenService struct {
	api            integrations.PaymentAPI
	workspaces     *WorkspaceRegistry
	selectPageSize int
	logger         *zap.Logger
	now            func() time.Time
}

func NewAPITokenService(api integrations.PaymentAPI, workspaces *WorkspaceRegistry, selectPageSize int, logger *zap.Logger) APITokenServiceInterface {
	return &APITokenService{
		api:            api,
		workspaces:     workspaces,
		selectPageSize: selectPageSize,
		logger:         logger.Named("tokens"),
		now:            time.Now,
	}
}

func (s *APITokenService) resource(sess session.Session) (*paging.Resource[entities.APIToken, paging.NoFilter], error) {
	ws, err := s.workspaces.Get(sess.ID)
	if err != nil {
		return nil, err
	}
	return ws.Tokens, nil
}

func (s *APITokenService) Mount(ctx context.Context, sess session.Session) (APITokenScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return APITokenScreen{}, err
	}
	res.CloseEditor()
	err = res.Load(ctx, sess, 1)
	return res.Snapshot(), err
}

func (s *APITokenService) GoTo(ctx context.Context, sess session.Session, page int) (APITokenScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return APITokenScreen{}, err
	}
	_, err = res.GoTo(ctx, sess, page)
	return res.Snapshot(), err
}

// Create issues a token valid for the clamped number of days from now.
func (s *APITokenService) Create(ctx context.Context, sess session.Session, payload dto.CreateAPITokenDTO) (APITokenCreated, error) {
	res, err := s.resource(sess)
	if err != nil {
		return APITokenCreated{}, err
	}

	days := payload.ClampedDays()
	req := dto.APITokenRequest{
		OperatorID: payload.OperatorID,
		ExpiresAt:  s.now().Add(time.Duration(days) * 24 * time.Hour).UTC().Format(expiresAtLayout),
	}

	var created *dto.CreatedAPIToken
	res.OpenCreate()
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		out, err := s.api.CreateAPIToken(ctx, credential, req)
		if err != nil {
			return err
		}
		created = &out
		return nil
	}, paging.Outcome{
		ReloadPage: 1,
		Success:    types.SuccessNotice("Token créé", "Copiez le token et la signature ci-dessous. Ils ne seront plus affichés après fermeture."),
		Fallback:   apperrors.GenericMessage,
	})
	if created != nil {
		s.logger.Info("api token issued", zap.String("operator", req.OperatorID), zap.Int("days", days))
	}
	return APITokenCreated{Screen: res.Snapshot(), Secret: created}, err
}

// Activate turns one token on. The API deactivates the operator's other
// tokens; the reload shows that.
func (s *APITokenService) Activate(ctx context.Context, sess session.Session, id string) (APITokenScreen, error) {
	return s.lifecycle(ctx, sess, func(ctx context.Context, credential string) error {
		_, err := s.api.ActivateAPIToken(ctx, credential, id)
		return err
	}, paging.Outcome{
		Success:  types.SuccessNotice("Token activé", "Les autres tokens de cet opérateur ont été désactivés."),
		Fallback: "Erreur activation",
	})
}

func (s *APITokenService) Deactivate(ctx context.Context, sess session.Session, id string) (APITokenScreen, error) {
	return s.lifecycle(ctx, sess, func(ctx context.Context, credential string) error {
		_, err := s.api.DeactivateAPIToken(ctx, credential, id)
		return err
	}, paging.Outcome{
		Success:  types.SuccessNotice("Token désactivé", ""),
		Fallback: "Erreur désactivation",
	})
}

func (s *APITokenService) Delete(ctx context.Context, sess session.Session, id string) (APITokenScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return APITokenScreen{}, err
	}
	err = res.Mutate(ctx, sess, func(ctx context.Context, credential string) error {
		return s.api.DeleteAPIToken(ctx, credential, id)
	}, paging.Outcome{
		ReloadPage: res.PageAfterDelete(),
		Success:    types.SuccessNotice("Token supprimé", "Le token API a été supprimé."),
		Fallback:   "Erreur suppression",
	})
	return res.Snapshot(), err
}

func (s *APITokenService) CloseEditor(sess session.Session) (APITokenScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return APITokenScreen{}, err
	}
	res.CloseEditor()
	return res.Snapshot(), nil
}

func (s *APITokenService) OperatorChoices(ctx context.Context, sess session.Session) []entities.OperatorRef {
	return operatorChoices(ctx, s.api, sess, s.selectPageSize, s.logger)
}

func (s *APITokenService) lifecycle(ctx context.Context, sess session.Session, op paging.Mutation, out paging.Outcome) (APITokenScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return APITokenScreen{}, err
	}
	err = res.Mutate(ctx, sess, op, out)
	return res.Snapshot(), err
}
