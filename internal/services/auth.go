package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/internal/repositories"
	"payment-admin/internal/session"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/service"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// SignedIn is what a successful login hands to the HTTP layer.
type SignedIn struct {
	SessionID string
	Cookie    string
	User      entities.User
}

type AuthServiceInterface interface {
	Gate(ctx context.Context, sessionID string) (session.GateResult, error)
	Login(ctx context.Context, previousSessionID string, payload dto.LoginDTO) (*SignedIn, error)
	Logout(ctx context.Context, sessionID string) error
	Entry(ctx context.Context, sessionID string) string
}

type AuthService struct {
	api        integrations.PaymentAPI
	creds      repositories.CredentialRepositoryInterface
	jwtSvc     service.JWTService
	workspaces *WorkspaceRegistry
	logger     *zap.Logger
}

func NewAuthService(
	api integrations.PaymentAPI,
	creds repositories.CredentialRepositoryInterface,
	jwtSvc service.JWTService,
	workspaces *WorkspaceRegistry,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		api:        api,
		creds:      creds,
		jwtSvc:     jwtSvc,
		workspaces: workspaces,
		logger:     logger.Named("auth"),
	}
}

// Gate decides whether a protected view may render. Without a stored
// credential it redirects at once. Otherwise it asks the API for the current
// user exactly once; on any failure the credential is dropped and the
// browser is redirected.
func (s *AuthService) Gate(ctx context.Context, sessionID string) (session.GateResult, error) {
	redirect := session.GateResult{Redirect: true}
	if sessionID == "" {
		return redirect, nil
	}

	credential, err := s.creds.Get(ctx, sessionID)
	if errors.Is(err, apperrors.ErrCredentialNotFound) {
		return redirect, nil
	}
	if err != nil {
		return session.GateResult{}, err
	}

	user, err := s.api.CurrentUser(ctx, credential)
	if err != nil {
		s.logger.Info("session rejected by payment API", zap.String("session", sessionID), zap.Error(err))
		s.forget(ctx, sessionID)
		return redirect, nil
	}

	return session.GateResult{
		Session: session.Session{ID: sessionID, Credential: credential, User: user},
	}, nil
}

func (s *AuthService) Login(ctx context.Context, previousSessionID string, payload dto.LoginDTO) (*SignedIn, error) {
	res, err := s.api.Login(ctx, payload)
	if err != nil {
		s.logger.Info("login refused", zap.String("email", payload.Email), zap.Error(err))
		return nil, err
	}

	if previousSessionID != "" {
		s.forget(ctx, previousSessionID)
	}

	sessionID := uuid.NewString()
	if err := s.creds.Set(ctx, sessionID, res.Token, s.jwtSvc.TTL()); err != nil {
		return nil, err
	}

	cookie, err := s.jwtSvc.Issue(sessionID)
	if err != nil {
		s.forget(ctx, sessionID)
		return nil, err
	}

	s.logger.Info("signed in", zap.String("session", sessionID), zap.String("user", res.User.ID))
	return &SignedIn{SessionID: sessionID, Cookie: cookie, User: res.User}, nil
}

// Logout removes the stored credential. The remote API is not told.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	s.workspaces.Evict(sessionID)
	return s.creds.Delete(ctx, sessionID)
}

// Entry is where the home page sends the browser.
func (s *AuthService) Entry(ctx context.Context, sessionID string) string {
	if sessionID == "" {
		return LoginPath
	}
	if _, err := s.creds.Get(ctx, sessionID); err != nil {
		return LoginPath
	}
	return DashboardPath
}

func (s *AuthService) forget(ctx context.Context, sessionID string) {
	s.workspaces.Evict(sessionID)
	if err := s.creds.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("could not delete credential", zap.String("session", sessionID), zap.Error(err))
	}
}
