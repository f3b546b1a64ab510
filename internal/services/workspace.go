package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/internal/paging"
	apperrors "payment-admin/pkg/errors"
	"payment-admin/pkg/types"
)

// Workspace holds the list screens of one signed-in session.
type Workspace struct {
	Operators    *paging.Resource[entities.Operator, paging.NoFilter]
	Users        *paging.Resource[entities.User, paging.NoFilter]
	Tokens       *paging.Resource[entities.APIToken, paging.NoFilter]
	Transactions *paging.Resource[entities.Payment, dto.TransactionFilter]

	lastSeen time.Time
}

func newWorkspace(api integrations.PaymentAPI, perPage int, logger *zap.Logger) *Workspace {
	return &Workspace{
		Operators:    paging.New("operators", perPage, "Erreur chargement opérateurs", unfiltered[entities.Operator](api.ListOperators), logger),
		Users:        paging.New("users", perPage, "Erreur chargement utilisateurs", unfiltered[entities.User](api.ListUsers), logger),
		Tokens:       paging.New("tokens", perPage, "Erreur chargement tokens", unfiltered[entities.APIToken](api.ListAPITokens), logger),
		Transactions: paging.New("transactions", perPage, "Erreur chargement des transactions", paging.Lister[entities.Payment, dto.TransactionFilter](api.ListTransactions), logger),
	}
}

func unfiltered[T any](list func(ctx context.Context, token string, page, perPage int) (types.ListPage[T], error)) paging.Lister[T, paging.NoFilter] {
	return func(ctx context.Context, token string, page, perPage int, _ paging.NoFilter) (types.ListPage[T], error) {
		return list(ctx, token, page, perPage)
	}
}

// WorkspaceRegistry maps session ids to workspaces. Workspaces idle for
// longer than the session TTL are dropped the next time the registry is used.
type WorkspaceRegistry struct {
	api     integrations.PaymentAPI
	perPage int
	idle    time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu    sync.Mutex
	items map[string]*Workspace
}

func NewWorkspaceRegistry(api integrations.PaymentAPI, perPage int, idle time.Duration, logger *zap.Logger) *WorkspaceRegistry {
	return &WorkspaceRegistry{
		api:     api,
		perPage: perPage,
		idle:    idle,
		logger:  logger.Named("workspaces"),
		now:     time.Now,
		items:   make(map[string]*Workspace),
	}
}

// Get returns the session's workspace, creating it on first use.
func (r *WorkspaceRegistry) Get(sessionID string) (*Workspace, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperrors.ErrWorkspaceNotAvailable
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	ws, ok := r.items[sessionID]
	if !ok {
		ws = newWorkspace(r.api, r.perPage, r.logger)
		r.items[sessionID] = ws
		r.logger.Debug("workspace created", zap.String("session", sessionID))
	}
	ws.lastSeen = now
	return ws, nil
}

// Evict forgets the session's workspace.
func (r *WorkspaceRegistry) Evict(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, sessionID)
}

// Len is the number of live workspaces.
func (r *WorkspaceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *WorkspaceRegistry) sweep(now time.Time) {
	if r.idle <= 0 {
		return
	}
	for id, ws := range r.items {
		if now.Sub(ws.lastSeen) > r.idle {
			delete(r.items, id)
			r.logger.Debug("idle workspace evicted", zap.String("session", id))
		}
	}
}
