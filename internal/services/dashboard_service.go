package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/internal/session"
	"payment-admin/internal/stats"
)

type KPIs struct {
	Users        int `json:"users"`
	Operators    int `json:"operators"`
	APITokens    int `json:"api_tokens"`
	Transactions int `json:"transactions"`
}

type Charts struct {
	ByStatus   []stats.StatusCount   `json:"by_status"`
	ByOperator []stats.OperatorCount `json:"by_operator"`
	ByDay      []stats.DayCount      `json:"by_day"`
	// Undated counts sample payments left out of ByDay.
	Undated int `json:"undated"`
}

type DashboardDTO struct {
	User   entities.User `json:"user"`
	KPIs   KPIs          `json:"kpis"`
	Charts Charts        `json:"charts"`
}

type DashboardServiceInterface interface {
	Overview(ctx context.Context, sess session.Session) *DashboardDTO
}

type DashboardService struct {
	api        integrations.PaymentAPI
	sampleSize int
	logger     *zap.Logger
}

func NewDashboardService(api integrations.PaymentAPI, sampleSize int, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{api: api, sampleSize: sampleSize, logger: logger.Named("dashboard")}
}

// Overview fetches the four totals and a sample of recent payments at the
// same time. If any request fails the totals are zero and the charts empty.
func (s *DashboardService) Overview(ctx context.Context, sess session.Session) *DashboardDTO {
	out := &DashboardDTO{User: sess.User}

	var kpis KPIs
	var sample []entities.Payment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.api.ListUsers(gctx, sess.Credential, 1, 1)
		kpis.Users = page.Meta.Total
		return err
	})
	g.Go(func() error {
		page, err := s.api.ListOperators(gctx, sess.Credential, 1, 1)
		kpis.Operators = page.Meta.Total
		return err
	})
	g.Go(func() error {
		page, err := s.api.ListAPITokens(gctx, sess.Credential, 1, 1)
		kpis.APITokens = page.Meta.Total
		return err
	})
	g.Go(func() error {
		page, err := s.api.ListTransactions(gctx, sess.Credential, 1, s.sampleSize, dto.TransactionFilter{})
		kpis.Transactions = page.Meta.Total
		sample = page.Items
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("dashboard figures unavailable", zap.Error(err))
		sample = nil
	} else {
		out.KPIs = kpis
	}

	out.Charts = Charts{
		ByStatus:   stats.ByStatus(sample),
		ByOperator: stats.ByOperator(sample),
		ByDay:      stats.ByDay(sample),
		Undated:    stats.Undated(sample),
	}
	return out
}
