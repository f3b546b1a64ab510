package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"payment-admin/internal/dto"
	"payment-admin/internal/entities"
	"payment-admin/internal/integrations"
	"payment-admin/internal/paging"
	"payment-admin/internal/session"
	"payment-admin/internal/stats"
)

const exportSheet = "Transactions"

var exportHeaders = []string{
	"Date", "ID transaction", "Opérateur", "Téléphone", "Service", "Montant", "Devise", "Statut paiement", "Utilisé",
}

type TransactionScreen = paging.Snapshot[entities.Payment, dto.TransactionFilter]

type TransactionServiceInterface interface {
	Mount(ctx context.Context, sess session.Session) (TransactionScreen, error)
	GoTo(ctx context.Context, sess session.Session, page int) (TransactionScreen, error)
	SetFilter(ctx context.Context, sess session.Session, filter dto.TransactionFilter) (TransactionScreen, error)
	ClearFilter(ctx context.Context, sess session.Session) (TransactionScreen, error)
	OperatorChoices(ctx context.Context, sess session.Session) []entities.OperatorRef
	Export(ctx context.Context, sess session.Session) (*excelize.File, error)
}

type TransactionService struct {
	api            integrations.PaymentAPI
	workspaces     *WorkspaceRegistry
	selectPageSize int
	exportPageSize int
	exportMaxPages int
	logger         *zap.Logger
}

func NewTransactionService(
	api integrations.PaymentAPI,
	workspaces *WorkspaceRegistry,
	selectPageSize, exportPageSize, exportMaxPages int,
	logger *zap.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		api:            api,
		workspaces:     workspaces,
		selectPageSize: selectPageSize,
		exportPageSize: exportPageSize,
		exportMaxPages: exportMaxPages,
		logger:         logger.Named("transactions"),
	}
}

func (s *TransactionService) resource(sess session.Session) (*paging.Resource[entities.Payment, dto.TransactionFilter], error) {
	ws, err := s.workspaces.Get(sess.ID)
	if err != nil {
		return nil, err
	}
	return ws.Transactions, nil
}

// Mount opens the screen afresh: no filter, first page.
func (s *TransactionService) Mount(ctx context.Context, sess session.Session) (TransactionScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return TransactionScreen{}, err
	}
	err = res.ClearFilter(ctx, sess)
	return res.Snapshot(), err
}

func (s *TransactionService) GoTo(ctx context.Context, sess session.Session, page int) (TransactionScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return TransactionScreen{}, err
	}
	_, err = res.GoTo(ctx, sess, page)
	return res.Snapshot(), err
}

func (s *TransactionService) SetFilter(ctx context.Context, sess session.Session, filter dto.TransactionFilter) (TransactionScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return TransactionScreen{}, err
	}
	err = res.SetFilter(ctx, sess, filter)
	return res.Snapshot(), err
}

func (s *TransactionService) ClearFilter(ctx context.Context, sess session.Session) (TransactionScreen, error) {
	res, err := s.resource(sess)
	if err != nil {
		return TransactionScreen{}, err
	}
	err = res.ClearFilter(ctx, sess)
	return res.Snapshot(), err
}

func (s *TransactionService) OperatorChoices(ctx context.Context, sess session.Session) []entities.OperatorRef {
	return operatorChoices(ctx, s.api, sess, s.selectPageSize, s.logger)
}

// Export builds a workbook of every payment matching the screen's current
// filter, up to exportMaxPages pages.
func (s *TransactionService) Export(ctx context.Context, sess session.Session) (_ *excelize.File, err error) {
	res, err := s.resource(sess)
	if err != nil {
		return nil, err
	}
	filter := res.Filter()

	f := excelize.NewFile()
	defer func() {
		if err != nil {
			if cerr := f.Close(); cerr != nil {
				s.logger.Warn("could not close failed export", zap.Error(cerr))
			}
		}
	}()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return nil, err
	}
	if err := sw.SetColWidth(1, len(exportHeaders), 20); err != nil {
		return nil, err
	}

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = excelize.Cell{StyleID: style, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	row := 2
	for page := 1; page <= s.exportMaxPages; page++ {
		list, err := s.api.ListTransactions(ctx, sess.Credential, page, s.exportPageSize, filter)
		if err != nil {
			return nil, err
		}
		for _, p := range list.Items {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := sw.SetRow(cell, exportRow(p)); err != nil {
				return nil, err
			}
			row++
		}
		if page >= list.Meta.LastPage {
			break
		}
		if page == s.exportMaxPages {
			s.logger.Warn("export truncated", zap.Int("pages", page), zap.Int("last_page", list.Meta.LastPage))
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush export sheet: %w", err)
	}
	s.logger.Info("transactions exported", zap.Int("rows", row-2), zap.Bool("filtered", filter.Active()))
	return f, nil
}

func exportRow(p entities.Payment) []interface{} {
	operator := p.OperatorName()
	if operator == "" {
		operator = stats.UnknownOperator
	}
	used := "Non"
	if p.Used {
		used = "Oui"
	}
	return []interface{}{
		p.PaymentDate, p.TransactionID, operator, p.CustomerPhone, p.ServiceCodification,
		p.Amount.InexactFloat64(), p.Currency, stats.StatusLabel(p.PaymentStatus), used,
	}
}
