package entities

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// Payment is a transaction reported by an operator callback. The dashboard
// never changes one.
type Payment struct {
	ID                  string          `json:"id"`
	OperatorID          string          `json:"operator_id"`
	Operator            *OperatorRef    `json:"operator,omitempty"`
	TransactionID       string          `json:"transaction_id"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	CustomerPhone       string          `json:"customer_phone"`
	ServiceCodification string          `json:"service_codification"`
	PaymentStatus       PaymentStatus   `json:"status_paiement"`
	Used                bool            `json:"status"`
	// PaymentDate is kept as sent so a malformed value never breaks a page.
	PaymentDate string `json:"payment_date"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// OperatorName returns the operator display name or "" when unresolved.
func (p Payment) OperatorName() string {
	if p.Operator == nil {
		return ""
	}
	return p.Operator.Name
}
