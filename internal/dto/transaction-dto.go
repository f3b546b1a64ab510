package dto

import (
	"net/url"
	"strings"

	"github.com/aarondl/null/v8"
)

// TransactionFilter is the filter set of the transactions screen.
type TransactionFilter struct {
	Search        string    `json:"search,omitempty"`
	PaymentStatus string    `json:"status_paiement,omitempty" validate:"omitempty,payment_status"`
	OperatorID    string    `json:"operator_id,omitempty"`
	Used          null.Bool `json:"status"`
	DateFrom      string    `json:"date_from,omitempty" validate:"omitempty,isodate"`
	DateTo        string    `json:"date_to,omitempty" validate:"omitempty,isodate"`
}

// Active reports whether any filter is set.
func (f TransactionFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		f.PaymentStatus != "" ||
		f.OperatorID != "" ||
		f.Used.Valid ||
		f.DateFrom != "" ||
		f.DateTo != ""
}

// Apply writes the active filters into the list query.
func (f TransactionFilter) Apply(params url.Values) {
	if search := strings.TrimSpace(f.Search); search != "" {
		params.Set("search", search)
	}
	if f.PaymentStatus != "" {
		params.Set("status_paiement", f.PaymentStatus)
	}
	if f.OperatorID != "" {
		params.Set("operator_id", f.OperatorID)
	}
	if f.Used.Valid {
		if f.Used.Bool {
			params.Set("status", "1")
		} else {
			params.Set("status", "0")
		}
	}
	if f.DateFrom != "" {
		params.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("date_to", f.DateTo)
	}
}
