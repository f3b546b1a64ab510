package dto

import "payment-admin/internal/entities"

const (
	DefaultTokenDays = 30
	MinTokenDays     = 1
	MaxTokenDays     = 365
)

// CreateAPITokenDTO is the browser form; the duration is clamped, not rejected.
type CreateAPITokenDTO struct {
	OperatorID   string `json:"operator_id" validate:"required,notblank"`
	DurationDays int    `json:"duration_days"`
}

// ClampedDays returns the duration limited to 1..365, 30 when unset.
func (d CreateAPITokenDTO) ClampedDays() int {
	switch {
	case d.DurationDays == 0:
		return DefaultTokenDays
	case d.DurationDays < MinTokenDays:
		return MinTokenDays
	case d.DurationDays > MaxTokenDays:
		return MaxTokenDays
	}
	return d.DurationDays
}

// APITokenRequest is the body sent to the payment API.
type APITokenRequest struct {
	OperatorID string `json:"operator_id"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}

// CreatedAPIToken carries the plaintext secret, shown only once.
type CreatedAPIToken struct {
	APIToken  entities.APIToken `json:"api_token"`
	Token     string            `json:"token"`
	Signature string            `json:"signature"`
}
