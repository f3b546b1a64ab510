package entities

import "time"

// APIToken is a credential issued to an operator integration. The API keeps at
// most one active token per operator.
type APIToken struct {
	ID         string       `json:"id"`
	OperatorID string       `json:"operator_id"`
	Operator   *OperatorRef `json:"operator,omitempty"`
	ExpiresAt  string       `json:"expires_at"`
	IsActive   bool         `json:"is_active"`
	CreatedAt  string       `json:"created_at,omitempty"`
}

// Expired reports whether the token expiry lies before now. Unparseable
// expiries are not considered expired.
func (t APIToken) Expired(now time.Time) bool {
	exp, err := time.Parse(time.RFC3339, t.ExpiresAt)
	if err != nil {
		return false
	}
	return exp.Before(now)
}
