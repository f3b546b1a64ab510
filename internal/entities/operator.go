package entities

// Operator is a mobile-money provider transactions are routed through.
type Operator struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// OperatorRef is the embedded operator of payments and tokens.
type OperatorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
