package entities

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleAgent = "ROLE_AGENT"
)

// User is an administrative account of the payment platform.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CodeAgent string `json:"code_agent"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
