package dto

import "payment-admin/internal/entities"

type LoginDTO struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	CodeAgent string `json:"code_agent" validate:"required,notblank"`
}

type LoginResult struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

// MeDTO is what the browser learns about the signed-in account.
type MeDTO struct {
	User entities.User `json:"user"`
}
