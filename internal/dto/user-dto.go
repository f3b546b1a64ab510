package dto

type CreateUserDTO struct {
	Name                 string `json:"name" validate:"required,notblank,max=255"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 string `json:"role" validate:"omitempty,user_role"`
}

// UpdateUserDTO has no email: it cannot change after creation.
type UpdateUserDTO struct {
	Name                 string `json:"name" validate:"required,notblank,max=255"`
	Role                 string `json:"role" validate:"required,user_role"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty" validate:"eqfield=Password"`
}
