package dto

type OperatorDTO struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}
