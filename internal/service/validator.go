package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/vidro-absolut/study-api/pkg/cpf"
)

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpf.Validate(fl.Field().String())
	})
	return v
}
