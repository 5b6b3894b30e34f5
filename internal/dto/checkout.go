package dto

// CheckoutRequest is the public registration form.
type CheckoutRequest struct {
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=120"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	Telegram  string `json:"telegram" validate:"required,max=64"`
}

// CPFValidationResponse is returned by the CPF check endpoint.
type CPFValidationResponse struct {
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted"`
}
