package models

import "time"

// Customer is a checkout registration awaiting manual PIX confirmation.
type Customer struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	CPF          string    `db:"cpf" json:"cpf"`
	Telegram     string    `db:"telegram" json:"telegram"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

// CustomerFilter paginates the admin registration table.
type CustomerFilter struct {
	Search   string
	Page     int
	PageSize int
}

// PixInstructions tells the buyer how to pay.
type PixInstructions struct {
	PixKey      string `json:"pix_key"`
	Recipient   string `json:"recipient"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	ContactURL  string `json:"contact_url,omitempty"`
}

// CheckoutResult is returned after a successful registration.
type CheckoutResult struct {
	Customer *Customer       `json:"customer"`
	Payment  PixInstructions `json:"payment"`
}
