package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the verified token payload. Student tokens come from the
// external identity provider; admin tokens are issued by AdminService.
type JWTClaims struct {
	Email string   `json:"email,omitempty"`
	Role  UserRole `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *JWTClaims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

// AdminLoginRequest carries the sales panel password.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse returns the issued admin token.
type AdminLoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Purchase records whether a user was granted access after paying.
type Purchase struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	HasAccess bool      `db:"has_access" json:"has_access"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
