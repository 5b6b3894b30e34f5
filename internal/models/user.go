package models

// UserRole represents the roles carried by verified tokens.
type UserRole string

const (
	// RoleAdmin is issued by the sales panel login.
	RoleAdmin UserRole = "ADMIN"
	// RoleStudent is the default role for identity provider users.
	RoleStudent UserRole = "authenticated"
)

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
