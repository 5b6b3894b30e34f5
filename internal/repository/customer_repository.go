package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vidro-absolut/study-api/internal/models"
)

// CustomerRepository persists checkout registrations.
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository constructs the repository.
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create stores a registration.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	if customer.RegisteredAt.IsZero() {
		customer.RegisteredAt = time.Now().UTC()
	}
	const query = `INSERT INTO customers (id, first_name, last_name, cpf, telegram, registered_at)
VALUES (:id, :first_name, :last_name, :cpf, :telegram, :registered_at)`
	if _, err := r.db.NamedExecContext(ctx, query, customer); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// List returns registrations, newest first, with the total matching count.
func (r *CustomerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, int, error) {
	base := "FROM customers WHERE 1=1"
	var args []interface{}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		base += fmt.Sprintf(" AND (LOWER(first_name || ' ' || last_name) LIKE $%d OR cpf LIKE $%d OR LOWER(telegram) LIKE $%d)", len(args), len(args), len(args))
	}

	page, size := normalisePage(filter.Page, filter.PageSize)
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, first_name, last_name, cpf, telegram, registered_at %s ORDER BY registered_at DESC LIMIT %d OFFSET %d", base, size, offset)
	customers := []models.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, args...); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}
	return customers, total, nil
}

// ListAll returns every registration in registration order, for exports.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.SelectContext(ctx, &customers, `SELECT id, first_name, last_name, cpf, telegram, registered_at FROM customers ORDER BY registered_at ASC`); err != nil {
		return nil, fmt.Errorf("list all customers: %w", err)
	}
	return customers, nil
}

// Count returns the number of registrations.
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// DeleteAll clears every registration and reports how many were removed.
func (r *CustomerRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers`)
	if err != nil {
		return 0, fmt.Errorf("delete customers: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete customers: %w", err)
	}
	return affected, nil
}

func normalisePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}
