package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vos-erp-service/internal/domain/customer"
	xerrors "vos-erp-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns the trimmed projection the list views render.
func (r *CustomerRepository) List(ctx context.Context, f *customer.ListFilters) ([]customer.Summary, int64, error) {
	where := `WHERE is_deleted = FALSE`
	args := []interface{}{}

	if f.Search != "" {
		where += ` AND (customer_name ILIKE $1 OR store_name ILIKE $1 OR customer_code ILIKE $1)`
		args = append(args, "%"+f.Search+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM customer %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, customer_code, customer_name, store_name, contact_number
		FROM customer %s
		ORDER BY customer_name
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Summary
	for rows.Next() {
		var c customer.Summary
		if err := rows.Scan(&c.ID, &c.CustomerCode, &c.CustomerName, &c.StoreName, &c.ContactNumber); err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, total, rows.Err()
}

// FindByID retrieves a customer by id.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	query := `
		SELECT id, customer_code, customer_name, store_name, contact_number,
		       email, address, is_deleted, created_at, updated_at
		FROM customer
		WHERE id = $1 AND is_deleted = FALSE
	`

	var c customer.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CustomerCode, &c.CustomerName, &c.StoreName, &c.ContactNumber,
		&c.Email, &c.Address, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &c, nil
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customer (customer_code, customer_name, store_name, contact_number, email, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		c.CustomerCode, c.CustomerName, c.StoreName, c.ContactNumber, c.Email, c.Address,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update writes only the columns present in the request.
func (r *CustomerRepository) Update(ctx context.Context, id int64, req *customer.UpdateCustomerRequest) error {
	var cols []string
	var args []interface{}

	add := func(col string, val interface{}) {
		args = append(args, val)
		cols = append(cols, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.CustomerCode != nil {
		add("customer_code", *req.CustomerCode)
	}
	if req.CustomerName != nil {
		add("customer_name", *req.CustomerName)
	}
	if req.StoreName != nil {
		add("store_name", *req.StoreName)
	}
	if req.ContactNumber != nil {
		add("contact_number", *req.ContactNumber)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}

	if len(cols) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE customer SET %s, updated_at = NOW() WHERE id = $%d AND is_deleted = FALSE`,
		strings.Join(cols, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete marks a customer deleted.
func (r *CustomerRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE customer SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
