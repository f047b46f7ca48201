package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vos-erp-service/internal/domain/supplier"
	xerrors "vos-erp-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SupplierRepository struct {
	db *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{db: db}
}

const supplierColumns = `id, supplier_name, contact_person, contact_number, email, address, is_deleted, created_at, updated_at`

func scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := row.Scan(
		&s.ID, &s.SupplierName, &s.ContactPerson, &s.ContactNumber,
		&s.Email, &s.Address, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan supplier: %w", err)
	}
	return &s, nil
}

// List returns suppliers matching the filters plus the total.
func (r *SupplierRepository) List(ctx context.Context, f *supplier.ListFilters) ([]supplier.Supplier, int64, error) {
	where := `WHERE is_deleted = FALSE`
	args := []interface{}{}

	if f.Search != "" {
		where += ` AND supplier_name ILIKE $1`
		args = append(args, "%"+f.Search+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM suppliers %s`, where), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM suppliers %s ORDER BY supplier_name LIMIT $%d OFFSET $%d`,
		supplierColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []supplier.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, *s)
	}
	return suppliers, total, rows.Err()
}

// FindByID retrieves a supplier by id.
func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*supplier.Supplier, error) {
	query := fmt.Sprintf(`SELECT %s FROM suppliers WHERE id = $1 AND is_deleted = FALSE`, supplierColumns)
	return scanSupplier(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new supplier.
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_name, contact_person, contact_number, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		s.SupplierName, s.ContactPerson, s.ContactNumber, s.Email, s.Address,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update writes only the columns present in the request.
func (r *SupplierRepository) Update(ctx context.Context, id int64, req *supplier.UpdateSupplierRequest) error {
	var cols []string
	var args []interface{}

	add := func(col string, val interface{}) {
		args = append(args, val)
		cols = append(cols, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.SupplierName != nil {
		add("supplier_name", *req.SupplierName)
	}
	if req.ContactPerson != nil {
		add("contact_person", *req.ContactPerson)
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
	query := fmt.Sprintf(`UPDATE suppliers SET %s, updated_at = NOW() WHERE id = $%d AND is_deleted = FALSE`,
		strings.Join(cols, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete marks a supplier deleted.
func (r *SupplierRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE suppliers SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
