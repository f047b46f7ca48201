package supplier

import (
	"database/sql"
	"time"
)

// Supplier is a row in the suppliers table.
type Supplier struct {
	ID            int64          `json:"id" db:"id"`
	SupplierName  string         `json:"supplier_name" db:"supplier_name"`
	ContactPerson sql.NullString `json:"contact_person" db:"contact_person"`
	ContactNumber sql.NullString `json:"contact_number" db:"contact_number"`
	Email         sql.NullString `json:"email" db:"email"`
	Address       sql.NullString `json:"address" db:"address"`
	IsDeleted     bool           `json:"-" db:"is_deleted"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}
