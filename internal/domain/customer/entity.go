package customer

import (
	"database/sql"
	"time"
)

// Customer is a row in the customer table.
type Customer struct {
	ID            int64          `json:"id" db:"id"`
	CustomerCode  sql.NullString `json:"customer_code" db:"customer_code"`
	CustomerName  string         `json:"customer_name" db:"customer_name"`
	StoreName     sql.NullString `json:"store_name" db:"store_name"`
	ContactNumber sql.NullString `json:"contact_number" db:"contact_number"`
	Email         sql.NullString `json:"email" db:"email"`
	Address       sql.NullString `json:"address" db:"address"`
	IsDeleted     bool           `json:"-" db:"is_deleted"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// Summary is the trimmed projection used by list endpoints.
type Summary struct {
	ID            int64          `json:"id" db:"id"`
	CustomerCode  sql.NullString `json:"customer_code" db:"customer_code"`
	CustomerName  string         `json:"customer_name" db:"customer_name"`
	StoreName     sql.NullString `json:"store_name" db:"store_name"`
	ContactNumber sql.NullString `json:"contact_number" db:"contact_number"`
}
