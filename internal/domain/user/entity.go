package user

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"
)

// User is a row in the users table. PasswordHash holds a bcrypt hash;
// SessionToken holds the jti of the most recently issued session and is
// overwritten, never appended, on each successful login.
type User struct {
	ID           int64          `json:"user_id" db:"user_id"`
	Email        string         `json:"user_email" db:"user_email"`
	PasswordHash string         `json:"-" db:"user_password"`
	FirstName    string         `json:"user_fname" db:"user_fname"`
	MiddleName   sql.NullString `json:"user_mname" db:"user_mname"`
	LastName     string         `json:"user_lname" db:"user_lname"`
	Contact      sql.NullString `json:"user_contact" db:"user_contact"`
	Province     sql.NullString `json:"user_province" db:"user_province"`
	City         sql.NullString `json:"user_city" db:"user_city"`
	Barangay     sql.NullString `json:"user_brgy" db:"user_brgy"`
	Department   sql.NullString `json:"user_department" db:"user_department"`
	Position     sql.NullString `json:"user_position" db:"user_position"`
	DateOfHire   sql.NullTime   `json:"user_date_of_hire" db:"user_date_of_hire"`
	Birthday     sql.NullTime   `json:"user_bday" db:"user_bday"`
	SSS          sql.NullString `json:"user_sss" db:"user_sss"`
	PhilHealth   sql.NullString `json:"user_philhealth" db:"user_philhealth"`
	TIN          sql.NullString `json:"user_tin" db:"user_tin"`
	Tags         pq.StringArray `json:"user_tags" db:"user_tags"`
	IsAdmin      bool           `json:"is_admin" db:"is_admin"`
	RoleID       sql.NullInt64  `json:"role_id" db:"role_id"`
	RFID         sql.NullString `json:"rf_id" db:"rf_id"`
	IsDeleted    bool           `json:"-" db:"is_deleted"`
	Status       string         `json:"status" db:"status"` // active, inactive
	SessionToken sql.NullString `json:"-" db:"session_token"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

const StatusActive = "active"

// FullName joins the non-empty name parts, falling back to the email when the
// record has no name (RFID-only accounts).
func (u *User) FullName() string {
	parts := make([]string, 0, 2)
	if u.FirstName != "" {
		parts = append(parts, u.FirstName)
	}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	if len(parts) == 0 {
		return u.Email
	}
	return strings.Join(parts, " ")
}

// Eligible reports whether the account may establish a session.
func (u *User) Eligible() bool {
	return !u.IsDeleted && u.Status == StatusActive
}

// RoleIDPtr returns the nullable role id as a pointer for claim encoding.
func (u *User) RoleIDPtr() *int64 {
	if !u.RoleID.Valid {
		return nil
	}
	id := u.RoleID.Int64
	return &id
}
