package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vos-erp-service/internal/domain/user"
	xerrors "vos-erp-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	user_id, user_email, user_password, user_fname, user_mname, user_lname,
	user_contact, user_province, user_city, user_brgy,
	user_department, user_position, user_date_of_hire, user_bday,
	user_sss, user_philhealth, user_tin, user_tags,
	is_admin, role_id, rf_id, is_deleted, status, session_token,
	created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.MiddleName, &u.LastName,
		&u.Contact, &u.Province, &u.City, &u.Barangay,
		&u.Department, &u.Position, &u.DateOfHire, &u.Birthday,
		&u.SSS, &u.PhilHealth, &u.TIN, &u.Tags,
		&u.IsAdmin, &u.RoleID, &u.RFID, &u.IsDeleted, &u.Status, &u.SessionToken,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// FindByEmail retrieves a user by email, case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(user_email) = LOWER($1)`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// FindByRFID retrieves a user by RFID tag.
func (r *UserRepository) FindByRFID(ctx context.Context, rf string) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE rf_id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, rf))
}

// FindByID retrieves a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// SessionToken reads only the stored session pointer for a user. This is the
// gate's phase-2 read and runs once per gated request, so it stays a
// single-column query.
func (r *UserRepository) SessionToken(ctx context.Context, userID int64) (sql.NullString, error) {
	var tok sql.NullString
	err := r.db.QueryRow(ctx, `SELECT session_token FROM users WHERE user_id = $1`, userID).Scan(&tok)
	if errors.Is(err, pgx.ErrNoRows) {
		return tok, xerrors.ErrNotFound
	}
	if err != nil {
		return tok, fmt.Errorf("failed to read session token: %w", err)
	}
	return tok, nil
}

// UpdateSessionToken overwrites the stored session pointer. Concurrent logins
// race on this single UPDATE; the row's update atomicity makes the last
// committed write win.
func (r *UserRepository) UpdateSessionToken(ctx context.Context, userID int64, jti string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET session_token = $1, updated_at = NOW() WHERE user_id = $2`, jti, userID)
	if err != nil {
		return fmt.Errorf("failed to update session token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// ClearSessionToken nulls the stored session pointer on logout, so a replayed
// cookie value no longer matches anything.
func (r *UserRepository) ClearSessionToken(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET session_token = NULL, updated_at = NOW() WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// List returns users matching the filters plus the unfiltered-by-page total.
func (r *UserRepository) List(ctx context.Context, f *user.ListFilters) ([]user.User, int64, error) {
	where := `WHERE is_deleted = FALSE`
	args := []interface{}{}

	if f.Search != "" {
		where += ` AND (user_email ILIKE $1 OR user_fname ILIKE $1 OR user_lname ILIKE $1)`
		args = append(args, "%"+f.Search+"%")
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY user_lname, user_fname LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

// Create inserts a new user. The caller supplies an already-hashed password.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			user_email, user_password, user_fname, user_mname, user_lname,
			user_contact, user_province, user_city, user_brgy,
			user_department, user_position, user_sss, user_philhealth, user_tin,
			user_tags, is_admin, role_id, rf_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING user_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.FirstName, u.MiddleName, u.LastName,
		u.Contact, u.Province, u.City, u.Barangay,
		u.Department, u.Position, u.SSS, u.PhilHealth, u.TIN,
		u.Tags, u.IsAdmin, u.RoleID, u.RFID, u.Status,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update writes only the columns present in the request. session_token is not
// part of the writable set: administrative updates must never touch the
// session pointer or they would silently revoke live sessions.
func (r *UserRepository) Update(ctx context.Context, id int64, req *user.UpdateUserRequest, passwordHash string) error {
	assignments, args := updateAssignments(req, passwordHash)
	if len(assignments) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = NOW() WHERE user_id = $%d`,
		strings.Join(assignments, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// updateAssignments builds the SET clause for Update from the fields present
// in the request. The writable column set is closed: adding a column means
// adding it here explicitly.
func updateAssignments(req *user.UpdateUserRequest, passwordHash string) ([]string, []interface{}) {
	var cols []string
	var args []interface{}

	add := func(col string, val interface{}) {
		args = append(args, val)
		cols = append(cols, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Email != nil {
		add("user_email", *req.Email)
	}
	if passwordHash != "" {
		add("user_password", passwordHash)
	}
	if req.FirstName != nil {
		add("user_fname", *req.FirstName)
	}
	if req.MiddleName != nil {
		add("user_mname", *req.MiddleName)
	}
	if req.LastName != nil {
		add("user_lname", *req.LastName)
	}
	if req.Contact != nil {
		add("user_contact", *req.Contact)
	}
	if req.Province != nil {
		add("user_province", *req.Province)
	}
	if req.City != nil {
		add("user_city", *req.City)
	}
	if req.Barangay != nil {
		add("user_brgy", *req.Barangay)
	}
	if req.Department != nil {
		add("user_department", *req.Department)
	}
	if req.Position != nil {
		add("user_position", *req.Position)
	}
	if req.SSS != nil {
		add("user_sss", *req.SSS)
	}
	if req.PhilHealth != nil {
		add("user_philhealth", *req.PhilHealth)
	}
	if req.TIN != nil {
		add("user_tin", *req.TIN)
	}
	if req.Tags != nil {
		add("user_tags", req.Tags)
	}
	if req.IsAdmin != nil {
		add("is_admin", *req.IsAdmin)
	}
	if req.RoleID != nil {
		add("role_id", *req.RoleID)
	}
	if req.RFID != nil {
		add("rf_id", *req.RFID)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}

	return cols, args
}

// SoftDelete marks a user deleted without removing the row.
func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_deleted = TRUE, updated_at = NOW() WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// ExistsByEmail reports whether an email is already registered.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(user_email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}
