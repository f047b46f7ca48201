package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vos-erp-service/internal/domain/user"
	xerrors "vos-erp-service/internal/pkg/errors"
	"vos-erp-service/internal/repository/postgres"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo *postgres.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *postgres.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context, f *user.ListFilters) ([]user.User, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	return s.userRepo.List(ctx, f)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*user.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// CreateUser stores a new account. The password is bcrypt-hashed here; the
// plaintext never leaves this function.
func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: user_email is required", xerrors.ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", xerrors.ErrInvalidInput)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s is already registered", xerrors.ErrInvalidInput, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		MiddleName:   sql.NullString{String: req.MiddleName, Valid: req.MiddleName != ""},
		LastName:     req.LastName,
		Contact:      sql.NullString{String: req.Contact, Valid: req.Contact != ""},
		Province:     sql.NullString{String: req.Province, Valid: req.Province != ""},
		City:         sql.NullString{String: req.City, Valid: req.City != ""},
		Barangay:     sql.NullString{String: req.Barangay, Valid: req.Barangay != ""},
		Department:   sql.NullString{String: req.Department, Valid: req.Department != ""},
		Position:     sql.NullString{String: req.Position, Valid: req.Position != ""},
		SSS:          sql.NullString{String: req.SSS, Valid: req.SSS != ""},
		PhilHealth:   sql.NullString{String: req.PhilHealth, Valid: req.PhilHealth != ""},
		TIN:          sql.NullString{String: req.TIN, Valid: req.TIN != ""},
		Tags:         pq.StringArray(req.Tags),
		IsAdmin:      req.IsAdmin,
		RFID:         sql.NullString{String: req.RFID, Valid: req.RFID != ""},
		Status:       user.StatusActive,
	}
	if req.RoleID != nil {
		u.RoleID = sql.NullInt64{Int64: *req.RoleID, Valid: true}
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created",
		zap.Int64("user_id", u.ID),
		zap.String("user_email", u.Email),
	)
	return u, nil
}

// UpdateUser applies a partial update. A password change is hashed here and
// handed to the repository separately from the request so the plaintext never
// reaches the SQL builder. The stored session pointer is outside this flow
// entirely: only login and logout write it.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *user.UpdateUserRequest) (*user.User, error) {
	var passwordHash string
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", xerrors.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = string(hash)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, fmt.Errorf("%w: user_email cannot be blank", xerrors.ErrInvalidInput)
		}
		*req.Email = email
	}

	if err := s.userRepo.Update(ctx, id, req, passwordHash); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Int64("user_id", id))
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}
