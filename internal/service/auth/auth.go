package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"vos-erp-service/internal/domain/user"
	xerrors "vos-erp-service/internal/pkg/errors"
	"vos-erp-service/internal/pkg/session"
	"vos-erp-service/internal/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the credential store the auth flow needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByRFID(ctx context.Context, rf string) (*user.User, error)
	SessionToken(ctx context.Context, userID int64) (sql.NullString, error)
	UpdateSessionToken(ctx context.Context, userID int64, jti string) error
	ClearSessionToken(ctx context.Context, userID int64) error
}

type Service struct {
	users       UserStore
	tokens      *token.Manager
	cache       *session.Cache
	rateLimiter *session.RateLimiter
	logger      *zap.Logger
}

func NewService(users UserStore, tokens *token.Manager, cache *session.Cache, rateLimiter *session.RateLimiter, logger *zap.Logger) *Service {
	return &Service{
		users:       users,
		tokens:      tokens,
		cache:       cache,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Login authenticates by email and password and establishes a new session.
func (s *Service) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResult, error) {
	allowed, remaining, err := s.rateLimiter.CheckLoginAttempt(ctx, req.IPAddress, req.Email)
	if err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account not found", xerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !u.Eligible() {
		return nil, fmt.Errorf("%w: account is deleted or inactive", xerrors.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("password mismatch",
			zap.String("email", req.Email),
			zap.Int64("attempts_remaining", remaining),
		)
		return nil, xerrors.ErrUnauthorized
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, req.IPAddress, req.Email); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	return s.establishSession(ctx, u, token.AuthKindPassword)
}

// LoginRFID authenticates by RFID tag; presenting a known tag is the whole
// credential, so there is no secondary comparison step.
func (s *Service) LoginRFID(ctx context.Context, req *user.RFIDLoginRequest) (*user.LoginResult, error) {
	allowed, _, err := s.rateLimiter.CheckLoginAttempt(ctx, req.IPAddress, req.RF)
	if err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	u, err := s.users.FindByRFID(ctx, req.RF)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: RFID not found", xerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !u.Eligible() {
		return nil, fmt.Errorf("%w: account is deleted or inactive", xerrors.ErrForbidden)
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, req.IPAddress, req.RF); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	return s.establishSession(ctx, u, token.AuthKindRFID)
}

// establishSession mints a fresh session id, persists it as the user's only
// live session, and signs the access and refresh tokens. The session-token
// UPDATE is the single write of the login flow: concurrent logins race on it
// and the last committed write wins, invalidating the loser's cookie.
func (s *Service) establishSession(ctx context.Context, u *user.User, authKind string) (*user.LoginResult, error) {
	jti := uuid.NewString()
	sub := strconv.FormatInt(u.ID, 10)

	if err := s.users.UpdateSessionToken(ctx, u.ID, jti); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}
	s.cache.Invalidate(ctx, sub)

	claims := &token.Claims{
		Email:    u.Email,
		Name:     u.FullName(),
		IsAdmin:  u.IsAdmin,
		RoleID:   u.RoleIDPtr(),
		AuthKind: authKind,
	}
	claims.Subject = sub
	claims.ID = jti

	access, err := s.tokens.Signer.Sign(claims, s.tokens.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.tokens.Signer.Sign(claims, s.tokens.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	s.logger.Info("session established",
		zap.Int64("user_id", u.ID),
		zap.String("auth_kind", authKind),
	)

	return &user.LoginResult{
		User: user.SessionUser{
			Sub:      sub,
			Email:    u.Email,
			Name:     u.FullName(),
			IsAdmin:  u.IsAdmin,
			RoleID:   u.RoleIDPtr(),
			AuthKind: authKind,
			JTI:      jti,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Logout rotates the stored session pointer to NULL so a replayed cookie
// value is dead immediately, not just absent from the client's jar. An
// unknown or empty subject is not an error: logout is idempotent.
func (s *Service) Logout(ctx context.Context, sub string) error {
	if sub == "" {
		return nil
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil
	}

	if err := s.users.ClearSessionToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	s.cache.Invalidate(ctx, sub)

	s.logger.Info("session cleared", zap.Int64("user_id", userID))
	return nil
}

// CheckSession is the gate's phase-2 check: it compares a verified token's
// jti against the stored session pointer for that user. A short positive
// cache may skip the store read; invalidations can therefore be masked for
// at most the cache TTL.
func (s *Service) CheckSession(ctx context.Context, sub, jti string) error {
	if s.cache.Confirmed(ctx, sub, jti) {
		return nil
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad subject %q", xerrors.ErrSessionMismatch, sub)
	}

	stored, err := s.users.SessionToken(ctx, userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return fmt.Errorf("%w: user %d not found", xerrors.ErrSessionMismatch, userID)
		}
		return fmt.Errorf("failed to look up session token: %w", err)
	}

	if !stored.Valid || stored.String != jti {
		return xerrors.ErrSessionMismatch
	}

	s.cache.MarkConfirmed(ctx, sub, jti)
	return nil
}

// VerifyAccessToken runs the local phase-1 check and returns the claims.
func (s *Service) VerifyAccessToken(raw string) (*token.Claims, error) {
	return s.tokens.Verifier.Verify(raw)
}
