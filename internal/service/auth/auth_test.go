package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"vos-erp-service/internal/domain/user"
	xerrors "vos-erp-service/internal/pkg/errors"
	"vos-erp-service/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users        map[int64]*user.User
	tokenReads   int
	tokenUpdates int
}

func newFakeUserStore(users ...*user.User) *fakeUserStore {
	m := make(map[int64]*user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserStore{users: m}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeUserStore) FindByRFID(_ context.Context, rf string) (*user.User, error) {
	for _, u := range f.users {
		if u.RFID.Valid && u.RFID.String == rf {
			return u, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeUserStore) SessionToken(_ context.Context, userID int64) (sql.NullString, error) {
	f.tokenReads++
	u, ok := f.users[userID]
	if !ok {
		return sql.NullString{}, xerrors.ErrNotFound
	}
	return u.SessionToken, nil
}

func (f *fakeUserStore) UpdateSessionToken(_ context.Context, userID int64, jti string) error {
	f.tokenUpdates++
	u, ok := f.users[userID]
	if !ok {
		return xerrors.ErrNotFound
	}
	u.SessionToken = sql.NullString{String: jti, Valid: true}
	return nil
}

func (f *fakeUserStore) ClearSessionToken(_ context.Context, userID int64) error {
	if u, ok := f.users[userID]; ok {
		u.SessionToken = sql.NullString{}
	}
	return nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T) *user.User {
	return &user.User{
		ID:           7,
		Email:        "a@x.com",
		PasswordHash: hashPassword(t, "secret"),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		RFID:         sql.NullString{String: "RF-007", Valid: true},
		Status:       user.StatusActive,
	}
}

func newTestService(t *testing.T, store UserStore) *Service {
	t.Helper()
	tokens, err := token.NewManager(token.Config{
		Secret:     "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)
	// nil cache and limiter: caching and throttling disabled
	return NewService(store, tokens, nil, nil, zap.NewNop())
}

func TestLoginEstablishesSession(t *testing.T) {
	store := newFakeUserStore(activeUser(t))
	svc := newTestService(t, store)

	res, err := svc.Login(context.Background(), &user.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "7", res.User.Sub)
	assert.Equal(t, "a@x.com", res.User.Email)
	assert.Equal(t, "Ada Lovelace", res.User.Name)
	assert.False(t, res.User.IsAdmin)
	assert.NotEmpty(t, res.User.JTI)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	// Stored pointer matches the minted jti
	stored := store.users[7].SessionToken
	require.True(t, stored.Valid)
	assert.Equal(t, res.User.JTI, stored.String)

	// Access token decodes back to the same identity and session
	claims, err := svc.VerifyAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID())
	assert.Equal(t, res.User.JTI, claims.SessionID())
	assert.Equal(t, token.AuthKindPassword, claims.AuthKind)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t, newFakeUserStore(activeUser(t)))

	_, err := svc.Login(context.Background(), &user.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t, newFakeUserStore())

	_, err := svc.Login(context.Background(), &user.LoginRequest{Email: "nobody@x.com", Password: "secret"})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestLoginRejectsDisabledAccounts(t *testing.T) {
	deleted := activeUser(t)
	deleted.IsDeleted = true

	inactive := activeUser(t)
	inactive.ID = 8
	inactive.Email = "b@x.com"
	inactive.Status = "inactive"

	svc := newTestService(t, newFakeUserStore(deleted, inactive))

	// Correct password must not rescue a disabled account.
	_, err := svc.Login(context.Background(), &user.LoginRequest{Email: "a@x.com", Password: "secret"})
	assert.ErrorIs(t, err, xerrors.ErrForbidden)

	_, err = svc.Login(context.Background(), &user.LoginRequest{Email: "b@x.com", Password: "secret"})
	assert.ErrorIs(t, err, xerrors.ErrForbidden)
}

func TestSecondLoginInvalidatesFirstSession(t *testing.T) {
	store := newFakeUserStore(activeUser(t))
	svc := newTestService(t, store)
	ctx := context.Background()

	first, err := svc.Login(ctx, &user.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, svc.CheckSession(ctx, "7", first.User.JTI))

	second, err := svc.Login(ctx, &user.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEqual(t, first.User.JTI, second.User.JTI)

	// The first login's token is unexpired but its session id no longer
	// matches the stored pointer.
	err = svc.CheckSession(ctx, "7", first.User.JTI)
	assert.ErrorIs(t, err, xerrors.ErrSessionMismatch)

	assert.NoError(t, svc.CheckSession(ctx, "7", second.User.JTI))
}

func TestLoginRFID(t *testing.T) {
	store := newFakeUserStore(activeUser(t))
	svc := newTestService(t, store)

	res, err := svc.LoginRFID(context.Background(), &user.RFIDLoginRequest{RF: "RF-007"})
	require.NoError(t, err)
	assert.Equal(t, "7", res.User.Sub)
	assert.Equal(t, token.AuthKindRFID, res.User.AuthKind)

	stored := store.users[7].SessionToken
	require.True(t, stored.Valid)
	assert.Equal(t, res.User.JTI, stored.String)
}

func TestLoginRFIDUnknownTag(t *testing.T) {
	svc := newTestService(t, newFakeUserStore(activeUser(t)))

	_, err := svc.LoginRFID(context.Background(), &user.RFIDLoginRequest{RF: "RF-404"})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestLoginRFIDDisabledAccount(t *testing.T) {
	u := activeUser(t)
	u.Status = "inactive"
	svc := newTestService(t, newFakeUserStore(u))

	_, err := svc.LoginRFID(context.Background(), &user.RFIDLoginRequest{RF: "RF-007"})
	assert.ErrorIs(t, err, xerrors.ErrForbidden)
}

func TestLogoutRotatesSessionPointer(t *testing.T) {
	store := newFakeUserStore(activeUser(t))
	svc := newTestService(t, store)
	ctx := context.Background()

	res, err := svc.Login(ctx, &user.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, svc.CheckSession(ctx, "7", res.User.JTI))

	require.NoError(t, svc.Logout(ctx, "7"))

	// The old token value is dead server-side, not merely absent from the
	// client's cookie jar.
	err = svc.CheckSession(ctx, "7", res.User.JTI)
	assert.ErrorIs(t, err, xerrors.ErrSessionMismatch)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc := newTestService(t, newFakeUserStore())

	assert.NoError(t, svc.Logout(context.Background(), ""))
	assert.NoError(t, svc.Logout(context.Background(), "not-a-number"))
	assert.NoError(t, svc.Logout(context.Background(), "999"))
}

func TestCheckSessionUnknownUser(t *testing.T) {
	svc := newTestService(t, newFakeUserStore())

	err := svc.CheckSession(context.Background(), "42", "some-jti")
	assert.ErrorIs(t, err, xerrors.ErrSessionMismatch)
}
