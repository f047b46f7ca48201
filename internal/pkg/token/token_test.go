package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Secret:     "test-secret-not-for-production",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)
	return m
}

func TestSignVerifyRoundTrip(t *testing.T) {
	m := newTestManager(t)

	roleID := int64(3)
	claims := &Claims{
		Email:    "a@x.com",
		Name:     "Ada Lovelace",
		IsAdmin:  true,
		RoleID:   &roleID,
		AuthKind: AuthKindPassword,
	}
	claims.Subject = "7"
	claims.ID = "session-123"

	signed, err := m.Signer.Sign(claims, m.AccessTTL)
	require.NoError(t, err)

	got, err := m.Verifier.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, "7", got.UserID())
	assert.Equal(t, "session-123", got.SessionID())
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.True(t, got.IsAdmin)
	require.NotNil(t, got.RoleID)
	assert.Equal(t, int64(3), *got.RoleID)
	assert.NotNil(t, got.IssuedAt)
	assert.NotNil(t, got.ExpiresAt)
}

func TestVerifyExpired(t *testing.T) {
	m := newTestManager(t)

	claims := &Claims{Email: "a@x.com"}
	claims.Subject = "7"
	claims.ID = "session-123"

	signed, err := m.Signer.Sign(claims, 1*time.Second)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	got, err := m.Verifier.Verify(signed)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyTamperedPayload(t *testing.T) {
	m := newTestManager(t)

	claims := &Claims{Email: "a@x.com", IsAdmin: false}
	claims.Subject = "7"
	claims.ID = "session-123"

	signed, err := m.Signer.Sign(claims, 15*time.Minute)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	// Rewrite the payload so isAdmin flips from false to true, keeping the
	// original signature. The MAC check must reject the altered claims.
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	altered := strings.Replace(string(payload), `"isAdmin":false`, `"isAdmin":true`, 1)
	require.NotEqual(t, string(payload), altered)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(altered))

	got, err := m.Verifier.Verify(strings.Join(parts, "."))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyTamperedSignature(t *testing.T) {
	m := newTestManager(t)

	claims := &Claims{Email: "a@x.com"}
	claims.Subject = "7"
	claims.ID = "session-123"

	signed, err := m.Signer.Sign(claims, 15*time.Minute)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	got, err := m.Verifier.Verify(strings.Join(parts, "."))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	m := newTestManager(t)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		got, err := m.Verifier.Verify(raw)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	m := newTestManager(t)

	other, err := NewManager(Config{
		Secret:     "a-different-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)

	claims := &Claims{Email: "a@x.com"}
	claims.Subject = "7"
	claims.ID = "session-123"

	signed, err := m.Signer.Sign(claims, 15*time.Minute)
	require.NoError(t, err)

	got, err := other.Verifier.Verify(signed)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyRequiresSubAndJTI(t *testing.T) {
	m := newTestManager(t)

	claims := &Claims{Email: "a@x.com"}
	claims.Subject = "7" // jti left empty

	signed, err := m.Signer.Sign(claims, 15*time.Minute)
	require.NoError(t, err)

	got, err := m.Verifier.Verify(signed)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(Config{AccessTTL: time.Minute})
	assert.Error(t, err)
}
