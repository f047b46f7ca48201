package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Manager bundles the signer and verifier built from a single shared secret.
type Manager struct {
	Signer   *Signer
	Verifier *Verifier

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token manager requires a signing secret")
	}
	secret := []byte(cfg.Secret)
	return &Manager{
		Signer:     NewSigner(secret),
		Verifier:   NewVerifier(secret),
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	}, nil
}

type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret}
}

// Sign encodes the claims plus iat/exp for the given TTL and signs them with
// HMAC-SHA256. The caller supplies identity fields and the jti; Sign never
// mutates its argument.
func (s *Signer) Sign(claims *Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	stamped := *claims
	stamped.IssuedAt = jwt.NewNumericDate(now)
	stamped.NotBefore = jwt.NewNumericDate(now)
	stamped.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &stamped)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
