// Package receipt issues and verifies signed proof-of-solve receipts.
//
// A receipt is an HS256 JWT whose subject is the attempt id of a successful
// submission. It lets a scoreboard confirm a solve without ever seeing the
// reward token.
package receipt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrDisabled is returned when no signing key is configured.
var ErrDisabled = errors.New("receipts disabled")

// Claims carried by a receipt.
type Claims struct {
	Challenge string `json:"chl"` // target digest the solve was checked against
	jwt.RegisteredClaims
}

// VerifyResponse is returned by the verification endpoint.
type VerifyResponse struct {
	Valid     bool       `json:"valid"`
	AttemptID string     `json:"attempt_id,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Service signs and validates receipts.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

// New creates a receipt service. An empty signingKey yields a service whose
// Enabled reports false.
func New(signingKey, issuer string, ttl time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Enabled reports whether receipts can be issued.
func (s *Service) Enabled() bool {
	return s != nil && len(s.signingKey) > 0
}

// Issue signs a receipt for a successful attempt.
func (s *Service) Issue(attemptID uuid.UUID, challenge string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	now := s.now()
	claims := Claims{
		Challenge: challenge,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   attemptID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// Verify validates a receipt and returns its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid receipt")
	}
	if claims.Issuer != s.issuer {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	return claims, nil
}
