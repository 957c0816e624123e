// Package credentials is the opaque credential service: bcrypt password
// hashing plus JWT session tokens.
package credentials

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"auction-platform/internal/auctionerrors"
)

// Claims holds the typed JWT payload.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates bearer session tokens and hashes secrets.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a credential service from the signing secret and
// token lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Hash returns a bcrypt hash of the plain-text secret.
func (s *Service) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("credentials: hash: %w", err)
	}
	return string(hashed), nil
}

// Verify compares a bcrypt hash against the presented secret.
func (s *Service) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// IssueToken creates a signed JWT for the given user.
func (s *Service) IssueToken(userID, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("credentials: sign token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and validates a JWT string and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("credentials: parse token: %v: %w", err, auctionerrors.ErrAuth)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("credentials: invalid claims: %w", auctionerrors.ErrAuth)
	}
	return claims, nil
}
