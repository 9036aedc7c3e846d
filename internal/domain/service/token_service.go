package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"` // Parsed from the subject claim
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the identity provider.
// Tokens are only minted here for tests and local tooling.
type TokenService interface {
	// GenerateAccessToken signs an access token for the given user.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
