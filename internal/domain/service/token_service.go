package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer
// tokens. Verification is stateless: a pure function of the token string,
// the signing secret and the current time, so any process instance can
// verify any token without shared session state.
type TokenService interface {
	// Generate creates a signed, time-limited access token bound to userID.
	Generate(userID string) (string, error)

	// Validate checks the signature, structure and expiry of a token string
	// and returns its claims. Any failure means the bearer is not authenticated.
	Validate(tokenString string) (*Claims, error)
}
