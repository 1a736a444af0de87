// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in. Identifier accepts either
// the username or the email in the same field.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token along with the account identity.
// Both registration and login produce it.
type AuthOutput struct {
	AccessToken string
	TokenType   string
	UserID      string
	Username    string
}

// ProfileOutput returns the authenticated account's public attributes.
type ProfileOutput struct {
	Username string
	Email    string
}

// AccountUsecase defines the interface for registration, login and profile
// retrieval. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID string) (*ProfileOutput, error)
}
