// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput defines the credentials for a customer login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued token and the resolved customer identity.
type LoginOutput struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CustomerID  int64  `json:"customer_id"`
}

// SessionUsecase defines the interface for login and identity resolution.
// This is the contract that the delivery layer will depend on.
type SessionUsecase interface {
	// Login exchanges credentials for a token and resolves the customer
	// record behind it. A guest cart carried in guestSession is merged
	// into the customer cart in the background after a successful login.
	Login(ctx context.Context, input LoginInput, guestSession *entity.Session) (*LoginOutput, error)

	// Resolve builds a session from a raw bearer token. An empty token
	// yields the guest session.
	Resolve(ctx context.Context, token string) (*entity.Session, error)
}
