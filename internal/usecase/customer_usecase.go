package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to create a customer account.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

// UpdateProfileInput carries a partial profile update; nil fields are
// left untouched.
type UpdateProfileInput struct {
	FirstName *string         `json:"first_name,omitempty"`
	LastName  *string         `json:"last_name,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Billing   *entity.Address `json:"billing,omitempty"`
	Shipping  *entity.Address `json:"shipping,omitempty"`
}

// ChangePasswordInput carries the new password for the account.
type ChangePasswordInput struct {
	Password string `json:"password" validate:"required,min=8"`
}

// CustomerUsecase defines the interface for customer account operations.
type CustomerUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Customer, error)
	Profile(ctx context.Context, session *entity.Session) (*entity.Customer, error)
	UpdateProfile(ctx context.Context, session *entity.Session, input UpdateProfileInput) (*entity.Customer, error)
	ChangePassword(ctx context.Context, session *entity.Session, input ChangePasswordInput) error

	Orders(ctx context.Context, session *entity.Session) ([]*entity.Order, error)
	Order(ctx context.Context, session *entity.Session, orderID int64) (*entity.Order, error)
}
