package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CustomerUpdate is a full-record update of the editable customer fields.
// Nil address blocks leave the stored blocks untouched.
type CustomerUpdate struct {
	FirstName string          `json:"first_name,omitempty"`
	LastName  string          `json:"last_name,omitempty"`
	Email     string          `json:"email,omitempty"`
	Billing   *entity.Address `json:"billing,omitempty"`
	Shipping  *entity.Address `json:"shipping,omitempty"`
}

// CustomerRepository wraps the commerce customers resource. These calls
// always use the client credentials (Basic auth); the management API has no
// per-customer tokens.
type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByID(ctx context.Context, customerID int64) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer, password string) (*entity.Customer, error)
	Update(ctx context.Context, customerID int64, update *CustomerUpdate) (*entity.Customer, error)
	ChangePassword(ctx context.Context, customerID int64, newPassword string) error
}

// IdentityRepository wraps the commerce token endpoint.
type IdentityRepository interface {
	// Authenticate exchanges credentials for a commerce JWT.
	Authenticate(ctx context.Context, username, password string) (*entity.AuthToken, error)
}
