package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

// customerRepository implements repository.CustomerRepository against the
// management API. These endpoints only accept the client credentials.
type customerRepository struct {
	client *Client
}

// NewCustomerRepository is the constructor for the customer repository.
func NewCustomerRepository(client *Client) repository.CustomerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customers []*entity.Customer
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "customers",
		query:      url.Values{"email": {email}},
		forceBasic: true,
		out:        &customers,
	})
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, repository.ErrCustomerNotFound
	}

	return customers[0], nil
}

func (r *customerRepository) FindByID(ctx context.Context, customerID int64) (*entity.Customer, error) {
	customer := &entity.Customer{}
	_, err := r.client.do(ctx, request{
		method:     http.MethodGet,
		base:       r.client.cfg.APIURL,
		path:       "customers/" + strconv.FormatInt(customerID, 10),
		forceBasic: true,
		out:        customer,
	})
	if err != nil {
		if domainerrors.IsRemoteStatus(err, http.StatusNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer, password string) (*entity.Customer, error) {
	payload := map[string]any{
		"email":      customer.Email,
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
		"username":   customer.Username,
		"password":   password,
	}

	created := &entity.Customer{}
	_, err := r.client.do(ctx, request{
		method:     http.MethodPost,
		base:       r.client.cfg.APIURL,
		path:       "customers",
		body:       payload,
		forceBasic: true,
		out:        created,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *customerRepository) Update(ctx context.Context, customerID int64, update *repository.CustomerUpdate) (*entity.Customer, error) {
	updated := &entity.Customer{}
	_, err := r.client.do(ctx, request{
		method:     http.MethodPost,
		base:       r.client.cfg.APIURL,
		path:       "customers/" + strconv.FormatInt(customerID, 10),
		body:       update,
		forceBasic: true,
		out:        updated,
	})
	if err != nil {
		if domainerrors.IsRemoteStatus(err, http.StatusNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, err
	}

	return updated, nil
}

func (r *customerRepository) ChangePassword(ctx context.Context, customerID int64, newPassword string) error {
	_, err := r.client.do(ctx, request{
		method:     http.MethodPut,
		base:       r.client.cfg.APIURL,
		path:       "customers/" + strconv.FormatInt(customerID, 10),
		body:       map[string]string{"password": newPassword},
		forceBasic: true,
	})

	return err
}

// identityRepository implements repository.IdentityRepository against the
// token endpoint.
type identityRepository struct {
	client *Client
}

// NewIdentityRepository is the constructor for the identity repository.
func NewIdentityRepository(client *Client) repository.IdentityRepository {
	return &identityRepository{client: client}
}

// Authenticate exchanges credentials for a commerce JWT. The token endpoint
// takes no client credentials; invalid logins surface as 403 from the
// backend and are normalized here.
func (r *identityRepository) Authenticate(ctx context.Context, username, password string) (*entity.AuthToken, error) {
	token := &entity.AuthToken{}
	_, err := r.client.do(ctx, request{
		method: http.MethodPost,
		base:   r.client.cfg.AuthURL,
		path:   "token",
		body: map[string]string{
			"username": username,
			"password": password,
		},
		out: token,
	})
	if err != nil {
		if domainerrors.IsRemoteStatus(err, http.StatusForbidden) || domainerrors.IsRemoteStatus(err, http.StatusUnauthorized) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	return token, nil
}
