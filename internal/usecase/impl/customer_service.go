package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

// NewCustomerService creates a new customer service instance.
func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *customerService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.Create(ctx, &entity.Customer{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
	}, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

func (s *customerService) Profile(ctx context.Context, session *entity.Session) (*entity.Customer, error) {
	if !session.IsAuthenticated() {
		return nil, domainerrors.ErrSessionRequired
	}

	customer, err := s.customerRepo.FindByID(ctx, session.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer profile")
	}

	return customer, nil
}

// UpdateProfile applies a partial update on top of the stored record. The
// backend only accepts full-record updates, so unset fields are filled
// from the current profile before the write.
func (s *customerService) UpdateProfile(ctx context.Context, session *entity.Session, input usecase.UpdateProfileInput) (*entity.Customer, error) {
	current, err := s.Profile(ctx, session)
	if err != nil {
		return nil, err
	}

	update := &repository.CustomerUpdate{
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Email:     current.Email,
		Billing:   input.Billing,
		Shipping:  input.Shipping,
	}
	if input.FirstName != nil {
		update.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		update.LastName = *input.LastName
	}
	if input.Email != nil {
		update.Email = *input.Email
	}

	customer, err := s.customerRepo.Update(ctx, session.CustomerID, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update customer profile")
	}

	return customer, nil
}

func (s *customerService) ChangePassword(ctx context.Context, session *entity.Session, input usecase.ChangePasswordInput) error {
	if !session.IsAuthenticated() {
		return domainerrors.ErrSessionRequired
	}

	return s.customerRepo.ChangePassword(ctx, session.CustomerID, input.Password)
}

func (s *customerService) Orders(ctx context.Context, session *entity.Session) ([]*entity.Order, error) {
	if !session.IsAuthenticated() {
		return nil, domainerrors.ErrSessionRequired
	}

	orders, err := s.orderRepo.ListByCustomer(ctx, session.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Order returns one order, refusing to serve an order that belongs to a
// different customer.
func (s *customerService) Order(ctx context.Context, session *entity.Session, orderID int64) (*entity.Order, error) {
	if !session.IsAuthenticated() {
		return nil, domainerrors.ErrSessionRequired
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.CustomerID != session.CustomerID {
		return nil, domainerrors.ErrNotFound
	}

	return order, nil
}
