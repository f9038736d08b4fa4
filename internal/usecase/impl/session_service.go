package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// mergeTimeout bounds the background guest-cart merge kicked off after a
// successful login.
const mergeTimeout = 30 * time.Second

type sessionService struct {
	identityRepo repository.IdentityRepository
	customerRepo repository.CustomerRepository
	tokenSvc     service.TokenService
	cartUsecase  usecase.CartUsecase
	logger       *slog.Logger
}

// NewSessionService creates a new session service instance.
func NewSessionService(
	identityRepo repository.IdentityRepository,
	customerRepo repository.CustomerRepository,
	tokenSvc service.TokenService,
	cartUsecase usecase.CartUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identityRepo: identityRepo,
		customerRepo: customerRepo,
		tokenSvc:     tokenSvc,
		cartUsecase:  cartUsecase,
		logger:       logger,
	}
}

// Login exchanges credentials for a commerce token and resolves the
// customer record. When the caller carried a guest cart, its items are
// merged into the customer cart in the background; login never waits on,
// or fails because of, the merge.
func (s *sessionService) Login(ctx context.Context, input usecase.LoginInput, guestSession *entity.Session) (*usecase.LoginOutput, error) {
	token, err := s.identityRepo.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	session, err := s.Resolve(ctx, token.Token)
	if err != nil {
		return nil, err
	}

	output := &usecase.LoginOutput{
		Token:       token.Token,
		Email:       session.Email,
		DisplayName: token.DisplayName,
		CustomerID:  session.CustomerID,
	}

	go s.mergeGuestCart(guestSession, session)

	return output, nil
}

// Resolve builds the session for a raw token. Unknown or malformed tokens
// resolve to guest rather than failing the request; a guest simply lacks
// access to the authenticated surfaces.
func (s *sessionService) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return entity.Guest(), nil
	}

	claims, err := s.tokenSvc.ParseClaims(token)
	if err != nil {
		s.logger.Debug("token claim parsing failed, treating caller as guest", slog.Any("error", err))

		return entity.Guest(), nil
	}

	session := &entity.Session{
		Token:      token,
		CustomerID: claims.CustomerID,
		Email:      claims.Email,
	}

	// Tokens issued without a numeric id claim still identify the customer
	// by email; look the id up so order history and wishlist work.
	if session.CustomerID == 0 && session.Email != "" {
		customer, err := s.customerRepo.FindByEmail(ctx, session.Email)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil, domainerrors.ErrInvalidCredentials
			}

			return nil, errors.Wrap(err, "failed to resolve customer by email")
		}
		session.CustomerID = customer.ID
	}

	return session, nil
}

func (s *sessionService) mergeGuestCart(guest, customer *entity.Session) {
	// The request context dies with the login response; the merge runs on
	// its own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), mergeTimeout)
	defer cancel()

	summary, err := s.cartUsecase.MergeGuestCart(ctx, guest, customer)
	if err != nil {
		s.logger.Warn("guest cart merge failed", slog.Any("error", err))

		return
	}

	if summary.Total > 0 {
		s.logger.Info("guest cart merged",
			slog.Int("total", summary.Total),
			slog.Int("added", summary.Added),
			slog.Int("failed", summary.Failed))
	}
}
