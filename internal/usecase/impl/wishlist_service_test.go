package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_RequiresAuthentication(t *testing.T) {
	wishlistRepo := &mockWishlistRepository{}
	service := NewWishlistService(wishlistRepo, &mockCartUsecase{}, testLogger())

	_, err := service.List(context.Background(), entity.Guest())
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)

	err = service.Add(context.Background(), entity.Guest(), 7)
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)
	wishlistRepo.AssertNotCalled(t, "List")
	wishlistRepo.AssertNotCalled(t, "Add")
}

func TestWishlistService_AddAndRemove(t *testing.T) {
	wishlistRepo := &mockWishlistRepository{}
	service := NewWishlistService(wishlistRepo, &mockCartUsecase{}, testLogger())

	ctx := context.Background()
	session := authedSession()

	wishlistRepo.On("Add", ctx, int64(42), int64(7)).Return(nil)
	wishlistRepo.On("Remove", ctx, int64(42), int64(7)).Return(nil)

	require.NoError(t, service.Add(ctx, session, 7))
	require.NoError(t, service.Remove(ctx, session, 7))
	wishlistRepo.AssertExpectations(t)
}

func TestWishlistService_MoveAllToCart_RemovesOnlyMovedEntries(t *testing.T) {
	wishlistRepo := &mockWishlistRepository{}
	cartUC := &mockCartUsecase{}
	service := NewWishlistService(wishlistRepo, cartUC, testLogger())

	ctx := context.Background()
	session := authedSession()
	entries := []*entity.WishlistEntry{
		{UserID: 42, ProductID: 1},
		{UserID: 42, ProductID: 2},
		{UserID: 42, ProductID: 3},
	}

	wishlistRepo.On("List", ctx, int64(42)).Return(entries, nil)
	cartUC.On("AddItem", ctx, session, usecase.AddItemInput{ID: 1, Quantity: 1}).Return(cartWithItems(), nil)
	cartUC.On("AddItem", ctx, session, usecase.AddItemInput{ID: 2, Quantity: 1}).
		Return(nil, errors.New("out of stock"))
	cartUC.On("AddItem", ctx, session, usecase.AddItemInput{ID: 3, Quantity: 1}).Return(cartWithItems(), nil)
	wishlistRepo.On("Remove", ctx, int64(42), int64(1)).Return(nil)
	wishlistRepo.On("Remove", ctx, int64(42), int64(3)).Return(nil)

	summary, err := service.MoveAllToCart(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Moved)
	assert.Equal(t, []int64{2}, summary.Failed)
	// The failed product stays on the wishlist.
	wishlistRepo.AssertNotCalled(t, "Remove", ctx, int64(42), int64(2))
}

func TestWishlistService_MoveAllToCart_KeepsEntryWhenRemovalFails(t *testing.T) {
	wishlistRepo := &mockWishlistRepository{}
	cartUC := &mockCartUsecase{}
	service := NewWishlistService(wishlistRepo, cartUC, testLogger())

	ctx := context.Background()
	session := authedSession()

	wishlistRepo.On("List", ctx, int64(42)).Return([]*entity.WishlistEntry{{UserID: 42, ProductID: 1}}, nil)
	cartUC.On("AddItem", ctx, session, usecase.AddItemInput{ID: 1, Quantity: 1}).Return(cartWithItems(), nil)
	wishlistRepo.On("Remove", ctx, int64(42), int64(1)).Return(errors.New("backend down"))

	summary, err := service.MoveAllToCart(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Moved)
	assert.Empty(t, summary.Failed)
}
