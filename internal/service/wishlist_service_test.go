package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

func newWishlistFixture() (*MockWishlistRepository, *MockListingRepository, WishlistService) {
	wishlistRepo := new(MockWishlistRepository)
	listingRepo := new(MockListingRepository)
	svc := NewWishlistService(wishlistRepo, listingRepo, NewNoOpLogger())
	return wishlistRepo, listingRepo, svc
}

func TestWishlistService_Add(t *testing.T) {
	wishlistRepo, listingRepo, svc := newWishlistFixture()
	ctx := context.Background()

	listingRepo.On("GetByID", ctx, "phone-1").Return(listingWithStock("phone-1", 100, 5), nil)
	wishlistRepo.On("Add", ctx, "user-1", "phone-1").Return(nil)

	err := svc.Add(ctx, "user-1", "phone-1")

	require.NoError(t, err)
	wishlistRepo.AssertExpectations(t)
}

func TestWishlistService_Add_ListingNotFound(t *testing.T) {
	wishlistRepo, listingRepo, svc := newWishlistFixture()
	ctx := context.Background()

	listingRepo.On("GetByID", ctx, "phone-x").Return(nil, repository.ErrNotFound)

	err := svc.Add(ctx, "user-1", "phone-x")

	var notFound *ListingNotFoundError
	require.ErrorAs(t, err, &notFound)
	wishlistRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

// Listings removed or disabled since they were wished for are dropped
// silently from the resolved list.
func TestWishlistService_List_DropsStaleEntries(t *testing.T) {
	wishlistRepo, listingRepo, svc := newWishlistFixture()
	ctx := context.Background()

	disabled := listingWithStock("phone-3", 80, 2)
	disabled.Disabled = true

	wishlistRepo.On("ListByUserID", ctx, "user-1").Return([]string{"phone-1", "phone-2", "phone-3"}, nil)
	listingRepo.On("GetByID", ctx, "phone-1").Return(listingWithStock("phone-1", 100, 5), nil)
	listingRepo.On("GetByID", ctx, "phone-2").Return(nil, repository.ErrNotFound)
	listingRepo.On("GetByID", ctx, "phone-3").Return(disabled, nil)

	listings, err := svc.List(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "phone-1", listings[0].ID)
}

func TestWishlistService_Remove(t *testing.T) {
	wishlistRepo, _, svc := newWishlistFixture()
	ctx := context.Background()

	wishlistRepo.On("Remove", ctx, "user-1", "phone-1").Return(nil)

	err := svc.Remove(ctx, "user-1", "phone-1")

	require.NoError(t, err)
}
