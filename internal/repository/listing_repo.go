package repository

import (
	"context"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
)

// ListingRepository is the catalog store contract consumed by checkout and
// the cart page. DecrementStockAndIncrementSales is the single stock-safety
// primitive: it decrements only when the listing still holds at least the
// requested quantity, in one storage round trip, and returns
// ErrInsufficientStock otherwise with state unchanged.
type ListingRepository interface {
	GetByID(ctx context.Context, listingID string) (*entity.Listing, error)
	DecrementStockAndIncrementSales(ctx context.Context, listingID string, quantity int) error

	// RestoreStock reverses a committed decrement. Used only by checkout
	// compensation when a later line fails to commit.
	RestoreStock(ctx context.Context, listingID string, quantity int) error

	AddReview(ctx context.Context, listingID string, review entity.Review) error
	SetReviewHidden(ctx context.Context, listingID string, reviewIndex int, hidden bool) error
}
