package repository

import "context"

// WishlistRepository keeps a per-user set of listing IDs. Adding an ID that
// is already present is a no-op, not an error.
type WishlistRepository interface {
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
	ListByUserID(ctx context.Context, userID string) ([]string, error)
}
