package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const wishlistKeyPrefix = "wishlist:"

type wishlistRepository struct {
	client *redis.Client
}

func NewWishlistRepository(client *redis.Client) repository.WishlistRepository {
	return &wishlistRepository{client: client}
}

func (r *wishlistRepository) wishlistKey(userID string) string {
	return wishlistKeyPrefix + userID
}

func (r *wishlistRepository) Add(ctx context.Context, userID, listingID string) error {
	if err := r.client.SAdd(ctx, r.wishlistKey(userID), listingID).Err(); err != nil {
		return fmt.Errorf("failed to add listing %s to wishlist of user %s: %w", listingID, userID, err)
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, listingID string) error {
	if err := r.client.SRem(ctx, r.wishlistKey(userID), listingID).Err(); err != nil {
		return fmt.Errorf("failed to remove listing %s from wishlist of user %s: %w", listingID, userID, err)
	}
	return nil
}

func (r *wishlistRepository) ListByUserID(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.wishlistKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist of user %s: %w", userID, err)
	}
	return ids, nil
}
