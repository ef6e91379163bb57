package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const cartKeyPrefix = "cart:"

type cartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) cartKey(userID string) string {
	return cartKeyPrefix + userID
}

// GetByUserID returns a fresh empty cart when none is stored yet. A missing
// cart is lazy-initialization, never an error.
func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	val, err := r.client.Get(ctx, r.cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(userID), nil
		}
		return nil, fmt.Errorf("failed to get cart for user %s from redis: %w", userID, err)
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart data for user %s: %w", userID, err)
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error {
	if cart == nil || cart.UserID == "" {
		return errors.New("cannot save nil cart or cart with empty userID")
	}

	cart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for user %s: %w", cart.UserID, err)
	}

	if err := r.client.Set(ctx, r.cartKey(cart.UserID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for user %s to redis: %w", cart.UserID, err)
	}
	return nil
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for user %s from redis: %w", userID, err)
	}
	return nil
}
