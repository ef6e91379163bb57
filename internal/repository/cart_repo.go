package repository

import (
	"context"
	"time"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
)

// CartRepository stores one cart per user. GetByUserID never fails on a
// missing cart: an empty cart is created lazily on first read.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error
	DeleteByUserID(ctx context.Context, userID string) error
}
