package repository

import (
	"context"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*entity.User, error)
}
