package repository

import (
	"context"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
)

type CreateOrderParams struct {
	UserID      string
	Items       []entity.OrderItem
	TotalAmount float64
	Address     entity.Address
}

type ListOrdersParams struct {
	UserID    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListOrdersResult struct {
	Orders      []entity.Order
	TotalCount  int64
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// OrderRepository is pure persistence: all validation happens in the
// checkout workflow before Create is called. Delete exists solely for
// checkout compensation and is never exposed over the API.
type OrderRepository interface {
	Create(ctx context.Context, params CreateOrderParams) (string, error)
	GetByID(ctx context.Context, orderID string) (*entity.Order, error)
	List(ctx context.Context, params ListOrdersParams) (*ListOrdersResult, error)
	Delete(ctx context.Context, orderID string) error
}
