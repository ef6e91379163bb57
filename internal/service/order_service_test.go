package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

func TestOrderService_GetOrderByID_Success(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, NewNoOpLogger())
	ctx := context.Background()

	stored := &entity.Order{ID: "order-1", UserID: "user-1", TotalAmount: 300}
	orderRepo.On("GetByID", ctx, "order-1").Return(stored, nil)

	order, err := svc.GetOrderByID(ctx, "order-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, stored, order)
}

func TestOrderService_GetOrderByID_NotOwner(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, NewNoOpLogger())
	ctx := context.Background()

	stored := &entity.Order{ID: "order-1", UserID: "user-1"}
	orderRepo.On("GetByID", ctx, "order-1").Return(stored, nil)

	order, err := svc.GetOrderByID(ctx, "order-1", "user-2")

	require.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, order)
}

func TestOrderService_GetOrderByID_NotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, NewNoOpLogger())
	ctx := context.Background()

	orderRepo.On("GetByID", ctx, "order-x").Return(nil, repository.ErrNotFound)

	order, err := svc.GetOrderByID(ctx, "order-x", "user-1")

	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, order)
}

func TestOrderService_ListUserOrders_ForcesCallerID(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewOrderService(orderRepo, NewNoOpLogger())
	ctx := context.Background()

	expected := &repository.ListOrdersResult{
		Orders:      []entity.Order{{ID: "order-1", UserID: "user-1"}},
		TotalCount:  1,
		CurrentPage: 1,
		PageSize:    10,
		TotalPages:  1,
	}
	orderRepo.On("List", ctx, repository.ListOrdersParams{
		UserID:   "user-1",
		Page:     1,
		PageSize: 10,
	}).Return(expected, nil)

	// The caller's userID wins over whatever was placed in the params.
	result, err := svc.ListUserOrders(ctx, "user-1", repository.ListOrdersParams{
		UserID:   "someone-else",
		Page:     1,
		PageSize: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	orderRepo.AssertExpectations(t)
}
