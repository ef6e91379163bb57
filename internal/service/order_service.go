package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID, userID string) (*entity.Order, error)
	ListUserOrders(ctx context.Context, userID string, params repository.ListOrdersParams) (*repository.ListOrdersResult, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       logger.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log logger.Logger) OrderService {
	return &orderService{orderRepo: orderRepo, log: log}
}

// GetOrderByID is owner-only: a caller asking for someone else's order is
// refused, not told whether it exists.
func (s *orderService) GetOrderByID(ctx context.Context, orderID, userID string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		s.log.Errorf("Failed to get order by ID %s: %v", orderID, err)
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	if order.UserID != userID {
		s.log.Warnf("User %s attempted to access order %s belonging to user %s", userID, orderID, order.UserID)
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string, params repository.ListOrdersParams) (*repository.ListOrdersResult, error) {
	params.UserID = userID
	result, err := s.orderRepo.List(ctx, params)
	if err != nil {
		s.log.Errorf("Failed to list orders for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve user orders: %w", err)
	}
	s.log.Infof("Listed %d orders for user ID %s", len(result.Orders), userID)
	return result, nil
}
