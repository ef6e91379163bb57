package service

import (
	"context"
	"fmt"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
)

type ReceiptService interface {
	GenerateOrderReceipt(ctx context.Context, orderID, userID string) ([]byte, string, error)
}

type receiptService struct {
	orderService OrderService
	log          logger.Logger
}

func NewReceiptService(orderService OrderService, log logger.Logger) ReceiptService {
	return &receiptService{orderService: orderService, log: log}
}

func (s *receiptService) GenerateOrderReceipt(ctx context.Context, orderID, userID string) ([]byte, string, error) {
	s.log.Infof("Generating receipt for order ID: %s, requested by User ID: %s", orderID, userID)

	order, err := s.orderService.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		return nil, "", err
	}

	content := fmt.Sprintf(
		"Old Phone Deals\nOrder ID: %s\nPlaced: %s\n\nItems:\n",
		order.ID,
		order.CreatedAt.Format("2006-01-02 15:04:05 UTC"),
	)
	for _, item := range order.Items {
		content += fmt.Sprintf("- %s (x%d) @ %.2f = %.2f\n",
			item.Title, item.Quantity, item.Price, float64(item.Quantity)*item.Price)
	}
	content += fmt.Sprintf("\nTotal: %.2f\n\nShip to: %s, %s, %s %s, %s\n",
		order.TotalAmount,
		order.Address.Street, order.Address.City, order.Address.State,
		order.Address.Zip, order.Address.Country)

	fileName := fmt.Sprintf("receipt_%s.txt", orderID)
	return []byte(content), fileName, nil
}
