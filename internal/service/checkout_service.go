package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/email"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/nats"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/metrics"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const natsSubjectOrderCreated = "order.created"

type orderCreatedEvent struct {
	EventID string        `json:"event_id"`
	Order   *entity.Order `json:"order"`
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID string, address entity.Address) (*entity.Order, error)
}

type checkoutService struct {
	cartRepo     repository.CartRepository
	listingRepo  repository.ListingRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	msgPublisher nats.MessagePublisher
	emailSender  email.EmailSender
	metrics      *metrics.MetricsManager
	log          logger.Logger
}

func NewCheckoutService(
	cartRepo repository.CartRepository,
	listingRepo repository.ListingRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	msgPublisher nats.MessagePublisher,
	emailSender email.EmailSender,
	metricsManager *metrics.MetricsManager,
	log logger.Logger,
) CheckoutService {
	return &checkoutService{
		cartRepo:     cartRepo,
		listingRepo:  listingRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		msgPublisher: msgPublisher,
		emailSender:  emailSender,
		metrics:      metricsManager,
		log:          log,
	}
}

// Checkout converts the caller's cart into an order.
//
// The sequence is: validate the address, load the cart, run a read-only
// stock validation pass over every line, persist the order, commit the
// stock decrements, clear the cart. Totals use the price snapshot stored
// on each cart line at add time, never a live catalog re-read, so the
// buyer pays what the cart showed.
//
// Stock commits go through the repository's conditional decrement, which
// refuses to go below zero even when two checkouts race past the
// validation pass. If any line fails to commit, the already-committed
// lines are restocked and the order document is removed, so the
// observable outcome is all-or-nothing.
func (s *checkoutService) Checkout(ctx context.Context, userID string, address entity.Address) (order *entity.Order, err error) {
	s.log.Infof("Checkout started for user ID: %s", userID)
	start := time.Now()
	defer func() {
		s.observe(start, err)
	}()

	if err = address.Validate(); err != nil {
		s.log.Warnf("Checkout rejected for user %s: invalid shipping address", userID)
		return nil, ErrInvalidAddress
	}

	cart, cartErr := s.cartRepo.GetByUserID(ctx, userID)
	if cartErr != nil {
		s.log.Errorf("Failed to get cart for user %s: %v", userID, cartErr)
		err = fmt.Errorf("failed to retrieve cart for checkout: %w", cartErr)
		return nil, err
	}
	if cart.IsEmpty() {
		s.log.Warnf("User %s attempted to check out an empty cart", userID)
		return nil, ErrEmptyCart
	}

	// Read-only validation pass over all lines before any mutation.
	for _, line := range cart.Lines {
		listing, listErr := s.listingRepo.GetByID(ctx, line.PhoneID)
		if listErr != nil {
			if errors.Is(listErr, repository.ErrNotFound) {
				s.log.Warnf("Checkout for user %s references missing listing %s", userID, line.PhoneID)
				err = &ListingNotFoundError{PhoneID: line.PhoneID}
				return nil, err
			}
			err = fmt.Errorf("failed to validate cart line for listing %s: %w", line.PhoneID, listErr)
			return nil, err
		}
		if !listing.Purchasable(line.Quantity) {
			s.log.Warnf("Checkout for user %s: listing %s cannot satisfy quantity %d (stock %d, disabled %t)",
				userID, line.PhoneID, line.Quantity, listing.Stock, listing.Disabled)
			err = &InsufficientStockError{PhoneID: line.PhoneID}
			return nil, err
		}
	}

	items := make([]entity.OrderItem, len(cart.Lines))
	for i, line := range cart.Lines {
		item, itemErr := entity.NewOrderItem(line.PhoneID, line.Title, line.Quantity, line.Price)
		if itemErr != nil {
			err = fmt.Errorf("invalid cart line for phone %s: %w", line.PhoneID, itemErr)
			return nil, err
		}
		items[i] = *item
	}

	order, err = entity.NewOrder(userID, items, address)
	if err != nil {
		err = fmt.Errorf("failed to prepare order: %w", err)
		return nil, err
	}

	orderID, createErr := s.orderRepo.Create(ctx, repository.CreateOrderParams{
		UserID:      order.UserID,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		Address:     order.Address,
	})
	if createErr != nil {
		s.log.Errorf("Failed to save order for user %s: %v", userID, createErr)
		err = fmt.Errorf("failed to save order: %w", createErr)
		return nil, err
	}
	order.ID = orderID

	if commitErr := s.commitStock(ctx, cart.Lines); commitErr != nil {
		if delErr := s.orderRepo.Delete(ctx, orderID); delErr != nil {
			s.log.Errorf("Failed to remove order %s after stock commit failure: %v", orderID, delErr)
		}
		err = commitErr
		return nil, err
	}

	if clearErr := s.cartRepo.DeleteByUserID(ctx, userID); clearErr != nil {
		s.log.Warnf("Failed to clear cart for user %s after placing order %s: %v", userID, orderID, clearErr)
	}

	event := orderCreatedEvent{EventID: uuid.NewString(), Order: order}
	if pubErr := s.msgPublisher.Publish(ctx, natsSubjectOrderCreated, event); pubErr != nil {
		s.log.Warnf("Failed to publish order created event for order ID %s: %v", orderID, pubErr)
	}

	s.sendConfirmationEmail(ctx, order)

	if s.metrics != nil {
		s.metrics.OrdersPlacedTotal.Inc()
		s.metrics.OrderValue.Observe(order.TotalAmount)
	}

	s.log.Infof("Order %s placed successfully for user ID %s, total %.2f", orderID, userID, order.TotalAmount)
	return order, nil
}

// commitStock decrements stock and increments the sales counter for every
// purchased line. On failure it restocks the lines committed so far.
func (s *checkoutService) commitStock(ctx context.Context, lines []entity.CartLine) error {
	for i, line := range lines {
		decErr := s.listingRepo.DecrementStockAndIncrementSales(ctx, line.PhoneID, line.Quantity)
		if decErr == nil {
			continue
		}

		s.log.Errorf("Stock commit failed for listing %s (quantity %d): %v", line.PhoneID, line.Quantity, decErr)
		for j := i - 1; j >= 0; j-- {
			if restoreErr := s.listingRepo.RestoreStock(ctx, lines[j].PhoneID, lines[j].Quantity); restoreErr != nil {
				s.log.Errorf("Failed to restore stock for listing %s during compensation: %v", lines[j].PhoneID, restoreErr)
			}
		}

		switch {
		case errors.Is(decErr, repository.ErrNotFound):
			return &ListingNotFoundError{PhoneID: line.PhoneID}
		case errors.Is(decErr, repository.ErrInsufficientStock):
			return &InsufficientStockError{PhoneID: line.PhoneID}
		default:
			return fmt.Errorf("failed to commit stock for listing %s: %w", line.PhoneID, decErr)
		}
	}
	return nil
}

func (s *checkoutService) sendConfirmationEmail(ctx context.Context, order *entity.Order) {
	if s.emailSender == nil {
		return
	}

	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		s.log.Warnf("Failed to resolve user %s for order confirmation email: %v", order.UserID, err)
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nYour order %s has been placed.\n\n", user.FullName(), order.ID)
	for _, item := range order.Items {
		body += fmt.Sprintf("- %s (x%d) @ %.2f\n", item.Title, item.Quantity, item.Price)
	}
	body += fmt.Sprintf("\nTotal: %.2f\n", order.TotalAmount)

	subject := fmt.Sprintf("Old Phone Deals order %s confirmed", order.ID)
	if err := s.emailSender.Send(ctx, []string{user.Email}, subject, body); err != nil {
		s.log.Warnf("Failed to send order confirmation email for order %s: %v", order.ID, err)
	}
}

func (s *checkoutService) observe(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.CheckoutLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.CheckoutFailuresTotal.WithLabelValues(failureReason(err)).Inc()
	}
}

func failureReason(err error) string {
	var notFound *ListingNotFoundError
	var noStock *InsufficientStockError
	switch {
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.As(err, &notFound):
		return "listing_not_found"
	case errors.As(err, &noStock):
		return "insufficient_stock"
	default:
		return "internal"
	}
}
