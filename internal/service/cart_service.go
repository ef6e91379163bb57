package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const defaultCartTTL = 24 * time.Hour

type CartService interface {
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)
	AddOrSetLine(ctx context.Context, userID, phoneID string, quantity int) (*entity.Cart, error)
	UpdateLineQuantity(ctx context.Context, userID, phoneID string, quantity int) (*entity.Cart, error)
	RemoveLine(ctx context.Context, userID, phoneID string) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	listingRepo repository.ListingRepository
	log         logger.Logger
	cartTTL     time.Duration
}

func NewCartService(
	cartRepo repository.CartRepository,
	listingRepo repository.ListingRepository,
	log logger.Logger,
	cartTTL time.Duration,
) CartService {
	if cartTTL <= 0 {
		cartTTL = defaultCartTTL
	}
	return &cartService{
		cartRepo:    cartRepo,
		listingRepo: listingRepo,
		log:         log,
		cartTTL:     cartTTL,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	return cart, nil
}

// AddOrSetLine puts the phone in the cart at the requested quantity,
// snapshotting the listing's title and price at this moment. The requested
// quantity is validated against the listing's current stock.
func (s *cartService) AddOrSetLine(ctx context.Context, userID, phoneID string, quantity int) (*entity.Cart, error) {
	s.log.Infof("Setting cart line: UserID=%s, PhoneID=%s, Quantity=%d", userID, phoneID, quantity)
	if quantity < 1 {
		return nil, entity.ErrInvalidQuantity
	}

	listing, err := s.resolveListing(ctx, phoneID)
	if err != nil {
		return nil, err
	}
	if quantity > listing.Stock {
		return nil, &InsufficientStockError{PhoneID: phoneID}
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	if err := cart.SetLine(phoneID, listing.Title, quantity, listing.Price); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) UpdateLineQuantity(ctx context.Context, userID, phoneID string, quantity int) (*entity.Cart, error) {
	s.log.Infof("Updating cart line quantity: UserID=%s, PhoneID=%s, Quantity=%d", userID, phoneID, quantity)
	if quantity < 1 {
		return nil, entity.ErrInvalidQuantity
	}

	listing, err := s.resolveListing(ctx, phoneID)
	if err != nil {
		return nil, err
	}
	if quantity > listing.Stock {
		return nil, &InsufficientStockError{PhoneID: phoneID}
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	if err := cart.UpdateLineQuantity(phoneID, quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID, phoneID string) (*entity.Cart, error) {
	s.log.Infof("Removing cart line: UserID=%s, PhoneID=%s", userID, phoneID)
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	if err := cart.RemoveLine(phoneID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	s.log.Infof("Clearing cart for user: UserID=%s", userID)
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Errorf("Error deleting cart for user %s: %v", userID, err)
		return fmt.Errorf("could not clear cart: %w", err)
	}
	return nil
}

func (s *cartService) resolveListing(ctx context.Context, phoneID string) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, phoneID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ListingNotFoundError{PhoneID: phoneID}
		}
		s.log.Errorf("Failed to get listing %s: %v", phoneID, err)
		return nil, fmt.Errorf("could not resolve listing %s: %w", phoneID, err)
	}
	if listing.Disabled {
		// Disabled listings are hidden from the catalog; treat as missing.
		return nil, &ListingNotFoundError{PhoneID: phoneID}
	}
	return listing, nil
}
