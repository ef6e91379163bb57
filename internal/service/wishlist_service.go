package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

type WishlistService interface {
	Add(ctx context.Context, userID, phoneID string) error
	Remove(ctx context.Context, userID, phoneID string) error
	List(ctx context.Context, userID string) ([]*entity.Listing, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	listingRepo  repository.ListingRepository
	log          logger.Logger
}

func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	listingRepo repository.ListingRepository,
	log logger.Logger,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		listingRepo:  listingRepo,
		log:          log,
	}
}

func (s *wishlistService) Add(ctx context.Context, userID, phoneID string) error {
	if _, err := s.listingRepo.GetByID(ctx, phoneID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ListingNotFoundError{PhoneID: phoneID}
		}
		return fmt.Errorf("could not resolve listing %s: %w", phoneID, err)
	}

	if err := s.wishlistRepo.Add(ctx, userID, phoneID); err != nil {
		s.log.Errorf("Failed to add listing %s to wishlist of user %s: %v", phoneID, userID, err)
		return fmt.Errorf("could not update wishlist: %w", err)
	}
	return nil
}

func (s *wishlistService) Remove(ctx context.Context, userID, phoneID string) error {
	if err := s.wishlistRepo.Remove(ctx, userID, phoneID); err != nil {
		s.log.Errorf("Failed to remove listing %s from wishlist of user %s: %v", phoneID, userID, err)
		return fmt.Errorf("could not update wishlist: %w", err)
	}
	return nil
}

// List resolves the stored IDs against the catalog. Listings deleted or
// disabled since they were wished for are dropped from the result.
func (s *wishlistService) List(ctx context.Context, userID string) ([]*entity.Listing, error) {
	ids, err := s.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Failed to list wishlist of user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve wishlist: %w", err)
	}

	listings := make([]*entity.Listing, 0, len(ids))
	for _, id := range ids {
		listing, err := s.listingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("could not resolve wishlist listing %s: %w", id, err)
		}
		if listing.Disabled {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
