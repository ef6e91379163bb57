package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/nats"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const natsSubjectReviewCreated = "review.created"

var ErrInvalidReview = errors.New("rating must be between 1 and 5")

type ReviewService interface {
	SubmitReview(ctx context.Context, listingID, reviewerID, comment string, rating int) (*entity.Review, error)
	SetReviewHidden(ctx context.Context, listingID string, reviewIndex int, callerID string, hidden bool) error
}

type reviewService struct {
	listingRepo  repository.ListingRepository
	msgPublisher nats.MessagePublisher
	log          logger.Logger
}

func NewReviewService(
	listingRepo repository.ListingRepository,
	msgPublisher nats.MessagePublisher,
	log logger.Logger,
) ReviewService {
	return &reviewService{
		listingRepo:  listingRepo,
		msgPublisher: msgPublisher,
		log:          log,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, listingID, reviewerID, comment string, rating int) (*entity.Review, error) {
	s.log.Infof("Submitting review: ListingID=%s, ReviewerID=%s, Rating=%d", listingID, reviewerID, rating)

	review, err := entity.NewReview(reviewerID, comment, rating)
	if err != nil {
		return nil, ErrInvalidReview
	}

	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ListingNotFoundError{PhoneID: listingID}
		}
		return nil, fmt.Errorf("failed to resolve listing %s: %w", listingID, err)
	}

	if err := s.listingRepo.AddReview(ctx, listingID, *review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ListingNotFoundError{PhoneID: listingID}
		}
		s.log.Errorf("Failed to add review to listing %s: %v", listingID, err)
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	event := map[string]interface{}{
		"listing_id":  listingID,
		"reviewer_id": reviewerID,
		"rating":      rating,
	}
	if err := s.msgPublisher.Publish(ctx, natsSubjectReviewCreated, event); err != nil {
		s.log.Warnf("Failed to publish review created event for listing %s: %v", listingID, err)
	}

	return review, nil
}

// SetReviewHidden toggles a review's hidden flag. Only the review's author
// or the listing's seller may do so.
func (s *reviewService) SetReviewHidden(ctx context.Context, listingID string, reviewIndex int, callerID string, hidden bool) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ListingNotFoundError{PhoneID: listingID}
		}
		return fmt.Errorf("failed to resolve listing %s: %w", listingID, err)
	}

	if reviewIndex < 0 || reviewIndex >= len(listing.Reviews) {
		return repository.ErrNotFound
	}
	review := listing.Reviews[reviewIndex]
	if callerID != review.ReviewerID && callerID != listing.SellerID {
		s.log.Warnf("User %s attempted to change visibility of review %d on listing %s", callerID, reviewIndex, listingID)
		return ErrForbidden
	}

	if err := s.listingRepo.SetReviewHidden(ctx, listingID, reviewIndex, hidden); err != nil {
		s.log.Errorf("Failed to set hidden flag on review %d of listing %s: %v", reviewIndex, listingID, err)
		return fmt.Errorf("failed to update review visibility: %w", err)
	}
	return nil
}
