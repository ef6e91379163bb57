package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http/middleware"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type ListingHandler struct {
	listingRepo   repository.ListingRepository
	reviewService service.ReviewService
	log           logger.Logger
}

func NewListingHandler(
	listingRepo repository.ListingRepository,
	reviewService service.ReviewService,
	log logger.Logger,
) *ListingHandler {
	return &ListingHandler{
		listingRepo:   listingRepo,
		reviewService: reviewService,
		log:           log,
	}
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.UserIDFromContext(r.Context())
	listingID := chi.URLParam(r, "id")

	listing, err := h.listingRepo.GetByID(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Phone not found: "+listingID)
			return
		}
		h.log.Errorf("Failed to get listing %s: %v", listingID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if listing.Disabled && viewerID != listing.SellerID {
		writeError(w, http.StatusNotFound, "Phone not found: "+listingID)
		return
	}

	writeJSON(w, http.StatusOK, listingFromEntity(listing, viewerID))
}

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ListingHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	listingID := chi.URLParam(r, "id")

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.SubmitReview(r.Context(), listingID, userID, req.Comment, req.Rating)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reviewDTO{
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Hidden:     review.Hidden,
		CreatedAt:  review.CreatedAt,
	})
}

type setReviewHiddenRequest struct {
	Hidden bool `json:"hidden"`
}

func (h *ListingHandler) SetReviewHidden(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	listingID := chi.URLParam(r, "id")
	reviewIndex, err := strconv.Atoi(chi.URLParam(r, "reviewIndex"))
	if err != nil || reviewIndex < 0 {
		writeError(w, http.StatusBadRequest, "Invalid review index")
		return
	}

	var req setReviewHiddenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.reviewService.SetReviewHidden(r.Context(), listingID, reviewIndex, userID, req.Hidden); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
