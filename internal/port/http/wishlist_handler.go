package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http/middleware"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
	log             logger.Logger
}

func NewWishlistHandler(wishlistService service.WishlistService, log logger.Logger) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, log: log}
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	listings, err := h.wishlistService.List(r.Context(), userID)
	if err != nil {
		h.log.Errorf("Failed to list wishlist for user %s: %v", userID, err)
		writeServiceError(w, err)
		return
	}

	dtos := make([]listingDTO, len(listings))
	for i, listing := range listings {
		dtos[i] = listingFromEntity(listing, userID)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"listings": dtos})
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	phoneID := chi.URLParam(r, "phoneId")

	if err := h.wishlistService.Add(r.Context(), userID, phoneID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	phoneID := chi.URLParam(r, "phoneId")

	if err := h.wishlistService.Remove(r.Context(), userID, phoneID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
