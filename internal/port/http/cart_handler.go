package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http/middleware"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type CartHandler struct {
	cartService service.CartService
	log         logger.Logger
}

func NewCartHandler(cartService service.CartService, log logger.Logger) *CartHandler {
	return &CartHandler{cartService: cartService, log: log}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		h.log.Errorf("Failed to get cart for user %s: %v", userID, err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartFromEntity(cart))
}

type setCartLineRequest struct {
	PhoneID  string `json:"phoneId"`
	Quantity int    `json:"quantity"`
}

func (h *CartHandler) SetLine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req setCartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PhoneID == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddOrSetLine(r.Context(), userID, req.PhoneID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartFromEntity(cart))
}

type updateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	phoneID := chi.URLParam(r, "phoneId")

	var req updateCartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateLineQuantity(r.Context(), userID, phoneID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartFromEntity(cart))
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	phoneID := chi.URLParam(r, "phoneId")

	cart, err := h.cartService.RemoveLine(r.Context(), userID, phoneID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartFromEntity(cart))
}
