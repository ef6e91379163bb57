package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http/middleware"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type OrderHandler struct {
	checkoutService service.CheckoutService
	orderService    service.OrderService
	receiptService  service.ReceiptService
	log             logger.Logger
}

func NewOrderHandler(
	checkoutService service.CheckoutService,
	orderService service.OrderService,
	receiptService service.ReceiptService,
	log logger.Logger,
) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
		receiptService:  receiptService,
		log:             log,
	}
}

type createOrderRequest struct {
	Address addressDTO `json:"address"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.checkoutService.Checkout(r.Context(), userID, req.Address.toEntity())
	if err != nil {
		h.log.Warnf("Checkout failed for user %s: %v", userID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, orderFromEntity(order))
}

type listOrdersResponse struct {
	Orders      []orderDTO `json:"orders"`
	Total       int64      `json:"total"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	params := repository.ListOrdersParams{
		Page:      queryInt(r, "page", 1),
		PageSize:  queryInt(r, "limit", 10),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	result, err := h.orderService.ListUserOrders(r.Context(), userID, params)
	if err != nil {
		h.log.Errorf("Failed to list orders for user %s: %v", userID, err)
		writeServiceError(w, err)
		return
	}

	orders := make([]orderDTO, len(result.Orders))
	for i := range result.Orders {
		orders[i] = orderFromEntity(&result.Orders[i])
	}
	writeJSON(w, http.StatusOK, listOrdersResponse{
		Orders:      orders,
		Total:       result.TotalCount,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrderByID(r.Context(), orderID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderFromEntity(order))
}

func (h *OrderHandler) GetOrderReceipt(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	orderID := chi.URLParam(r, "orderId")

	content, fileName, err := h.receiptService.GenerateOrderReceipt(r.Context(), orderID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
