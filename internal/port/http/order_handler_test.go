package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http/middleware"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type stubCheckoutService struct {
	order *entity.Order
	err   error
}

func (s *stubCheckoutService) Checkout(ctx context.Context, userID string, address entity.Address) (*entity.Order, error) {
	return s.order, s.err
}

type stubOrderService struct {
	order  *entity.Order
	result *repository.ListOrdersResult
	err    error
}

func (s *stubOrderService) GetOrderByID(ctx context.Context, orderID, userID string) (*entity.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) ListUserOrders(ctx context.Context, userID string, params repository.ListOrdersParams) (*repository.ListOrdersResult, error) {
	return s.result, s.err
}

type stubReceiptService struct {
	content  []byte
	fileName string
	err      error
}

func (s *stubReceiptService) GenerateOrderReceipt(ctx context.Context, orderID, userID string) ([]byte, string, error) {
	return s.content, s.fileName, s.err
}

func authedRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), middleware.UserIDCtxKey, "user-1")
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:     "order-1",
		UserID: "user-1",
		Items: []entity.OrderItem{
			{PhoneID: "phone-1", Title: "iPhone 6", Quantity: 2, Price: 120.50},
		},
		TotalAmount: 241.00,
		Address: entity.Address{
			Street: "1 Example St", City: "Sydney", State: "NSW", Zip: "2000", Country: "Australia",
		},
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestOrderHandler_CreateOrder_Success(t *testing.T) {
	h := NewOrderHandler(&stubCheckoutService{order: sampleOrder()}, &stubOrderService{}, &stubReceiptService{}, noOpLogger())

	body := `{"address":{"street":"1 Example St","city":"Sydney","state":"NSW","zip":"2000","country":"Australia"}}`
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	var dto orderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, "order-1", dto.ID)
	assert.Equal(t, 241.00, dto.TotalAmount)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, "phone-1", dto.Items[0].PhoneID)
}

func TestOrderHandler_CreateOrder_NoAuthContext(t *testing.T) {
	h := NewOrderHandler(&stubCheckoutService{}, &stubOrderService{}, &stubReceiptService{}, noOpLogger())

	rec := httptest.NewRecorder()
	h.CreateOrder(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{}")))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_CreateOrder_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"empty cart", service.ErrEmptyCart, http.StatusBadRequest, "Cart is empty"},
		{"invalid address", service.ErrInvalidAddress, http.StatusBadRequest, "Address is required"},
		{"listing missing", &service.ListingNotFoundError{PhoneID: "phone-9"}, http.StatusNotFound, "Phone not found: phone-9"},
		{"insufficient stock", &service.InsufficientStockError{PhoneID: "phone-9"}, http.StatusConflict, "Insufficient stock for phone phone-9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewOrderHandler(&stubCheckoutService{err: tc.err}, &stubOrderService{}, &stubReceiptService{}, noOpLogger())

			body := `{"address":{"street":"1 Example St","city":"Sydney","state":"NSW","zip":"2000","country":"Australia"}}`
			rec := httptest.NewRecorder()
			h.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body))

			assert.Equal(t, tc.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tc.wantMsg, env.Message)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	order := sampleOrder()
	h := NewOrderHandler(&stubCheckoutService{}, &stubOrderService{result: &repository.ListOrdersResult{
		Orders:      []entity.Order{*order},
		TotalCount:  1,
		CurrentPage: 1,
		PageSize:    10,
		TotalPages:  1,
	}}, &stubReceiptService{}, noOpLogger())

	rec := httptest.NewRecorder()
	h.ListOrders(rec, authedRequest(http.MethodGet, "/api/orders?page=1&limit=10", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp listOrdersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "order-1", resp.Orders[0].ID)
}

func TestOrderHandler_GetOrder_Forbidden(t *testing.T) {
	h := NewOrderHandler(&stubCheckoutService{}, &stubOrderService{err: service.ErrForbidden}, &stubReceiptService{}, noOpLogger())

	req := authedRequest(http.MethodGet, "/api/orders/order-1", "")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", "order-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.GetOrder(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", decodeEnvelope(t, rec).Message)
}

func TestOrderHandler_GetOrderReceipt(t *testing.T) {
	h := NewOrderHandler(&stubCheckoutService{}, &stubOrderService{}, &stubReceiptService{
		content:  []byte("Order ID: order-1\nTotal: 241.00\n"),
		fileName: "receipt_order-1.txt",
	}, noOpLogger())

	req := authedRequest(http.MethodGet, "/api/orders/order-1/receipt", "")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", "order-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.GetOrderReceipt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "receipt_order-1.txt")
	assert.Contains(t, rec.Body.String(), "Total: 241.00")
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=3&limit=abc&bad=-1", nil)

	assert.Equal(t, 3, queryInt(req, "page", 1))
	assert.Equal(t, 10, queryInt(req, "limit", 10))
	assert.Equal(t, 5, queryInt(req, "bad", 5))
	assert.Equal(t, 1, queryInt(req, "missing", 1))
}
