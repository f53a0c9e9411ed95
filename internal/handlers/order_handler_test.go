package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
	"github.com/Lixing-Zhang/tshirt-designer/internal/repository"
	"github.com/Lixing-Zhang/tshirt-designer/internal/service"
	"github.com/Lixing-Zhang/tshirt-designer/internal/validation"
	"github.com/Lixing-Zhang/tshirt-designer/pkg/logger"
)

const validOrderJSON = `{
	"userId": "user-42",
	"payerDetails": {"name": "Noa", "email": "noa@example.com", "phone": "052-0000000", "city": "Haifa"},
	"orderItems": [
		{"productType": "shirt", "designId": "d-1", "color": "white", "printColor": "black", "sizes": {"s": "2", "l": 1}},
		{"productType": "hat", "designImage": "data:image/png;base64,AA==", "color": "black", "printColor": "white", "quantity": "3"}
	]
}`

type orderBody struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Details []string       `json:"details"`
	OrderID string         `json:"orderId"`
	Order   *models.Order  `json:"order"`
	Orders  []models.Order `json:"orders"`
}

func newOrderHandler(repo service.OrderRepository) *OrderHandler {
	log := logger.New("error")
	svc := service.NewOrderService(repo, validation.NewValidator(), 89.99, log)
	return NewOrderHandler(svc, true, log)
}

func decodeOrderBody(t *testing.T, w *httptest.ResponseRecorder) orderBody {
	t.Helper()
	var body orderBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	handler := newOrderHandler(repository.NewInMemoryOrderRepository())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		check          func(*testing.T, orderBody)
	}{
		{
			name:           "successful order",
			body:           validOrderJSON,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, b orderBody) {
				if !b.Success || b.OrderID == "" || b.Order == nil {
					t.Fatalf("unexpected body %+v", b)
				}
				if b.Order.ID != b.OrderID {
					t.Errorf("order.id = %q, orderId = %q", b.Order.ID, b.OrderID)
				}
				if b.Order.TotalQuantity != 6 {
					t.Errorf("totalQuantity = %d, want 6", b.Order.TotalQuantity)
				}
				if b.Order.TotalPrice != 539.94 {
					t.Errorf("totalPrice = %v, want 539.94", b.Order.TotalPrice)
				}
				if b.Order.Status != models.StatusPending {
					t.Errorf("status = %q, want pending", b.Order.Status)
				}
			},
		},
		{
			name:           "validation failure lists every problem",
			body:           `{"userId":"","payerDetails":{"name":"Noa","email":"noa@example.com","phone":"1"},"orderItems":[{"productType":"accessory","designId":"d","color":"c","printColor":"p","quantity":0}]}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, b orderBody) {
				if b.Success || b.Error != "Invalid order data" {
					t.Errorf("unexpected body %+v", b)
				}
				want := []string{"userId is required", "Item 1: quantity must be greater than 0 for accessory items"}
				if strings.Join(b.Details, "|") != strings.Join(want, "|") {
					t.Errorf("details = %v, want %v", b.Details, want)
				}
			},
		},
		{
			name:           "empty items",
			body:           `{"userId":"u","payerDetails":{"name":"a","email":"b","phone":"c"},"orderItems":[]}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, b orderBody) {
				if len(b.Details) != 1 || b.Details[0] != "orderItems must contain at least one item" {
					t.Errorf("details = %v", b.Details)
				}
			},
		},
		{
			name:           "invalid JSON",
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			handler.CreateOrder(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if tt.check != nil {
				tt.check(t, decodeOrderBody(t, w))
			}
		})
	}
}

func TestOrderHandler_StoreUnavailable(t *testing.T) {
	handler := newOrderHandler(nil)

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder)
	r.Get("/api/orders/{userId}", handler.ListOrders)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	created := decodeOrderBody(t, w)
	if !strings.HasPrefix(created.OrderID, service.MockOrderPrefix) {
		t.Errorf("orderId = %q, want mock prefix", created.OrderID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/user-42", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	listed := decodeOrderBody(t, w)
	if w.Code != http.StatusOK || !listed.Success {
		t.Fatalf("status = %d, body %+v", w.Code, listed)
	}
	if listed.Orders == nil || len(listed.Orders) != 0 {
		t.Errorf("orders = %v, want empty list", listed.Orders)
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	handler := newOrderHandler(repository.NewInMemoryOrderRepository())

	r := chi.NewRouter()
	r.Post("/api/orders", handler.CreateOrder)
	r.Get("/api/orders/{userId}", handler.ListOrders)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderJSON))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d", w.Code)
		}
	}

	testCases := []struct {
		userID    string
		wantCount int
	}{
		{"user-42", 2},
		{"someone-else", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.userID, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.userID, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := decodeOrderBody(t, w)
			if len(body.Orders) != tc.wantCount {
				t.Errorf("got %d orders, want %d", len(body.Orders), tc.wantCount)
			}
		})
	}
}

func TestOrderHandler_ListOrders_MissingUser(t *testing.T) {
	handler := newOrderHandler(repository.NewInMemoryOrderRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", "  ")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.ListOrders(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeOrderBody(t, w); body.Error != "userId is required" {
		t.Errorf("error = %q", body.Error)
	}
}
