package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
	"github.com/Lixing-Zhang/tshirt-designer/internal/service"
)

// CreateOrderResponse is the body of a successful order submission
type CreateOrderResponse struct {
	Success bool          `json:"success"`
	OrderID string        `json:"orderId"`
	Order   *models.Order `json:"order"`
}

// ListOrdersResponse is the body of a user's order history
type ListOrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService  *service.OrderService
	exposeDetails bool
	log           *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, exposeDetails bool, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		exposeDetails: exposeDetails,
		log:           log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.log.Info("order rejected", "user_id", req.UserID, "problems", len(verr.Details))
			WriteErrorDetails(w, http.StatusBadRequest, "Invalid order data", verr.Details, h.log)
			return
		}

		h.log.Error("failed to create order", "user_id", req.UserID, "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to create order", errorDetail(h.exposeDetails, err), h.log)
		return
	}

	h.log.Info("order created successfully",
		"order_id", order.ID,
		"user_id", order.UserID,
		"items_count", len(order.OrderItems),
		"total_quantity", order.TotalQuantity,
	)
	WriteJSON(w, http.StatusOK, CreateOrderResponse{Success: true, OrderID: order.ID, Order: order}, h.log)
}

// ListOrders handles GET /api/orders/{userId}
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	orders, err := h.orderService.GetOrdersForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrMissingUserID) {
			WriteError(w, http.StatusBadRequest, "userId is required", h.log)
			return
		}

		h.log.Error("failed to list orders", "user_id", userID, "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to fetch orders", errorDetail(h.exposeDetails, err), h.log)
		return
	}

	WriteJSON(w, http.StatusOK, ListOrdersResponse{Success: true, Orders: orders}, h.log)
}
