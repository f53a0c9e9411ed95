package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

var (
	ErrMissingUserID = errors.New("user id is required")
)

// MockOrderPrefix starts the ID of every order accepted while the order
// store is unavailable. Such orders are never persisted.
const MockOrderPrefix = "mock-order-"

// ValidationError lists every problem found in an order request
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "invalid order: " + strings.Join(e.Details, "; ")
}

// OrderRepository interface for order persistence
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// OrderValidator interface for order request validation
type OrderValidator interface {
	ValidateOrder(req models.CreateOrderRequest) []string
}

// OrderService handles order business logic
type OrderService struct {
	repo      OrderRepository
	validator OrderValidator
	basePrice decimal.Decimal
	log       *slog.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service. A nil repo means the order
// store is unavailable: orders are accepted but not persisted.
func NewOrderService(repo OrderRepository, validator OrderValidator, basePrice float64, log *slog.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		validator: validator,
		basePrice: decimal.NewFromFloat(basePrice),
		log:       log,
		now:       time.Now,
	}
}

// StoreAvailable reports whether orders are persisted
func (s *OrderService) StoreAvailable() bool {
	return s.repo != nil
}

// CreateOrder validates, totals and stores a new pending order
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if problems := s.validator.ValidateOrder(req); len(problems) > 0 {
		return nil, &ValidationError{Details: problems}
	}

	items := make([]models.OrderItem, len(req.OrderItems))
	totalQuantity := 0
	for i, item := range req.OrderItems {
		items[i] = normalizeItem(item)
		totalQuantity += items[i].ItemQuantity()
	}

	totalPrice := s.basePrice.Mul(decimal.NewFromInt(int64(totalQuantity))).Round(2)
	now := s.now().UTC()

	order := &models.Order{
		UserID:           strings.TrimSpace(req.UserID),
		PayerDetails:     req.PayerDetails,
		OrderItems:       items,
		TotalQuantity:    totalQuantity,
		TotalPrice:       totalPrice.InexactFloat64(),
		BasePrice:        s.basePrice.InexactFloat64(),
		Status:           models.StatusPending,
		OrderDate:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
		LegacyItemFields: models.LegacyFieldsFrom(items[0]),
	}

	if s.repo == nil {
		order.ID = MockOrderPrefix + uuid.New().String()
		s.log.Warn("order store unavailable, order not persisted",
			"order_id", order.ID,
			"user_id", order.UserID,
		)
		return order, nil
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	return order, nil
}

// GetOrdersForUser returns the user's orders, newest first
func (s *OrderService) GetOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingUserID
	}

	if s.repo == nil {
		s.log.Warn("order store unavailable, returning no orders", "user_id", userID)
		return []models.Order{}, nil
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// normalizeItem fills defaults and keeps only the quantity source that
// matches the product type.
func normalizeItem(item models.OrderItem) models.OrderItem {
	item.ProductType = strings.ToLower(strings.TrimSpace(item.ProductType))
	item.FrontTextPosition = normalizeTextPosition(item.FrontTextPosition)
	item.BackTextPosition = normalizeTextPosition(item.BackTextPosition)

	if models.UsesFlatQuantity(item.ProductType) {
		item.Sizes = nil
	} else {
		item.Quantity = 0
	}
	return item
}

func normalizeTextPosition(pos string) string {
	switch p := strings.ToLower(strings.TrimSpace(pos)); p {
	case models.TextPositionAbove, models.TextPositionBelow:
		return p
	default:
		return models.TextPositionNone
	}
}
