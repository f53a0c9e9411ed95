package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNilOrder = errors.New("order is nil")
)

// InMemoryOrderRepository keeps orders in process memory
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// Insert stores a copy of order and assigns its ID
func (r *InMemoryOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if order == nil {
		return ErrNilOrder
	}

	order.ID = uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *order)
	return nil
}

// ListByUser returns the user's orders, newest order date first
func (r *InMemoryOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}

	slices.SortStableFunc(orders, func(a, b models.Order) int {
		return b.OrderDate.Compare(a.OrderDate)
	})
	return orders, nil
}
