package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

func TestInMemoryOrderRepository_InsertAndList(t *testing.T) {
	repo := NewInMemoryOrderRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	orders := []*models.Order{
		{UserID: "u1", OrderDate: base},
		{UserID: "u2", OrderDate: base.Add(time.Hour)},
		{UserID: "u1", OrderDate: base.Add(48 * time.Hour)},
		{UserID: "u1", OrderDate: base.Add(24 * time.Hour)},
	}
	for _, o := range orders {
		if err := repo.Insert(ctx, o); err != nil {
			t.Fatalf("Insert() unexpected error = %v", err)
		}
		if o.ID == "" {
			t.Error("Insert() did not assign an ID")
		}
	}

	got, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() unexpected error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListByUser() returned %d orders, want 3", len(got))
	}

	wantOrder := []string{orders[2].ID, orders[3].ID, orders[0].ID}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("order %d = %s, want %s (newest first)", i, got[i].ID, id)
		}
	}

	none, err := repo.ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByUser() unexpected error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", none)
	}
}

func TestInMemoryOrderRepository_NilOrder(t *testing.T) {
	if err := NewInMemoryOrderRepository().Insert(context.Background(), nil); err != ErrNilOrder {
		t.Errorf("Insert(nil) error = %v, want %v", err, ErrNilOrder)
	}
}

func TestInMemoryOrderRepository_ConcurrentInsert(t *testing.T) {
	repo := NewInMemoryOrderRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Insert(context.Background(), &models.Order{UserID: "u1", OrderDate: time.Now()})
		}()
	}
	wg.Wait()

	got, _ := repo.ListByUser(context.Background(), "u1")
	if len(got) != 50 {
		t.Errorf("expected 50 orders, got %d", len(got))
	}
}
