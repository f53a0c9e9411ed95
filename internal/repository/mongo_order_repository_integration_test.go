package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

// TestMongoOrderRepository runs against a real server when MONGODB_TEST_URI is set
func TestMongoOrderRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mongodb test in short mode")
	}

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("skipping test: MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := fmt.Sprintf("orders_test_%d", time.Now().UnixNano())
	repo, err := ConnectMongo(ctx, uri, "tshirt_designer_test", collection)
	if err != nil {
		t.Fatalf("ConnectMongo() error = %v", err)
	}
	defer func() {
		_ = repo.coll.Drop(context.Background())
		_ = repo.Close(context.Background())
	}()

	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes() error = %v", err)
	}

	base := time.Now().UTC().Truncate(time.Millisecond)
	older := &models.Order{
		UserID:    "u1",
		OrderDate: base,
		Status:    models.StatusPending,
		OrderItems: []models.OrderItem{
			{ProductType: models.ProductShirt, Sizes: models.SizeQuantities{"m": 2}},
		},
		LegacyItemFields: models.LegacyItemFields{ProductType: models.ProductShirt, Color: "white"},
	}
	newer := &models.Order{UserID: "u1", OrderDate: base.Add(time.Minute), Status: models.StatusPending}
	other := &models.Order{UserID: "u2", OrderDate: base}

	for _, o := range []*models.Order{older, newer, other} {
		if err := repo.Insert(ctx, o); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByUser() returned %d orders, want 2", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("orders not sorted newest first: %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].Color != "white" || got[1].OrderItems[0].Sizes["m"] != 2 {
		t.Errorf("order fields not round-tripped: %+v", got[1])
	}
}
