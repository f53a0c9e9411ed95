package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

// MongoOrderRepository stores one document per order
type MongoOrderRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo connects to uri and verifies the server is reachable
func ConnectMongo(ctx context.Context, uri, database, collection string) (*MongoOrderRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return NewMongoOrderRepository(client, client.Database(database).Collection(collection)), nil
}

// NewMongoOrderRepository wraps an existing collection
func NewMongoOrderRepository(client *mongo.Client, coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{client: client, coll: coll}
}

// EnsureIndexes creates the index backing ListByUser
func (r *MongoOrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "orderDate", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create orders index: %w", err)
	}
	return nil
}

// Insert appends order to the collection and assigns its ID
func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if order == nil {
		return ErrNilOrder
	}

	order.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		order.ID = ""
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders, newest order date first
func (r *MongoOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// Close disconnects the underlying client
func (r *MongoOrderRepository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
