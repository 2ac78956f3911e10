package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo owns the pooled client for the process. It is constructed once in
// main and handed to the stores; there is no package-level instance.
type Mongo struct {
	client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Mongo{client: client, DB: client.Database(dbName)}, nil
}

// EnsureIndexes creates the indexes the stores rely on: the natural key on
// users.email, the per-user wishlist uniqueness pair, the product text
// index backing /search, and the buyer/agent order listing sort keys.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	users := m.DB.Collection("users").Indexes()
	if _, err := users.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	wishlist := m.DB.Collection("wishlist").Indexes()
	if _, err := wishlist.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "productId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("wishlist dedup index: %w", err)
	}

	products := m.DB.Collection("products").Indexes()
	if _, err := products.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	}); err != nil {
		return fmt.Errorf("products text index: %w", err)
	}

	orders := m.DB.Collection("order").Indexes()
	if _, err := orders.CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "deliveryManEmail", Value: 1}, {Key: "deliveryAssignTime", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("order indexes: %w", err)
	}

	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
