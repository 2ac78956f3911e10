package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

type WishlistStore struct {
	coll *mongo.Collection
}

func NewWishlistStore(db *mongo.Database) *WishlistStore {
	return &WishlistStore{coll: db.Collection("wishlist")}
}

// Insert adds the item unless the (email, productId) pair already exists.
// The existence check gives the friendly path; the unique compound index
// closes the race between two concurrent inserts of the same pair.
func (s *WishlistStore) Insert(ctx context.Context, item *models.WishlistItem) error {
	filter := bson.M{"email": item.Email, "productId": item.ProductID}
	err := s.coll.FindOne(ctx, filter).Err()
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *WishlistStore) ListByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *WishlistStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
