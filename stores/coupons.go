package stores

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

type CouponStore struct {
	coll *mongo.Collection
}

func NewCouponStore(db *mongo.Database) *CouponStore {
	return &CouponStore{coll: db.Collection("coupons")}
}

func (s *CouponStore) Insert(ctx context.Context, coupon *models.Coupon) error {
	coupon.ID = primitive.NewObjectID()
	coupon.CreatedAt = time.Now()
	_, err := s.coll.InsertOne(ctx, coupon)
	return err
}

func (s *CouponStore) List(ctx context.Context) ([]models.Coupon, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coupons := []models.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

func (s *CouponStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
