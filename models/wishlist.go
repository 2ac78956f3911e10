package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem is a (email, productId) pair; the store enforces uniqueness
// per pair with a compound index.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Coupon struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code            string             `bson:"code" json:"code"`
	DiscountPercent float64            `bson:"discountPercent" json:"discountPercent"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
