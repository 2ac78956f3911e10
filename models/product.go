package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	CategoryName  string             `bson:"category_name" json:"category_name"`
	SubCategory   string             `bson:"sub_category,omitempty" json:"sub_category,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Save          float64            `bson:"save,omitempty" json:"save,omitempty"`
	Bundle        string             `bson:"bundle,omitempty" json:"bundle,omitempty"`
	Quantity      string             `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Stock         int                `bson:"stock" json:"stock"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductUpdate is a partial overwrite: nil fields are left as stored. The
// image is only written when a new one was uploaded.
type ProductUpdate struct {
	Name          *string  `json:"name,omitempty"`
	CategoryName  *string  `json:"category_name,omitempty"`
	SubCategory   *string  `json:"sub_category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Save          *float64 `json:"save,omitempty"`
	Bundle        *string  `json:"bundle,omitempty"`
	Quantity      *string  `json:"quantity,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	Description   *string  `json:"description,omitempty"`
}

// ProductSuggestion is the trimmed projection served by autocomplete.
type ProductSuggestion struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
	Price    float64            `bson:"price" json:"price"`
}

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
