package stores

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

const autocompleteLimit = 10

type CatalogStore struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

func NewCatalogStore(db *mongo.Database) *CatalogStore {
	return &CatalogStore{
		products:   db.Collection("products"),
		categories: db.Collection("productCategory"),
	}
}

func (s *CatalogStore) InsertProduct(ctx context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	_, err := s.products.InsertOne(ctx, p)
	return err
}

func (s *CatalogStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// PageProducts returns one page plus the total count. The count and the
// page read are two separate queries, so a concurrent insert between them
// can skew the total; callers treat the count as advisory.
func (s *CatalogStore) PageProducts(ctx context.Context, page, size int64) ([]models.Product, int64, error) {
	total, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page * size).
		SetLimit(size)
	cursor, err := s.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *CatalogStore) UpdateProduct(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.CategoryName != nil {
		set["category_name"] = *upd.CategoryName
	}
	if upd.SubCategory != nil {
		set["sub_category"] = *upd.SubCategory
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.OriginalPrice != nil {
		set["original_price"] = *upd.OriginalPrice
	}
	if upd.Save != nil {
		set["save"] = *upd.Save
	}
	if upd.Bundle != nil {
		set["bundle"] = *upd.Bundle
	}
	if upd.Quantity != nil {
		set["quantity"] = *upd.Quantity
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	res, err := s.products.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogStore) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchProducts runs the text-index query over product names.
func (s *CatalogStore) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, bson.M{"$text": bson.M{"$search": query}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AutocompleteProducts matches name prefixes case-insensitively and
// projects only the fields the suggestion dropdown renders.
func (s *CatalogStore) AutocompleteProducts(ctx context.Context, query string) ([]models.ProductSuggestion, error) {
	filter := bson.M{"name": bson.M{
		"$regex": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(query), Options: "i"},
	}}
	opts := options.Find().
		SetLimit(autocompleteLimit).
		SetProjection(bson.M{"name": 1, "imageUrl": 1, "price": 1})

	cursor, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suggestions := []models.ProductSuggestion{}
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *CatalogStore) InsertCategory(ctx context.Context, cat *models.Category) error {
	cat.ID = primitive.NewObjectID()
	cat.CreatedAt = time.Now()
	_, err := s.categories.InsertOne(ctx, cat)
	return err
}

func (s *CatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
