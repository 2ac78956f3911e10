// Package handlers wires HTTP requests to the stores. Every handler is a
// method on Handler, which receives its collaborators at startup instead
// of reaching for globals.
package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	List(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) error
	SetVerified(ctx context.Context, id primitive.ObjectID, verified bool) error
	SetWorkPermit(ctx context.Context, id primitive.ObjectID, status models.WorkPermitStatus) error
	SetAvailability(ctx context.Context, email string, available bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CatalogStore interface {
	InsertProduct(ctx context.Context, p *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	PageProducts(ctx context.Context, page, size int64) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) error
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	AutocompleteProducts(ctx context.Context, query string) ([]models.ProductSuggestion, error)
	InsertCategory(ctx context.Context, cat *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	ListByBuyer(ctx context.Context, email string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	ListAssigned(ctx context.Context, agentEmail string) ([]models.Order, error)
	ListDelivered(ctx context.Context, agentEmail string) ([]models.Order, error)
	Assign(ctx context.Context, id primitive.ObjectID, agent models.Assignment, at time.Time) error
	MarkPicked(ctx context.Context, id primitive.ObjectID) error
	SetStatus(ctx context.Context, id primitive.ObjectID, target models.OrderStatus) error
	MarkDelivered(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Cancel(ctx context.Context, id primitive.ObjectID) error
	RequestReturn(ctx context.Context, id primitive.ObjectID, reason, photo string) error
	ResolveReturn(ctx context.Context, id primitive.ObjectID, accepted bool) error
}

type WishlistStore interface {
	Insert(ctx context.Context, item *models.WishlistItem) error
	ListByEmail(ctx context.Context, email string) ([]models.WishlistItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) error
	List(ctx context.Context) ([]models.Review, error)
}

type CouponStore interface {
	Insert(ctx context.Context, coupon *models.Coupon) error
	List(ctx context.Context) ([]models.Coupon, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}

type Handler struct {
	Users     UserStore
	Catalog   CatalogStore
	Orders    OrderStore
	Wishlist  WishlistStore
	Reviews   ReviewStore
	Coupons   CouponStore
	Payments  PaymentProvider
	JWTSecret string
	Log       zerolog.Logger
}
