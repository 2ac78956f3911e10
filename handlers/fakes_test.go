package handlers

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
)

// In-memory fakes mirroring the store contracts, including the sentinel
// errors and the guarded order transitions.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return stores.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.Email] = &clone
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, stores.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (f *fakeUserStore) List(_ context.Context, role models.Role) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		if role == "" || u.Role == role {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, email string, upd models.ProfileUpdate) error {
	u, ok := f.users[email]
	if !ok {
		return stores.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Image != nil {
		u.Image = *upd.Image
	}
	if upd.Contact != nil {
		u.Contact = *upd.Contact
	}
	return nil
}

func (f *fakeUserStore) SetVerified(_ context.Context, id primitive.ObjectID, verified bool) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Verified = verified
			return nil
		}
	}
	return stores.ErrNotFound
}

func (f *fakeUserStore) SetWorkPermit(_ context.Context, id primitive.ObjectID, status models.WorkPermitStatus) error {
	for _, u := range f.users {
		if u.ID == id {
			u.WorkPermitStatus = status
			return nil
		}
	}
	return stores.ErrNotFound
}

func (f *fakeUserStore) SetAvailability(_ context.Context, email string, available bool) error {
	u, ok := f.users[email]
	if !ok {
		return stores.ErrNotFound
	}
	u.AvailabilityStatus = available
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return stores.ErrNotFound
}

type fakeOrderStore struct {
	orders map[primitive.ObjectID]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[primitive.ObjectID]*models.Order{}}
}

func (f *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.Status = models.OrderStatusCreated
	order.Paid = false
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	clone := *order
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderStore) ListByBuyer(_ context.Context, email string) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range f.orders {
		if o.Email == email {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (f *fakeOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (f *fakeOrderStore) ListAssigned(_ context.Context, agentEmail string) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range f.orders {
		if o.DeliveryManEmail == agentEmail {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (f *fakeOrderStore) ListDelivered(_ context.Context, agentEmail string) ([]models.Order, error) {
	orders := []models.Order{}
	for _, o := range f.orders {
		if o.DeliveryManEmail != agentEmail {
			continue
		}
		for _, s := range models.DeliveredStatuses() {
			if o.Status == s {
				orders = append(orders, *o)
				break
			}
		}
	}
	return orders, nil
}

func (f *fakeOrderStore) transition(id primitive.ObjectID, target models.OrderStatus, mutate func(*models.Order)) error {
	o, ok := f.orders[id]
	if !ok {
		return stores.ErrNotFound
	}
	if !o.Status.CanTransitionTo(target) {
		return stores.ErrStateConflict
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	if mutate != nil {
		mutate(o)
	}
	return nil
}

func (f *fakeOrderStore) Assign(_ context.Context, id primitive.ObjectID, agent models.Assignment, at time.Time) error {
	return f.transition(id, models.OrderStatusAssigned, func(o *models.Order) {
		o.DeliveryManEmail = agent.Email
		o.DeliveryManName = agent.Name
		o.DeliveryAssignTime = &at
	})
}

func (f *fakeOrderStore) MarkPicked(_ context.Context, id primitive.ObjectID) error {
	return f.transition(id, models.OrderStatusPickedUp, nil)
}

func (f *fakeOrderStore) SetStatus(_ context.Context, id primitive.ObjectID, target models.OrderStatus) error {
	return f.transition(id, target, nil)
}

func (f *fakeOrderStore) MarkDelivered(_ context.Context, id primitive.ObjectID, at time.Time) error {
	return f.transition(id, models.OrderStatusDelivered, func(o *models.Order) {
		o.Paid = true
		o.DeliveryTime = &at
	})
}

func (f *fakeOrderStore) Cancel(_ context.Context, id primitive.ObjectID) error {
	return f.transition(id, models.OrderStatusCancelled, nil)
}

func (f *fakeOrderStore) RequestReturn(_ context.Context, id primitive.ObjectID, reason, photo string) error {
	return f.transition(id, models.OrderStatusReturnRequested, func(o *models.Order) {
		o.ReturnReason = reason
		o.ReturnProductPhoto = photo
	})
}

func (f *fakeOrderStore) ResolveReturn(_ context.Context, id primitive.ObjectID, accepted bool) error {
	return f.transition(id, models.OrderStatusReturnResolved, func(o *models.Order) {
		o.ReturnAccepted = &accepted
	})
}

type fakeWishlistStore struct {
	items []models.WishlistItem
}

func (f *fakeWishlistStore) Insert(_ context.Context, item *models.WishlistItem) error {
	for _, existing := range f.items {
		if existing.Email == item.Email && existing.ProductID == item.ProductID {
			return stores.ErrDuplicate
		}
	}
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeWishlistStore) ListByEmail(_ context.Context, email string) ([]models.WishlistItem, error) {
	items := []models.WishlistItem{}
	for _, item := range f.items {
		if item.Email == email {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (f *fakeWishlistStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

// fakeCatalogStore records queries so tests can assert the short-circuit
// paths never reach the store.
type fakeCatalogStore struct {
	products      []models.Product
	searchCalls   int
	autocompCalls int
}

func (f *fakeCatalogStore) InsertProduct(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeCatalogStore) ListProducts(_ context.Context) ([]models.Product, error) {
	return append([]models.Product{}, f.products...), nil
}

func (f *fakeCatalogStore) GetProduct(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (f *fakeCatalogStore) PageProducts(_ context.Context, page, size int64) ([]models.Product, int64, error) {
	total := int64(len(f.products))
	start := page * size
	if start >= total {
		return []models.Product{}, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return append([]models.Product{}, f.products[start:end]...), total, nil
}

func (f *fakeCatalogStore) UpdateProduct(_ context.Context, id primitive.ObjectID, upd models.ProductUpdate) error {
	for i := range f.products {
		if f.products[i].ID == id {
			if upd.Name != nil {
				f.products[i].Name = *upd.Name
			}
			if upd.Price != nil {
				f.products[i].Price = *upd.Price
			}
			if upd.ImageURL != nil {
				f.products[i].ImageURL = *upd.ImageURL
			}
			return nil
		}
	}
	return stores.ErrNotFound
}

func (f *fakeCatalogStore) DeleteProduct(_ context.Context, id primitive.ObjectID) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

func (f *fakeCatalogStore) SearchProducts(_ context.Context, query string) ([]models.Product, error) {
	f.searchCalls++
	return []models.Product{}, nil
}

func (f *fakeCatalogStore) AutocompleteProducts(_ context.Context, query string) ([]models.ProductSuggestion, error) {
	f.autocompCalls++
	return []models.ProductSuggestion{}, nil
}

func (f *fakeCatalogStore) InsertCategory(_ context.Context, cat *models.Category) error {
	cat.ID = primitive.NewObjectID()
	cat.CreatedAt = time.Now()
	return nil
}

func (f *fakeCatalogStore) ListCategories(_ context.Context) ([]models.Category, error) {
	return []models.Category{}, nil
}
