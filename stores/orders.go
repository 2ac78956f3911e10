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

type OrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{coll: db.Collection("order")}
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.Status = models.OrderStatusCreated
	order.Paid = false
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	_, err := s.coll.InsertOne(ctx, order)
	return err
}

func (s *OrderStore) ListByBuyer(ctx context.Context, email string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.list(ctx, bson.M{"email": email}, opts)
}

func (s *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.list(ctx, bson.M{}, opts)
}

// ListAssigned returns every order carrying the agent's email, most recent
// assignment first.
func (s *OrderStore) ListAssigned(ctx context.Context, agentEmail string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "deliveryAssignTime", Value: -1}})
	return s.list(ctx, bson.M{"deliveryManEmail": agentEmail}, opts)
}

// ListDelivered returns the agent's completed drop-offs, including orders
// that moved on into the return flow.
func (s *OrderStore) ListDelivered(ctx context.Context, agentEmail string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "deliveryTime", Value: -1}})
	filter := bson.M{
		"deliveryManEmail": agentEmail,
		"status":           bson.M{"$in": models.DeliveredStatuses()},
	}
	return s.list(ctx, filter, opts)
}

func (s *OrderStore) Assign(ctx context.Context, id primitive.ObjectID, agent models.Assignment, at time.Time) error {
	return s.transition(ctx, id, models.OrderStatusAssigned, bson.M{
		"deliveryManEmail":   agent.Email,
		"deliveryManName":    agent.Name,
		"deliveryAssignTime": at,
	})
}

func (s *OrderStore) MarkPicked(ctx context.Context, id primitive.ObjectID) error {
	return s.transition(ctx, id, models.OrderStatusPickedUp, nil)
}

// SetStatus applies a generic status move; the target must be reachable
// from the order's current status or the call fails with ErrStateConflict.
func (s *OrderStore) SetStatus(ctx context.Context, id primitive.ObjectID, target models.OrderStatus) error {
	return s.transition(ctx, id, target, nil)
}

// MarkDelivered completes the drop-off. Status, paid flag and delivery
// timestamp land in one update, so no observer sees a half-finished order.
func (s *OrderStore) MarkDelivered(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return s.transition(ctx, id, models.OrderStatusDelivered, bson.M{
		"paid":         true,
		"deliveryTime": at,
	})
}

func (s *OrderStore) Cancel(ctx context.Context, id primitive.ObjectID) error {
	return s.transition(ctx, id, models.OrderStatusCancelled, nil)
}

func (s *OrderStore) RequestReturn(ctx context.Context, id primitive.ObjectID, reason, photo string) error {
	return s.transition(ctx, id, models.OrderStatusReturnRequested, bson.M{
		"returnReason":       reason,
		"returnProductPhoto": photo,
	})
}

func (s *OrderStore) ResolveReturn(ctx context.Context, id primitive.ObjectID, accepted bool) error {
	return s.transition(ctx, id, models.OrderStatusReturnResolved, bson.M{
		"acceptReturnRequest": accepted,
	})
}

// transition is a compare-and-set on the status field: the update matches
// only when the current status is a valid source for target, making each
// lifecycle move atomic under concurrent writers. A miss is disambiguated
// with a follow-up lookup: absent order vs. incompatible state.
func (s *OrderStore) transition(ctx context.Context, id primitive.ObjectID, target models.OrderStatus, extra bson.M) error {
	sources := models.TransitionSources(target)
	if len(sources) == 0 {
		return ErrStateConflict
	}

	set := bson.M{"status": target, "updatedAt": time.Now()}
	for k, v := range extra {
		set[k] = v
	}

	filter := bson.M{"_id": id, "status": bson.M{"$in": sources}}
	err := s.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if cerr := s.coll.FindOne(ctx, bson.M{"_id": id}).Err(); errors.Is(cerr, mongo.ErrNoDocuments) {
		return ErrNotFound
	} else if cerr != nil {
		return cerr
	}
	return ErrStateConflict
}

func (s *OrderStore) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Order, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
