package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusCreated         OrderStatus = "created"
	OrderStatusAssigned        OrderStatus = "assigned"
	OrderStatusPickedUp        OrderStatus = "picked_up"
	OrderStatusInTransit       OrderStatus = "in_transit"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusReturnRequested OrderStatus = "return_requested"
	OrderStatusReturnResolved  OrderStatus = "return_resolved"
)

// transitionSources maps each reachable status to the statuses an order may
// move from. An order's progress lives in this one field; every mutation is
// a guarded move against this table.
var transitionSources = map[OrderStatus][]OrderStatus{
	OrderStatusAssigned:        {OrderStatusCreated},
	OrderStatusPickedUp:        {OrderStatusAssigned},
	OrderStatusInTransit:       {OrderStatusPickedUp},
	OrderStatusDelivered:       {OrderStatusPickedUp, OrderStatusInTransit},
	OrderStatusCancelled:       {OrderStatusCreated, OrderStatusAssigned, OrderStatusPickedUp, OrderStatusInTransit},
	OrderStatusReturnRequested: {OrderStatusDelivered},
	OrderStatusReturnResolved:  {OrderStatusReturnRequested},
}

// TransitionSources returns the statuses from which target is reachable.
// The slice is empty for unreachable targets such as OrderStatusCreated.
func TransitionSources(target OrderStatus) []OrderStatus {
	return transitionSources[target]
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, from := range transitionSources[target] {
		if from == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturnResolved
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch s := OrderStatus(raw); s {
	case OrderStatusCreated, OrderStatusAssigned, OrderStatusPickedUp,
		OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusReturnRequested, OrderStatusReturnResolved:
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// DeliveredStatuses are the statuses in which the drop-off has happened,
// used by the completed-deliveries query.
func DeliveredStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusDelivered, OrderStatusReturnRequested, OrderStatusReturnResolved}
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string             `bson:"email" json:"email"`
	Items              []OrderItem        `bson:"items" json:"items"`
	TotalPrice         float64            `bson:"totalPrice" json:"totalPrice"`
	Status             OrderStatus        `bson:"status" json:"status"`
	Paid               bool               `bson:"paid" json:"paid"`
	DeliveryManEmail   string             `bson:"deliveryManEmail,omitempty" json:"deliveryManEmail,omitempty"`
	DeliveryManName    string             `bson:"deliveryManName,omitempty" json:"deliveryManName,omitempty"`
	DeliveryAssignTime *time.Time         `bson:"deliveryAssignTime,omitempty" json:"deliveryAssignTime,omitempty"`
	DeliveryTime       *time.Time         `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
	ReturnReason       string             `bson:"returnReason,omitempty" json:"returnReason,omitempty"`
	ReturnProductPhoto string             `bson:"returnProductPhoto,omitempty" json:"returnProductPhoto,omitempty"`
	ReturnAccepted     *bool              `bson:"acceptReturnRequest,omitempty" json:"acceptReturnRequest,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Assignment names the delivery agent an admin attached to an order.
type Assignment struct {
	Email string `json:"deliveryManEmail"`
	Name  string `json:"deliveryManName"`
}
