package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/middleware"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

type orderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	ImageURL  string  `json:"imageUrl"`
}

type createOrderRequest struct {
	Email string             `json:"email" validate:"required,email"`
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder starts the lifecycle: a new order belongs to the submitting
// buyer and enters the created state, unpaid.
func (h *Handler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if req.Email != middleware.EmailFromContext(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "invalid product id in items")
		}
		items = append(items, models.OrderItem{
			ProductID: pid,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
		total += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		Email:      req.Email,
		Items:      items,
		TotalPrice: total,
	}
	if err := h.Orders.Insert(c.Request().Context(), &order); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusCreated, order)
}

func (h *Handler) GetBuyerOrders(c echo.Context) error {
	if !isOwner(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	orders, err := h.Orders.ListByBuyer(c.Request().Context(), c.Param("email"))
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *Handler) GetAllOrders(c echo.Context) error {
	orders, err := h.Orders.ListAll(c.Request().Context())
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *Handler) GetAssignedOrders(c echo.Context) error {
	if !isOwner(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	orders, err := h.Orders.ListAssigned(c.Request().Context(), c.Param("email"))
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *Handler) GetDeliveredOrders(c echo.Context) error {
	if !isOwner(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	orders, err := h.Orders.ListDelivered(c.Request().Context(), c.Param("email"))
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, orders)
}

type assignOrderRequest struct {
	DeliveryManEmail string `json:"deliveryManEmail" validate:"required,email"`
	DeliveryManName  string `json:"deliveryManName" validate:"required"`
}

// AssignOrder attaches a delivery agent to a freshly created order.
func (h *Handler) AssignOrder(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	var req assignOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	agent := models.Assignment{Email: req.DeliveryManEmail, Name: req.DeliveryManName}
	if err := h.Orders.Assign(c.Request().Context(), id, agent, time.Now()); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "delivery man assigned")
}

func (h *Handler) PickOrder(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	if err := h.Orders.MarkPicked(c.Request().Context(), id); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "order picked up")
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetOrderStatus applies a caller-chosen status, but only as a move the
// lifecycle allows from the order's current state.
func (h *Handler) SetOrderStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	target, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.Orders.SetStatus(c.Request().Context(), id, target); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "order status updated")
}

// DeliverOrder completes the drop-off: delivered status, paid flag and the
// completion timestamp land in a single atomic update.
func (h *Handler) DeliverOrder(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	if err := h.Orders.MarkDelivered(c.Request().Context(), id, time.Now()); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "order delivered")
}

func (h *Handler) CancelOrder(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	if err := h.Orders.Cancel(c.Request().Context(), id); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "order cancelled")
}

type returnRequest struct {
	Reason string `json:"returnReason" validate:"required"`
	Photo  string `json:"returnProductPhoto"`
}

// RequestReturn lets the buyer open a return on a delivered order.
func (h *Handler) RequestReturn(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	var req returnRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.Orders.RequestReturn(c.Request().Context(), id, req.Reason, req.Photo); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "return requested")
}

type resolveReturnRequest struct {
	Accept bool `json:"accept"`
}

// ResolveReturn closes a return request with the admin's verdict.
func (h *Handler) ResolveReturn(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}

	var req resolveReturnRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.Orders.ResolveReturn(c.Request().Context(), id, req.Accept); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "return request resolved")
}
