package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/middleware"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
)

type wishlistRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

// AddWishlistItem inserts the (email, productId) pair once; a repeat of
// the same pair is rejected, never stored twice.
func (h *Handler) AddWishlistItem(c echo.Context) error {
	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if req.Email != middleware.EmailFromContext(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	pid, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}

	item := models.WishlistItem{
		Email:     req.Email,
		ProductID: pid,
		Name:      req.Name,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
	}
	if err := h.Wishlist.Insert(c.Request().Context(), &item); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return respondError(c, http.StatusConflict, "already added this item to the wishlist")
		}
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusCreated, "added product to wishlist")
}

func (h *Handler) GetWishlist(c echo.Context) error {
	if !isOwner(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	items, err := h.Wishlist.ListByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

func (h *Handler) DeleteWishlistItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid wishlist item id")
	}

	if err := h.Wishlist.Delete(c.Request().Context(), id); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "item deleted successfully")
}
