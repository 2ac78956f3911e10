package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

type couponRequest struct {
	Code            string  `json:"code" validate:"required"`
	DiscountPercent float64 `json:"discountPercent" validate:"required,gt=0,lte=100"`
	Description     string  `json:"description"`
}

func (h *Handler) CreateCoupon(c echo.Context) error {
	var req couponRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	coupon := models.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Description:     req.Description,
	}
	if err := h.Coupons.Insert(c.Request().Context(), &coupon); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusCreated, coupon)
}

func (h *Handler) GetCoupons(c echo.Context) error {
	coupons, err := h.Coupons.List(c.Request().Context())
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, coupons)
}

func (h *Handler) DeleteCoupon(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid coupon id")
	}

	if err := h.Coupons.Delete(c.Request().Context(), id); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "coupon deleted successfully")
}
