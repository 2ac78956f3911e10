package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/utils"
)

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreatePaymentIntent converts the price to minor units and asks the
// provider for an intent, handing its client secret back to the caller.
func (h *Handler) CreatePaymentIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	secret, err := h.Payments.CreateIntent(c.Request().Context(), utils.AmountMinorUnits(req.Price))
	if err != nil {
		h.Log.Error().Err(err).Msg("payment intent failed")
		return respondError(c, http.StatusBadGateway, err.Error())
	}
	return respondData(c, http.StatusOK, echo.Map{"clientSecret": secret})
}
