package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

type reviewRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (h *Handler) CreateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	review := models.Review{
		Email:   req.Email,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.Reviews.Insert(c.Request().Context(), &review); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusCreated, review)
}

func (h *Handler) GetReviews(c echo.Context) error {
	reviews, err := h.Reviews.List(c.Request().Context())
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, reviews)
}
