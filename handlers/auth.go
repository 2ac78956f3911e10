package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/utils"
)

// IssueToken answers GET /jwt/:email. An email backed by a stored user
// gets a signed ten-day token; an unknown email gets an empty credential,
// not an error.
func (h *Handler) IssueToken(c echo.Context) error {
	email := c.Param("email")

	_, err := h.Users.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return respondData(c, http.StatusOK, echo.Map{"accessToken": ""})
		}
		return h.respondStoreError(c, err)
	}

	token, err := h.issueToken(email)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "failed to generate token")
	}
	return respondData(c, http.StatusOK, echo.Map{"accessToken": token})
}

func (h *Handler) issueToken(email string) (string, error) {
	return utils.GenerateToken(email, h.JWTSecret)
}
