package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/middleware"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
)

// Every endpoint answers with the same envelope: {status, data} on
// success, {status, message} otherwise.

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, echo.Map{"status": true, "data": data})
}

func respondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"status": true, "message": message})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"status": false, "message": message})
}

// respondStoreError maps store sentinels onto the error taxonomy. Unknown
// failures are logged and answered as 500 without leaking driver details;
// they are server faults, not client ones.
func (h *Handler) respondStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		return respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, stores.ErrDuplicate):
		return respondError(c, http.StatusConflict, "already exists")
	case errors.Is(err, stores.ErrStateConflict):
		return respondError(c, http.StatusConflict, "order is not in a state that allows this change")
	default:
		h.Log.Error().Err(err).Str("path", c.Path()).Msg("store failure")
		return respondError(c, http.StatusInternalServerError, "something went wrong")
	}
}

// isOwner guards the per-user listing routes: the authenticated email must
// be the one named in the path.
func isOwner(c echo.Context) bool {
	return middleware.EmailFromContext(c) == c.Param("email")
}
