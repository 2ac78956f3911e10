package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/utils"
)

// EmailKey is where VerifyJWT parks the authenticated identity for
// downstream handlers.
const EmailKey = "userEmail"

// RoleChecker is the slice of the user store the admin gate needs.
type RoleChecker interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// EmailFromContext returns the identity attached by VerifyJWT, or "".
func EmailFromContext(c echo.Context) string {
	email, _ := c.Get(EmailKey).(string)
	return email
}

// VerifyJWT rejects requests without a bearer credential (401) or with a
// credential that fails verification (403), and attaches the decoded email
// otherwise.
func VerifyJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "missing authorization header"})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusForbidden, echo.Map{"status": false, "message": "invalid authorization header format"})
			}

			claims, err := utils.ParseToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"status": false, "message": "invalid or expired token"})
			}

			c.Set(EmailKey, claims.Email)
			return next(c)
		}
	}
}

// VerifyAdmin runs after VerifyJWT. The token identity must match the
// email the request names (when it names one) and must belong to a stored
// admin; a token for user A never reads data "as" user B.
func VerifyAdmin(users RoleChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decoded := EmailFromContext(c)
			if decoded == "" {
				return c.JSON(http.StatusForbidden, echo.Map{"status": false, "message": "forbidden access"})
			}

			requested := c.Param("email")
			if requested == "" {
				requested = c.QueryParam("email")
			}
			if requested != "" && requested != decoded {
				return c.JSON(http.StatusForbidden, echo.Map{"status": false, "message": "forbidden access"})
			}

			user, err := users.GetByEmail(c.Request().Context(), decoded)
			if err != nil {
				if errors.Is(err, stores.ErrNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"status": false, "message": "forbidden access"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "failed to verify role"})
			}
			if user.Role != models.RoleAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"status": false, "message": "forbidden access"})
			}

			return next(c)
		}
	}
}
