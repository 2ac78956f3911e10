package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/stores"
)

type signUpRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"omitempty,min=8"`
	Role          string `json:"role" validate:"required,oneof=buyer 'delivery man' admin"`
	Image         string `json:"image"`
	Contact       string `json:"contact"`
	Certification string `json:"certification"`
}

// SignUp creates a user keyed on email. The insert is conditional, never
// an upsert: a taken email is answered with 409 and no second record.
func (h *Handler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Role:          models.Role(req.Role),
		Image:         req.Image,
		Contact:       req.Contact,
		Certification: req.Certification,
	}
	if user.Role == models.RoleDeliveryMan {
		user.WorkPermitStatus = models.WorkPermitPending
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return respondError(c, http.StatusInternalServerError, "failed to process password")
		}
		user.Password = string(hashed)
	}

	if err := h.Users.Insert(c.Request().Context(), &user); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return respondError(c, http.StatusConflict, "email already registered")
		}
		return h.respondStoreError(c, err)
	}

	return respondData(c, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies the stored bcrypt hash and mints an access token.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.Users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return respondError(c, http.StatusUnauthorized, "invalid email or password")
		}
		return h.respondStoreError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return respondError(c, http.StatusUnauthorized, "invalid email or password")
	}

	token, err := h.issueToken(user.Email)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "failed to generate token")
	}
	return respondData(c, http.StatusOK, echo.Map{"accessToken": token, "user": user})
}

func (h *Handler) GetUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context(), "")
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, users)
}

func (h *Handler) GetBuyers(c echo.Context) error {
	buyers, err := h.Users.List(c.Request().Context(), models.RoleBuyer)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, buyers)
}

func (h *Handler) GetDeliverymen(c echo.Context) error {
	deliverymen, err := h.Users.List(c.Request().Context(), models.RoleDeliveryMan)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, deliverymen)
}

// The three role resolver endpoints answer a single flag each. A missing
// user is not an error: every flag resolves to false.

func (h *Handler) IsAdmin(c echo.Context) error {
	flags, err := h.resolveRoles(c)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"isAdmin": flags.IsAdmin})
}

func (h *Handler) IsDeliveryman(c echo.Context) error {
	flags, err := h.resolveRoles(c)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"isDeliveryman": flags.IsDeliveryman})
}

func (h *Handler) IsBuyer(c echo.Context) error {
	flags, err := h.resolveRoles(c)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"isBuyer": flags.IsBuyer})
}

func (h *Handler) resolveRoles(c echo.Context) (models.RoleFlags, error) {
	user, err := h.Users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return models.ResolveRoles(nil), nil
		}
		return models.RoleFlags{}, err
	}
	return models.ResolveRoles(user), nil
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid user id")
	}

	user, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid user id")
	}

	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "user deleted successfully")
}

// UpdateProfile is self-service: the token identity must match the path.
func (h *Handler) UpdateProfile(c echo.Context) error {
	if !isOwner(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	var upd models.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.Users.UpdateProfile(c.Request().Context(), c.Param("email"), upd); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "profile updated successfully")
}

// VerifyUser marks a delivery agent application as verified (admin only).
func (h *Handler) VerifyUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid user id")
	}

	if err := h.Users.SetVerified(c.Request().Context(), id, true); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "user verified")
}

type workPermitRequest struct {
	Status string `json:"status" validate:"required,oneof=pending Accepted Rejected"`
}

func (h *Handler) SetWorkPermit(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid user id")
	}

	var req workPermitRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.Users.SetWorkPermit(c.Request().Context(), id, models.WorkPermitStatus(req.Status)); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "work permit status updated")
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func (h *Handler) SetAvailability(c echo.Context) error {
	if !isOwner(c) {
		return respondError(c, http.StatusForbidden, "forbidden access")
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.Users.SetAvailability(c.Request().Context(), c.Param("email"), req.Available); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "availability updated")
}
