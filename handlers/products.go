package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

const defaultPageSize = 10

type productRequest struct {
	Name          string  `json:"name" validate:"required"`
	CategoryName  string  `json:"category_name" validate:"required"`
	SubCategory   string  `json:"sub_category"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"original_price"`
	Save          float64 `json:"save"`
	Bundle        string  `json:"bundle"`
	Quantity      string  `json:"quantity"`
	Stock         int     `json:"stock" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl"`
	Description   string  `json:"description"`
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	product := models.Product{
		Name:          req.Name,
		CategoryName:  req.CategoryName,
		SubCategory:   req.SubCategory,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Save:          req.Save,
		Bundle:        req.Bundle,
		Quantity:      req.Quantity,
		Stock:         req.Stock,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	}
	if err := h.Catalog.InsertProduct(c.Request().Context(), &product); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusCreated, product)
}

func (h *Handler) GetProducts(c echo.Context) error {
	products, err := h.Catalog.ListProducts(c.Request().Context())
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, products)
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}

	product, err := h.Catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, product)
}

// GetProductPage serves ?page=&size= with a total count. The count and the
// page are separate reads, so the total can lag concurrent inserts.
func (h *Handler) GetProductPage(c echo.Context) error {
	page, err := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.ParseInt(c.QueryParam("size"), 10, 64)
	if err != nil || size <= 0 {
		size = defaultPageSize
	}

	products, total, err := h.Catalog.PageProducts(c.Request().Context(), page, size)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{
		"products": products,
		"count":    total,
		"page":     page,
		"size":     size,
	})
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}

	var upd models.ProductUpdate
	if err := c.Bind(&upd); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.Catalog.UpdateProduct(c.Request().Context(), id, upd); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "product updated successfully")
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}

	if err := h.Catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondMessage(c, http.StatusOK, "product deleted successfully")
}

// SearchProducts is the text-index search mode. An empty query never
// reaches the store: it short-circuits to an empty result.
func (h *Handler) SearchProducts(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return respondData(c, http.StatusOK, []models.Product{})
	}

	products, err := h.Catalog.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, products)
}

// AutocompleteProducts is the independent prefix-match mode, capped at ten
// suggestions. It short-circuits on an empty query like SearchProducts.
func (h *Handler) AutocompleteProducts(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return respondData(c, http.StatusOK, []models.ProductSuggestion{})
	}

	suggestions, err := h.Catalog.AutocompleteProducts(c.Request().Context(), query)
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, suggestions)
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	category := models.Category{Name: req.Name}
	if err := h.Catalog.InsertCategory(c.Request().Context(), &category); err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusCreated, category)
}

func (h *Handler) GetCategories(c echo.Context) error {
	categories, err := h.Catalog.ListCategories(c.Request().Context())
	if err != nil {
		return h.respondStoreError(c, err)
	}
	return respondData(c, http.StatusOK, categories)
}
