package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

func seedProducts(t *testing.T, catalog *fakeCatalogStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := catalog.InsertProduct(context.Background(), &models.Product{
			Name:         fmt.Sprintf("Product %02d", i),
			CategoryName: "Vegetables",
			Price:        float64(i) + 0.5,
			Stock:        10,
		})
		require.NoError(t, err)
	}
}

func TestGetProductPagePartitionsSet(t *testing.T) {
	h, _, _, _, catalog := newTestHandler()
	seedProducts(t, catalog, 25)

	seen := map[string]bool{}
	for page := 0; page < 3; page++ {
		rec := invoke(t, h.GetProductPage, testRequest{
			method: http.MethodGet,
			target: fmt.Sprintf("/products/page?page=%d&size=10", page),
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Products []models.Product `json:"products"`
			Count    int64            `json:"count"`
		}
		decodeData(t, rec, &data)
		assert.Equal(t, int64(25), data.Count)
		assert.LessOrEqual(t, len(data.Products), 10)
		for _, p := range data.Products {
			assert.False(t, seen[p.Name], "no overlap across pages: %s", p.Name)
			seen[p.Name] = true
		}
	}
	assert.Len(t, seen, 25, "pages partition the full set with no gaps")
}

func TestGetProductPageDefaults(t *testing.T) {
	h, _, _, _, catalog := newTestHandler()
	seedProducts(t, catalog, 3)

	rec := invoke(t, h.GetProductPage, testRequest{
		method: http.MethodGet,
		target: "/products/page?page=-4&size=bogus",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Products []models.Product `json:"products"`
		Page     int64            `json:"page"`
		Size     int64            `json:"size"`
	}
	decodeData(t, rec, &data)
	assert.Equal(t, int64(0), data.Page)
	assert.Equal(t, int64(defaultPageSize), data.Size)
	assert.Len(t, data.Products, 3)
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	h, _, _, _, catalog := newTestHandler()

	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		rec := invoke(t, h.SearchProducts, testRequest{method: http.MethodGet, target: target})
		require.Equal(t, http.StatusOK, rec.Code)

		var products []models.Product
		decodeData(t, rec, &products)
		assert.Empty(t, products)
	}
	assert.Zero(t, catalog.searchCalls, "empty query never reaches the store")
}

func TestAutocompleteEmptyQueryShortCircuits(t *testing.T) {
	h, _, _, _, catalog := newTestHandler()

	rec := invoke(t, h.AutocompleteProducts, testRequest{method: http.MethodGet, target: "/autocomplete?q="})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, catalog.autocompCalls)

	rec = invoke(t, h.AutocompleteProducts, testRequest{method: http.MethodGet, target: "/autocomplete?q=ri"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, catalog.autocompCalls, "non-empty query does reach the store")
}

func TestGetProductInvalidID(t *testing.T) {
	h, _, _, _, _ := newTestHandler()

	rec := invoke(t, h.GetProduct, testRequest{
		method: http.MethodGet,
		target: "/products/zzz",
		params: [][2]string{{"id", "zzz"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "malformed id is a validation error, not a store failure")
}

func TestCreateProductValidation(t *testing.T) {
	h, _, _, _, _ := newTestHandler()

	rec := invoke(t, h.CreateProduct, testRequest{
		method: http.MethodPost,
		target: "/products",
		body:   `{"name":"Rice","category_name":"Grains","price":-3}`,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = invoke(t, h.CreateProduct, testRequest{
		method: http.MethodPost,
		target: "/products",
		body:   `{"name":"Rice","category_name":"Grains","price":3.25,"stock":5}`,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
