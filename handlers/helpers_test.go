package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/middleware"
	"github.com/Team-Hexagon-607-2/fast-grocer-server/models"
)

func newTestHandler() (*Handler, *fakeUserStore, *fakeOrderStore, *fakeWishlistStore, *fakeCatalogStore) {
	users := newFakeUserStore()
	orders := newFakeOrderStore()
	wishlist := &fakeWishlistStore{}
	catalog := &fakeCatalogStore{}

	h := &Handler{
		Users:     users,
		Catalog:   catalog,
		Orders:    orders,
		Wishlist:  wishlist,
		JWTSecret: "test-secret",
		Log:       zerolog.Nop(),
	}
	return h, users, orders, wishlist, catalog
}

type testRequest struct {
	method  string
	target  string
	body    string
	asEmail string
	params  [][2]string
}

// invoke runs a single handler against a synthetic echo context, playing
// the role VerifyJWT plays in production when asEmail is set.
func invoke(t *testing.T, handler echo.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(tr.method, tr.target, strings.NewReader(tr.body))
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tr.asEmail != "" {
		c.Set(middleware.EmailKey, tr.asEmail)
	}
	if len(tr.params) > 0 {
		names := make([]string, 0, len(tr.params))
		values := make([]string, 0, len(tr.params))
		for _, p := range tr.params {
			names = append(names, p[0])
			values = append(values, p[1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	require.NoError(t, handler(c))
	return rec
}

func seedUser(t *testing.T, users *fakeUserStore, email, role string) {
	t.Helper()
	err := users.Insert(context.Background(), &models.User{Name: "seeded", Email: email, Role: models.Role(role)})
	require.NoError(t, err)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.Status, "expected success envelope, got message %q", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
