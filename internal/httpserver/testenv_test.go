package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/db"
	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/repo"
	"github.com/mhdksr/commerce_backend/internal/service"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	DB      *gorm.DB
	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Address *AddressHTTP
	Cart    *CartHTTP
	Order   *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	gormRepo := &repo.GormRepo{DB: gdb}
	producer := &mykafka.Producer{}

	return &testEnv{
		T:       t,
		E:       echo.New(),
		DB:      gdb,
		Auth:    &AuthHTTP{DB: gdb, JWTSecret: []byte("test-secret"), RefreshSecret: []byte("test-refresh-secret"), Producer: producer},
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Repo: gormRepo}, Producer: producer},
		Address: &AddressHTTP{Svc: &service.AddressService{Repo: gormRepo}},
		Cart:    &CartHTTP{Svc: &service.CartService{Repo: gormRepo}, Producer: producer},
		Order:   &OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}, Producer: producer},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// authedRequest builds a request context carrying a resolved principal,
// the way the auth middleware leaves it.
func (env *testEnv) authedRequest(method, path string, body interface{}, userID uuid.UUID) (*httptest.ResponseRecorder, echo.Context) {
	rec, c := env.doJSONRequest(method, path, body)
	c.Set("user_id", userID.String())
	c.Set("role", "user")
	return rec, c
}

func (env *testEnv) createUser(username string) *models.User {
	env.T.Helper()
	user := &models.User{Username: username, PasswordHash: "x", Role: "user"}
	require.NoError(env.T, env.DB.Create(user).Error)
	return user
}

func (env *testEnv) createProduct(name string, discounted float64) *models.Product {
	env.T.Helper()
	product := &models.Product{
		Name:            name,
		Description:     name + " description",
		Qty:             10,
		Price:           discounted + 5,
		DiscountedPrice: discounted,
		IsActive:        true,
	}
	require.NoError(env.T, env.DB.Create(product).Error)
	return product
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Detail
}
