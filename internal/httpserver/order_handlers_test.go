package httpserver

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

func TestCreateOrderSnapshotsCart(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("order_maker")
	laptop := env.createProduct("laptop", 800)
	stand := env.createProduct("stand", 40)

	require.NoError(t, env.DB.Create(&models.Item{UserID: user.ID, ProductID: laptop.ID, ItemQty: 1}).Error)
	require.NoError(t, env.DB.Create(&models.Item{UserID: user.ID, ProductID: stand.ID, ItemQty: 2}).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/create", nil, user.ID)
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "The order has been created successfully", decodeDetail(t, rec))

	var order models.Order
	require.NoError(t, env.DB.Preload("Items").Where("user_id = ?", user.ID).First(&order).Error)
	require.Len(t, order.Items, 2)
	require.Len(t, order.RefCode, 6)
	require.False(t, order.Ordered)
	require.InDelta(t, 880.0, order.Total, 0.001)

	for _, item := range order.Items {
		require.True(t, item.Ordered)
		require.NotNil(t, item.OrderID)
		require.Equal(t, order.ID, *item.OrderID)
	}

	// nothing left visible in the cart
	var unordered int64
	require.NoError(t, env.DB.Model(&models.Item{}).
		Where("user_id = ? AND ordered = ?", user.ID, false).
		Count(&unordered).Error)
	require.Zero(t, unordered)

	var status models.OrderStatus
	require.NoError(t, env.DB.Where("id = ?", order.StatusID).First(&status).Error)
	require.Equal(t, models.StatusNew, status.Title)
	require.True(t, status.IsDefault)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("impatient")

	// an empty cart still yields a zero-item order
	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/create", nil, user.ID)
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(t, env.DB.Preload("Items").Where("user_id = ?", user.ID).First(&order).Error)
	require.Empty(t, order.Items)
	require.Zero(t, order.Total)
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("checker")
	product := env.createProduct("desk", 150)

	require.NoError(t, env.DB.Create(&models.Item{UserID: user.ID, ProductID: product.ID, ItemQty: 1}).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/create", nil, user.ID)
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	city := models.City{Name: "Amman"}
	require.NoError(t, env.DB.Create(&city).Error)
	address := models.Address{
		UserID:   user.ID,
		Address1: "12 Main St",
		CityID:   &city.ID,
		Phone:    "0790000000",
	}
	require.NoError(t, env.DB.Create(&address).Error)

	rec, c = env.authedRequest(http.MethodPut, "/api/v1/orders/checkout",
		transport.CheckOut{Note: "leave at the door", AddressID: address.ID}, user.ID)
	require.NoError(t, env.Order.Checkout(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Checkout done successfully", decodeDetail(t, rec))

	var order models.Order
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&order).Error)
	require.True(t, order.Ordered)
	require.Equal(t, "leave at the door", order.Note)
	require.NotNil(t, order.AddressID)
	require.Equal(t, address.ID, *order.AddressID)

	var status models.OrderStatus
	require.NoError(t, env.DB.Where("id = ?", order.StatusID).First(&status).Error)
	require.Equal(t, models.StatusProcessing, status.Title)
}

func TestCheckoutWithoutPendingOrder(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("hasty")

	city := models.City{Name: "Irbid"}
	require.NoError(t, env.DB.Create(&city).Error)
	address := models.Address{UserID: user.ID, Address1: "5 Side St", CityID: &city.ID}
	require.NoError(t, env.DB.Create(&address).Error)

	rec, c := env.authedRequest(http.MethodPut, "/api/v1/orders/checkout",
		transport.CheckOut{AddressID: address.ID}, user.ID)
	require.NoError(t, env.Order.Checkout(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutMissingAddress(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("lost_address")
	product := env.createProduct("chair", 60)

	require.NoError(t, env.DB.Create(&models.Item{UserID: user.ID, ProductID: product.ID, ItemQty: 1}).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/create", nil, user.ID)
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	missing := uuid.MustParse("7a4a6a43-6a0a-4a37-9a8e-3a1f2b6c9d10")
	rec, c = env.authedRequest(http.MethodPut, "/api/v1/orders/checkout",
		transport.CheckOut{AddressID: missing}, user.ID)
	require.NoError(t, env.Order.Checkout(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutLocksCartView(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("done_shopping")
	product := env.createProduct("lamp", 20)

	require.NoError(t, env.DB.Create(&models.Item{UserID: user.ID, ProductID: product.ID, ItemQty: 2}).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/create", nil, user.ID)
	require.NoError(t, env.Order.CreateOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// ordered items are no longer reachable through cart mutations
	var item models.Item
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&item).Error)

	rec, c = env.authedRequest(http.MethodDelete, "/api/v1/orders/item/"+item.ID.String(), nil, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.DeleteItem(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
