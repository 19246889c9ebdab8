package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

func TestViewCartEmpty(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("empty_cart_user")

	rec, c := env.authedRequest(http.MethodGet, "/api/v1/orders/cart", nil, user.ID)
	require.NoError(t, env.Cart.ViewCart(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Your cart is empty, go shop like crazy!", decodeDetail(t, rec))
}

func TestViewCart(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("cart_user")
	product := env.createProduct("keyboard", 30)

	require.NoError(t, env.DB.Create(&models.Item{
		UserID:    user.ID,
		ProductID: product.ID,
		ItemQty:   3,
	}).Error)

	rec, c := env.authedRequest(http.MethodGet, "/api/v1/orders/cart", nil, user.ID)
	require.NoError(t, env.Cart.ViewCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, product.ID, items[0].ProductID)
	require.Equal(t, uint(3), items[0].ItemQty)
	require.NotNil(t, items[0].Product)
	require.Equal(t, "keyboard", items[0].Product.Name)
}

func TestAddToCartTwiceIncrementsSingleItem(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("repeat_buyer")
	product := env.createProduct("mouse", 15)

	body := transport.ItemCreate{ProductID: product.ID, ItemQty: 1}

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/add-to-cart", body, user.ID)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Added to cart successfully", decodeDetail(t, rec))

	// second add for the same product must increment, not duplicate
	rec, c = env.authedRequest(http.MethodPost, "/api/v1/orders/add-to-cart", body, user.ID)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Item
	require.NoError(t, env.DB.Where("user_id = ? AND ordered = ?", user.ID, false).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, uint(2), items[0].ItemQty)
}

func TestAddToCartIncrementIgnoresRequestedQuantity(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("greedy_buyer")
	product := env.createProduct("monitor", 120)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/add-to-cart",
		transport.ItemCreate{ProductID: product.ID, ItemQty: 5}, user.ID)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = env.authedRequest(http.MethodPost, "/api/v1/orders/add-to-cart",
		transport.ItemCreate{ProductID: product.ID, ItemQty: 100}, user.ID)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.Item
	require.NoError(t, env.DB.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error)
	require.Equal(t, uint(6), item.ItemQty)
}

func TestReduceQuantityDecrements(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("reducer")
	product := env.createProduct("cable", 5)

	item := models.Item{UserID: user.ID, ProductID: product.ID, ItemQty: 2}
	require.NoError(t, env.DB.Create(&item).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/item/"+item.ID.String()+"/reduce-quantity", nil, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.ReduceQuantity(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Item quantity reduced successfully!", decodeDetail(t, rec))

	var after models.Item
	require.NoError(t, env.DB.Where("id = ?", item.ID).First(&after).Error)
	require.Equal(t, uint(1), after.ItemQty)
}

func TestReduceQuantityDeletesAtOne(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("last_unit")
	product := env.createProduct("adapter", 8)

	item := models.Item{UserID: user.ID, ProductID: product.ID, ItemQty: 1}
	require.NoError(t, env.DB.Create(&item).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/item/"+item.ID.String()+"/reduce-quantity", nil, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.ReduceQuantity(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Item deleted!", decodeDetail(t, rec))

	var count int64
	require.NoError(t, env.DB.Model(&models.Item{}).Where("id = ?", item.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestReduceQuantityOtherUsersItem(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser("owner")
	intruder := env.createUser("intruder")
	product := env.createProduct("headset", 45)

	item := models.Item{UserID: owner.ID, ProductID: product.ID, ItemQty: 3}
	require.NoError(t, env.DB.Create(&item).Error)

	rec, c := env.authedRequest(http.MethodPost, "/api/v1/orders/item/"+item.ID.String()+"/reduce-quantity", nil, intruder.ID)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.ReduceQuantity(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not found", decodeDetail(t, rec))
}

func TestDeleteItem(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("deleter")
	product := env.createProduct("webcam", 25)

	item := models.Item{UserID: user.ID, ProductID: product.ID, ItemQty: 4}
	require.NoError(t, env.DB.Create(&item).Error)

	rec, c := env.authedRequest(http.MethodDelete, "/api/v1/orders/item/"+item.ID.String(), nil, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	require.NoError(t, env.Cart.DeleteItem(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Item{}).Where("id = ?", item.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteItemNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("no_item")

	missing := "3f8ad0b0-44d6-4f62-a4a5-b9f9f07ef1f5"
	rec, c := env.authedRequest(http.MethodDelete, "/api/v1/orders/item/"+missing, nil, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(missing)
	require.NoError(t, env.Cart.DeleteItem(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
