package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhdksr/commerce_backend/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	AddressHandler *AddressHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	AuthMW         *middleware.AuthMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.POST("/refresh", d.AuthHandler.Refresh)

	v1.GET("/vendors", d.CatalogHandler.ListVendors)

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.ListProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)

	admin := v1.Group("/admin", d.AuthMW.RequireAdmin)
	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	addresses := v1.Group("/addresses")
	addresses.GET("/addresses", d.AddressHandler.ListAddresses)
	addresses.POST("/add-address", d.AddressHandler.CreateAddress, d.AuthMW.RequireAuth)
	addresses.POST("/update-address", d.AddressHandler.UpdateAddress, d.AuthMW.RequireAuth)
	addresses.GET("/cities", d.AddressHandler.ListCities)
	addresses.GET("/cities/:id", d.AddressHandler.GetCity)
	addresses.POST("/cities", d.AddressHandler.CreateCity, d.AuthMW.RequireAuth)
	addresses.PUT("/cities/:id", d.AddressHandler.UpdateCity, d.AuthMW.RequireAuth)
	addresses.DELETE("/cities/:id", d.AddressHandler.DeleteCity, d.AuthMW.RequireAuth)

	orders := v1.Group("/orders", d.AuthMW.RequireAuth)
	orders.GET("/cart", d.CartHandler.ViewCart)
	orders.POST("/add-to-cart", d.CartHandler.AddToCart)
	orders.POST("/item/:id/reduce-quantity", d.CartHandler.ReduceQuantity)
	orders.DELETE("/item/:id", d.CartHandler.DeleteItem)
	orders.POST("/create", d.OrderHandler.CreateOrder)
	orders.PUT("/checkout", d.OrderHandler.Checkout)
}
