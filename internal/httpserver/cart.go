package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mhdksr/commerce_backend/internal/logging"
	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/service"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) ViewCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.view_cart")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.ViewCart(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrEmpty) {
			return detail(c, http.StatusNotFound, "Your cart is empty, go shop like crazy!")
		}
		l.Error("view_cart_error", "status", 500, "error", err)
		return detail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	var req transport.ItemCreate
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	item, created, err := h.Svc.AddToCart(ctx, userID, req.ProductID, req.ItemQty)
	if err != nil {
		l.Warn("add_to_cart_error", "error", err)
		return serviceError(c, err)
	}

	publish(c, h.Producer, "cart_events", userID.String(), map[string]any{
		"type":      "item_added_to_cart",
		"userID":    userID,
		"productID": item.ProductID,
		"quantity":  item.ItemQty,
		"created":   created,
	})

	l.Info("add_to_cart_success", "item_id", item.ID, "quantity", item.ItemQty)
	return detail(c, http.StatusOK, "Added to cart successfully")
}

func (h *CartHTTP) ReduceQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.reduce_quantity")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	item, deleted, err := h.Svc.ReduceQuantity(ctx, userID, itemID)
	if err != nil {
		l.Warn("reduce_quantity_error", "error", err)
		return serviceError(c, err)
	}

	if deleted {
		publish(c, h.Producer, "cart_events", userID.String(), map[string]any{
			"type":   "cart_item_deleted",
			"userID": userID,
			"itemID": itemID,
		})
		l.Info("reduce_quantity_deleted", "item_id", itemID)
		return detail(c, http.StatusOK, "Item deleted!")
	}

	publish(c, h.Producer, "cart_events", userID.String(), map[string]any{
		"type":         "cart_item_reduced",
		"userID":       userID,
		"itemID":       itemID,
		"new_quantity": item.ItemQty,
	})
	l.Info("reduce_quantity_success", "item_id", itemID, "quantity", item.ItemQty)
	return detail(c, http.StatusOK, "Item quantity reduced successfully!")
}

func (h *CartHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_item")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteItem(ctx, userID, itemID); err != nil {
		l.Warn("delete_item_error", "error", err)
		return serviceError(c, err)
	}

	publish(c, h.Producer, "cart_events", userID.String(), map[string]any{
		"type":   "cart_item_deleted",
		"userID": userID,
		"itemID": itemID,
	})

	l.Info("delete_item_success", "item_id", itemID)
	return c.NoContent(http.StatusNoContent)
}
