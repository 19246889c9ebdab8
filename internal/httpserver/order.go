package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhdksr/commerce_backend/internal/logging"
	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/service"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	order, err := h.Svc.CreateOrder(ctx, userID)
	if err != nil {
		l.Error("create_order_error", "error", err)
		return serviceError(c, err)
	}

	publish(c, h.Producer, "order_events", userID.String(), map[string]any{
		"type":     "order_created",
		"userID":   userID,
		"orderID":  order.ID,
		"ref_code": order.RefCode,
		"total":    order.Total,
	})

	l.Info("create_order_success", "order_id", order.ID, "ref_code", order.RefCode, "total", order.Total)
	return detail(c, http.StatusOK, "The order has been created successfully")
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	var req transport.CheckOut
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Checkout(ctx, userID, req.AddressID, req.Note)
	if err != nil {
		l.Warn("checkout_error", "error", err)
		return serviceError(c, err)
	}

	publish(c, h.Producer, "order_events", userID.String(), map[string]any{
		"type":      "order_checked_out",
		"userID":    userID,
		"orderID":   order.ID,
		"addressID": req.AddressID,
	})

	l.Info("checkout_success", "order_id", order.ID)
	return detail(c, http.StatusOK, "Checkout done successfully")
}
