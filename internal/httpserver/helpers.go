package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/service"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

func getUserID(c echo.Context) (uuid.UUID, error) {
	v := c.Get("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil, errors.New("unauthorized")
	}

	userID, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	return userID, nil
}

func detail(c echo.Context, code int, msg string) error {
	return c.JSON(code, transport.MessageOut{Detail: msg})
}

// serviceError maps domain sentinel errors to HTTP responses with fixed
// client-facing messages so wrapped internals never leak. ErrEmpty is
// handled per endpoint since its status differs between surfaces.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return detail(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return detail(c, http.StatusNotFound, "not found")
	default:
		return detail(c, http.StatusInternalServerError, "internal error")
	}
}

func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
