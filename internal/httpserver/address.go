package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mhdksr/commerce_backend/internal/logging"
	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/repo"
	"github.com/mhdksr/commerce_backend/internal/service"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

type AddressHTTP struct {
	Svc *service.AddressService
}

func (h *AddressHTTP) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.list_addresses")

	addresses, err := h.Svc.ListAddresses(ctx)
	if err != nil {
		if errors.Is(err, service.ErrEmpty) {
			return detail(c, http.StatusBadRequest, "No addresses found")
		}
		l.Error("list_addresses_error", "status", 500, "error", err)
		return detail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *AddressHTTP) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.create_address")

	userID, err := getUserID(c)
	if err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	var req transport.AddressCreate
	if err := c.Bind(&req); err != nil {
		l.Warn("create_address_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	address := models.Address{
		UserID:      userID,
		WorkAddress: req.WorkAddress,
		Address1:    req.Address1,
		Address2:    req.Address2,
		CityID:      req.CityID,
		Phone:       req.Phone,
	}
	if err := h.Svc.CreateAddress(ctx, &address); err != nil {
		l.Warn("create_address_error", "error", err)
		return serviceError(c, err)
	}

	l.Info("create_address_success", "address_id", address.ID)
	return detail(c, http.StatusOK, "Address added successfully")
}

func (h *AddressHTTP) UpdateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.update_address")

	if _, err := getUserID(c); err != nil {
		return detail(c, http.StatusUnauthorized, "unauthorized")
	}

	var req transport.AddressUpdate
	if err := c.Bind(&req); err != nil {
		l.Warn("update_address_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}
	if req.ID == uuid.Nil {
		return detail(c, http.StatusBadRequest, "id required")
	}

	if _, err := h.Svc.UpdateAddress(ctx, req.ID, repo.UpdateAddressFields{
		WorkAddress: req.WorkAddress,
		Address1:    req.Address1,
		Address2:    req.Address2,
		CityID:      req.CityID,
		Phone:       req.Phone,
	}); err != nil {
		l.Warn("update_address_error", "error", err)
		return serviceError(c, err)
	}

	l.Info("update_address_success", "address_id", req.ID)
	return detail(c, http.StatusOK, "Address updated successfully")
}

func (h *AddressHTTP) ListCities(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.list_cities")

	cities, err := h.Svc.ListCities(ctx)
	if err != nil {
		if errors.Is(err, service.ErrEmpty) {
			return detail(c, http.StatusNotFound, "No cities found")
		}
		l.Error("list_cities_error", "status", 500, "error", err)
		return detail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, cities)
}

func (h *AddressHTTP) GetCity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.get_city")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	city, err := h.Svc.GetCity(ctx, id)
	if err != nil {
		l.Warn("get_city_error", "error", err)
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

func (h *AddressHTTP) CreateCity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.create_city")

	var req transport.CitySchema
	if err := c.Bind(&req); err != nil {
		l.Warn("create_city_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	city := models.City{Name: req.Name}
	if err := h.Svc.CreateCity(ctx, &city); err != nil {
		l.Warn("create_city_error", "error", err)
		return serviceError(c, err)
	}

	l.Info("create_city_success", "city_id", city.ID)
	return c.JSON(http.StatusCreated, city)
}

func (h *AddressHTTP) UpdateCity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.update_city")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	var req transport.CitySchema
	if err := c.Bind(&req); err != nil {
		l.Warn("update_city_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	city, err := h.Svc.UpdateCity(ctx, id, req.Name)
	if err != nil {
		l.Warn("update_city_error", "error", err)
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

func (h *AddressHTTP) DeleteCity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.delete_city")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteCity(ctx, id); err != nil {
		l.Warn("delete_city_error", "error", err)
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
