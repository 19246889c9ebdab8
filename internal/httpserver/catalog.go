package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mhdksr/commerce_backend/internal/logging"
	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/repo"
	"github.com/mhdksr/commerce_backend/internal/service"
	"github.com/mhdksr/commerce_backend/internal/service/search"
	"github.com/mhdksr/commerce_backend/internal/transport"
	"github.com/mhdksr/commerce_backend/internal/util"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func (h *CatalogHTTP) ListVendors(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_vendors")

	vendors, err := h.Svc.ListVendors(ctx)
	if err != nil {
		l.Error("list_vendors_error", "status", 500, "error", err)
		return detail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, vendors)
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_products")

	filter := repo.ProductFilter{Q: c.QueryParam("q")}

	if v := c.QueryParam("price_from"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return detail(c, http.StatusBadRequest, "invalid price_from")
		}
		filter.PriceFrom = &n
	}
	if v := c.QueryParam("price_to"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return detail(c, http.StatusBadRequest, "invalid price_to")
		}
		filter.PriceTo = &n
	}
	if v := c.QueryParam("vendor"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return detail(c, http.StatusBadRequest, "invalid vendor")
		}
		filter.VendorID = &id
	}

	products, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		if errors.Is(err, service.ErrEmpty) {
			return detail(c, http.StatusNotFound, "No products found")
		}
		l.Error("list_products_error", "status", 500, "error", err)
		return detail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search_products")

	if h.ES == nil {
		return detail(c, http.StatusServiceUnavailable, "search is not available")
	}

	q := c.QueryParam("q")
	if q == "" {
		return detail(c, http.StatusBadRequest, "q required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := search.Search(ctx, h.ES, h.ESIndex, q, from, size)
	if err != nil {
		l.Error("search_products_error", "status", 500, "error", err)
		return detail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_product")

	var req transport.ProductCreate
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	prod := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Qty:             req.Qty,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		IsActive:        true,
		VendorID:        req.VendorID,
		CategoryID:      req.CategoryID,
	}
	if req.IsActive != nil {
		prod.IsActive = *req.IsActive
	}

	created, err := h.Svc.CreateProduct(ctx, &prod)
	if err != nil {
		l.Warn("create_product_error", "error", err)
		return serviceError(c, err)
	}

	h.indexProduct(c, created)
	publish(c, h.Producer, "product_events", created.ID.String(), map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	})

	l.Info("create_product_success", "product_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *CatalogHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.patch_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	var req transport.ProductPatch
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.PatchProduct(ctx, id, repo.PatchProductFields{
		Name:            req.Name,
		Description:     req.Description,
		Qty:             req.Qty,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		IsActive:        req.IsActive,
	})
	if err != nil {
		l.Warn("patch_product_error", "error", err)
		return serviceError(c, err)
	}

	h.indexProduct(c, prod)
	publish(c, h.Producer, "product_events", prod.ID.String(), map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	l.Info("patch_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.delete_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Warn("delete_product_error", "error", err)
		return serviceError(c, err)
	}

	if h.ES != nil {
		if err := search.DeleteProduct(ctx, h.ES, h.ESIndex, id.String()); err != nil {
			l.Warn("es_delete_error", "error", err)
		}
	}
	publish(c, h.Producer, "product_events", id.String(), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHTTP) indexProduct(c echo.Context, prod *models.Product) {
	if h.ES == nil {
		return
	}
	ctx := c.Request().Context()
	if err := search.IndexProduct(ctx, h.ES, h.ESIndex, prod); err != nil {
		logging.FromContext(ctx).Warn("es_index_error", "error", err)
	}
}
