package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
)

type ProductFilter struct {
	Q         string
	PriceFrom *float64
	PriceTo   *float64
	VendorID  *uuid.UUID
}

func (r *GormRepo) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// ListProducts returns the count of active products and the filtered
// slice. Vendor and Category rows are preloaded in two extra queries
// instead of one lookup per product.
func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) (int64, []models.Product, error) {
	var activeTotal int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&activeTotal).Error; err != nil {
		return 0, nil, err
	}

	q := r.DB.WithContext(ctx).
		Preload("Vendor").
		Preload("Category").
		Where("is_active = ?", true)

	if f.Q != "" {
		like := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.PriceFrom != nil {
		q = q.Where("discounted_price >= ?", *f.PriceFrom)
	}
	if f.PriceTo != nil {
		q = q.Where("discounted_price <= ?", *f.PriceTo)
	}
	if f.VendorID != nil {
		q = q.Where("vendor_id = ?", *f.VendorID)
	}

	var items []models.Product
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return activeTotal, items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Preload("Vendor").
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

type PatchProductFields struct {
	Name            *string
	Description     *string
	Qty             *uint
	Price           *float64
	DiscountedPrice *float64
	IsActive        *bool
}

func (r *GormRepo) PatchProduct(ctx context.Context, id uuid.UUID, req PatchProductFields) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Qty != nil {
		prod.Qty = *req.Qty
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.DiscountedPrice != nil {
		prod.DiscountedPrice = *req.DiscountedPrice
	}
	if req.IsActive != nil {
		prod.IsActive = *req.IsActive
	}

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
