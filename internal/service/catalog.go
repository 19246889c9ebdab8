package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return s.Repo.ListVendors(ctx)
}

// ListProducts reports ErrEmpty when no active products exist at all;
// a filter that matches nothing still returns an empty 200 list.
func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	activeTotal, items, err := s.Repo.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	if activeTotal == 0 {
		return nil, fmt.Errorf("no products found: %w", ErrEmpty)
	}
	return items, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product: %w", ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if prod.Name == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}
	if prod.Price < 0 || prod.DiscountedPrice < 0 {
		return nil, fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) PatchProduct(ctx context.Context, id uuid.UUID, req repo.PatchProductFields) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice < 0 {
		return nil, fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}

	prod, err := s.Repo.PatchProduct(ctx, id, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product: %w", ErrNotFound)
	}
	return prod, err
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product: %w", ErrNotFound)
	}
	return err
}
