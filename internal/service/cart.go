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

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) ViewCart(ctx context.Context, userID uuid.UUID) ([]models.Item, error) {
	items, err := s.Repo.ViewCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", ErrEmpty)
	}
	return items, nil
}

// AddToCart increments an existing unordered (user, product) row by one,
// ignoring the requested quantity on that path; a fresh row gets the
// requested quantity, floored at one.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, qty uint) (*models.Item, bool, error) {
	if productID == uuid.Nil {
		return nil, false, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	if qty < 1 {
		qty = 1
	}
	return s.Repo.AddOrIncrement(ctx, userID, productID, qty)
}

func (s *CartService) ReduceQuantity(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, bool, error) {
	item, deleted, err := s.Repo.ReduceQuantity(ctx, userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("item: %w", ErrNotFound)
	}
	return item, deleted, err
}

func (s *CartService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	err := s.Repo.DeleteItem(ctx, userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("item: %w", ErrNotFound)
	}
	return err
}
