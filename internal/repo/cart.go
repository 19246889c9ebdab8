package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
)

func (r *GormRepo) ViewCart(ctx context.Context, userID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND ordered = ?", userID, false).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddOrIncrement bumps the unordered (user, product) row by one, or
// creates it with the requested quantity. The relative update keeps the
// increment atomic under concurrent requests.
func (r *GormRepo) AddOrIncrement(ctx context.Context, userID, productID uuid.UUID, qty uint) (*models.Item, bool, error) {
	var item models.Item
	created := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Item{}).
			Where("user_id = ? AND product_id = ? AND ordered = ?", userID, productID, false).
			Update("item_qty", gorm.Expr("item_qty + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ? AND ordered = ?", userID, productID, false).
				First(&item).Error
		}

		item = models.Item{
			UserID:    userID,
			ProductID: productID,
			ItemQty:   qty,
		}
		created = true
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &item, created, nil
}

// ReduceQuantity decrements the item by one, deleting it outright when
// the quantity is already down to one.
func (r *GormRepo) ReduceQuantity(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, bool, error) {
	var item models.Item
	deleted := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ? AND ordered = ?", itemID, userID, false).
			First(&item).Error; err != nil {
			return err
		}

		if item.ItemQty <= 1 {
			deleted = true
			return tx.Delete(&item).Error
		}

		if err := tx.Model(&item).Update("item_qty", gorm.Expr("item_qty - ?", 1)).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", itemID).First(&item).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &item, deleted, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND ordered = ?", itemID, userID, false).
		Delete(&models.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
