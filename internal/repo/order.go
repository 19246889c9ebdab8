package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
)

// CreateOrder snapshots the caller's cart into a new order inside a
// single transaction: cart items flip to ordered, get attached to the
// order, and the total is recomputed from product prices. An empty cart
// still produces a zero-item order.
func (r *GormRepo) CreateOrder(ctx context.Context, userID uuid.UUID, refCode string) (*models.Order, error) {
	var order models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.Item
		if err := tx.Where("user_id = ? AND ordered = ?", userID, false).Find(&items).Error; err != nil {
			return err
		}

		var status models.OrderStatus
		if err := tx.Where("is_default = ?", true).First(&status).Error; err != nil {
			return fmt.Errorf("default order status: %w", err)
		}

		order = models.Order{
			UserID:   userID,
			RefCode:  refCode,
			StatusID: status.ID,
			Ordered:  false,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		if len(items) > 0 {
			productIDs := make([]uuid.UUID, 0, len(items))
			for i := range items {
				productIDs = append(productIDs, items[i].ProductID)
			}
			var products []models.Product
			if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
				return fmt.Errorf("order products: %w", err)
			}
			prices := make(map[uuid.UUID]float64, len(products))
			for i := range products {
				prices[products[i].ID] = products[i].DiscountedPrice
			}
			for i := range items {
				price, ok := prices[items[i].ProductID]
				if !ok {
					return fmt.Errorf("order product %s: %w", items[i].ProductID, gorm.ErrRecordNotFound)
				}
				total += float64(items[i].ItemQty) * price
			}

			ids := make([]uuid.UUID, 0, len(items))
			for i := range items {
				ids = append(ids, items[i].ID)
			}
			if err := tx.Model(&models.Item{}).
				Where("id IN ?", ids).
				Updates(map[string]any{"ordered": true, "order_id": order.ID}).Error; err != nil {
				return err
			}
		}

		order.Total = total
		if err := tx.Model(&order).Update("total", total).Error; err != nil {
			return err
		}

		if err := tx.Preload("Items").Where("id = ?", order.ID).First(&order).Error; err != nil {
			return err
		}
		order.Status = &status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Checkout finalizes the caller's pending order: note and delivery
// address are attached and the status moves to PROCESSING.
func (r *GormRepo) Checkout(ctx context.Context, userID, addressID uuid.UUID, note string) (*models.Order, error) {
	var order models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND ordered = ?", userID, false).
			First(&order).Error; err != nil {
			return fmt.Errorf("pending order: %w", err)
		}

		var address models.Address
		if err := tx.Where("id = ?", addressID).First(&address).Error; err != nil {
			return fmt.Errorf("address: %w", err)
		}

		var processing models.OrderStatus
		if err := tx.Where("title = ?", models.StatusProcessing).First(&processing).Error; err != nil {
			return fmt.Errorf("processing status: %w", err)
		}

		if err := tx.Model(&order).Updates(map[string]any{
			"note":       note,
			"address_id": address.ID,
			"ordered":    true,
			"status_id":  processing.ID,
		}).Error; err != nil {
			return err
		}

		order.Address = &address
		order.Status = &processing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
