package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/db"
	"github.com/mhdksr/commerce_backend/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return &GormRepo{DB: gdb}
}

func seedProduct(t *testing.T, r *GormRepo, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:            "product",
		Description:     "description",
		Qty:             5,
		Price:           price + 10,
		DiscountedPrice: price,
		IsActive:        true,
	}
	require.NoError(t, r.DB.Create(product).Error)
	return product
}

func TestAddOrIncrement(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, r, 10)

	item, created, err := r.AddOrIncrement(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, uint(2), item.ItemQty)

	item, created, err = r.AddOrIncrement(ctx, userID, product.ID, 99)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, uint(3), item.ItemQty)

	var count int64
	require.NoError(t, r.DB.Model(&models.Item{}).
		Where("user_id = ? AND product_id = ?", userID, product.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddOrIncrementSkipsOrderedRows(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, r, 10)

	ordered := models.Item{UserID: userID, ProductID: product.ID, ItemQty: 4, Ordered: true}
	require.NoError(t, r.DB.Create(&ordered).Error)

	item, created, err := r.AddOrIncrement(ctx, userID, product.ID, 1)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, uint(1), item.ItemQty)
	require.NotEqual(t, ordered.ID, item.ID)
}

func TestReduceQuantityTransitions(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, r, 10)

	seeded := models.Item{UserID: userID, ProductID: product.ID, ItemQty: 2}
	require.NoError(t, r.DB.Create(&seeded).Error)

	item, deleted, err := r.ReduceQuantity(ctx, userID, seeded.ID)
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, uint(1), item.ItemQty)

	_, deleted, err = r.ReduceQuantity(ctx, userID, seeded.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, _, err = r.ReduceQuantity(ctx, userID, seeded.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateOrderAttachesItemsAndTotal(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	cheap := seedProduct(t, r, 10)
	pricey := seedProduct(t, r, 100)

	require.NoError(t, r.DB.Create(&models.Item{UserID: userID, ProductID: cheap.ID, ItemQty: 3}).Error)
	require.NoError(t, r.DB.Create(&models.Item{UserID: userID, ProductID: pricey.ID, ItemQty: 1}).Error)

	order, err := r.CreateOrder(ctx, userID, "Ab3Xy9")
	require.NoError(t, err)
	require.Equal(t, "Ab3Xy9", order.RefCode)
	require.False(t, order.Ordered)
	require.InDelta(t, 130.0, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	require.Equal(t, models.StatusNew, order.Status.Title)

	items, err := r.ViewCart(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCheckoutTransitions(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, r, 50)

	require.NoError(t, r.DB.Create(&models.Item{UserID: userID, ProductID: product.ID, ItemQty: 1}).Error)

	_, err := r.CreateOrder(ctx, userID, "zz99AA")
	require.NoError(t, err)

	address := models.Address{UserID: userID, Address1: "somewhere"}
	require.NoError(t, r.DB.Create(&address).Error)

	order, err := r.Checkout(ctx, userID, address.ID, "ring twice")
	require.NoError(t, err)
	require.True(t, order.Ordered)
	require.Equal(t, "ring twice", order.Note)
	require.Equal(t, models.StatusProcessing, order.Status.Title)
	require.Equal(t, address.ID, *order.AddressID)

	// no pending order remains
	_, err = r.Checkout(ctx, userID, address.ID, "")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
