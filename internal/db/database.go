package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
)

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Vendor{},
		&models.Category{},
		&models.Product{},
		&models.City{},
		&models.Address{},
		&models.Item{},
		&models.OrderStatus{},
		&models.Order{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return SeedOrderStatuses(db)
}

// SeedOrderStatuses makes sure the two lifecycle statuses every order
// depends on exist: NEW (the default for fresh orders) and PROCESSING.
func SeedOrderStatuses(db *gorm.DB) error {
	statuses := []models.OrderStatus{
		{Title: models.StatusNew, IsDefault: true},
		{Title: models.StatusProcessing},
	}
	for i := range statuses {
		var existing models.OrderStatus
		err := db.Where("title = ?", statuses[i].Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed statuses: %w", err)
		}
		if err := db.Create(&statuses[i]).Error; err != nil {
			return fmt.Errorf("seed statuses: %w", err)
		}
	}
	return nil
}
