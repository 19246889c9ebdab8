package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
)

func (r *GormRepo) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.DB.WithContext(ctx).Preload("City").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormRepo) CreateAddress(ctx context.Context, address *models.Address) error {
	return r.DB.WithContext(ctx).Create(address).Error
}

type UpdateAddressFields struct {
	WorkAddress bool
	Address1    string
	Address2    string
	CityID      *uuid.UUID
	Phone       string
}

// UpdateAddress is a full-field update: every column is overwritten with
// the request values, matching the update-address endpoint contract.
func (r *GormRepo) UpdateAddress(ctx context.Context, id uuid.UUID, req UpdateAddressFields) (*models.Address, error) {
	var address models.Address
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&address).Error; err != nil {
		return nil, err
	}

	address.WorkAddress = req.WorkAddress
	address.Address1 = req.Address1
	address.Address2 = req.Address2
	address.CityID = req.CityID
	address.Phone = req.Phone

	if err := r.DB.WithContext(ctx).Save(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *GormRepo) ListCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *GormRepo) GetCity(ctx context.Context, id uuid.UUID) (*models.City, error) {
	var city models.City
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *GormRepo) CreateCity(ctx context.Context, city *models.City) error {
	return r.DB.WithContext(ctx).Create(city).Error
}

func (r *GormRepo) UpdateCity(ctx context.Context, id uuid.UUID, name string) (*models.City, error) {
	var city models.City
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}

	city.Name = name
	if err := r.DB.WithContext(ctx).Save(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *GormRepo) DeleteCity(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.City{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
