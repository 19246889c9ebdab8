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

type AddressService struct {
	Repo *repo.GormRepo
}

func (s *AddressService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	addresses, err := s.Repo.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, fmt.Errorf("no addresses found: %w", ErrEmpty)
	}
	return addresses, nil
}

func (s *AddressService) CreateAddress(ctx context.Context, address *models.Address) error {
	if address.Address1 == "" {
		return fmt.Errorf("address1 required: %w", ErrValidation)
	}
	return s.Repo.CreateAddress(ctx, address)
}

func (s *AddressService) UpdateAddress(ctx context.Context, id uuid.UUID, req repo.UpdateAddressFields) (*models.Address, error) {
	address, err := s.Repo.UpdateAddress(ctx, id, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("address: %w", ErrNotFound)
	}
	return address, err
}

func (s *AddressService) ListCities(ctx context.Context) ([]models.City, error) {
	cities, err := s.Repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("no cities found: %w", ErrEmpty)
	}
	return cities, nil
}

func (s *AddressService) GetCity(ctx context.Context, id uuid.UUID) (*models.City, error) {
	city, err := s.Repo.GetCity(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("city: %w", ErrNotFound)
	}
	return city, err
}

func (s *AddressService) CreateCity(ctx context.Context, city *models.City) error {
	if city.Name == "" {
		return fmt.Errorf("name required: %w", ErrValidation)
	}
	return s.Repo.CreateCity(ctx, city)
}

func (s *AddressService) UpdateCity(ctx context.Context, id uuid.UUID, name string) (*models.City, error) {
	if name == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}
	city, err := s.Repo.UpdateCity(ctx, id, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("city: %w", ErrNotFound)
	}
	return city, err
}

func (s *AddressService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteCity(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("city: %w", ErrNotFound)
	}
	return err
}
