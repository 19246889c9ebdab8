package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/repo"
)

const refCodeLen = 6

const refCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type OrderService struct {
	Repo *repo.GormRepo
}

// GenerateRefCode returns a short random order reference. No uniqueness
// check: collisions are accepted as low-probability noise.
func GenerateRefCode() string {
	code := make([]byte, refCodeLen)
	for i := range code {
		code[i] = refCodeAlphabet[rand.Intn(len(refCodeAlphabet))]
	}
	return string(code)
}

func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	return s.Repo.CreateOrder(ctx, userID, GenerateRefCode())
}

func (s *OrderService) Checkout(ctx context.Context, userID, addressID uuid.UUID, note string) (*models.Order, error) {
	if addressID == uuid.Nil {
		return nil, fmt.Errorf("address_id required: %w", ErrValidation)
	}
	order, err := s.Repo.Checkout(ctx, userID, addressID, note)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	return order, err
}
