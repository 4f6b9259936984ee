package service

import (
	"context"

	"github.com/Suraj8267/Tourist/module/core/domain"
	"github.com/Suraj8267/Tourist/module/core/internal/repository/database"
)

type TouristService struct {
	repo database.TouristRepository
}

func NewTouristService(repo database.TouristRepository) *TouristService {
	return &TouristService{repo: repo}
}

func (s *TouristService) Get(ctx context.Context, touristID string) (*domain.Tourist, error) {
	return s.repo.GetByID(ctx, touristID)
}
