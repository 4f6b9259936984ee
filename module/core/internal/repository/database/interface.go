package database

import (
	"context"
	"time"

	"github.com/Suraj8267/Tourist/module/core/domain"
)

type TouristRepository interface {
	GetByID(ctx context.Context, touristID string) (*domain.Tourist, error)
}

type LocationRepository interface {
	Upsert(ctx context.Context, loc *domain.TouristLocation) error
	UpdateStatus(ctx context.Context, touristID string, status domain.Status, updatedAt time.Time) error
	GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error)
	GetAll(ctx context.Context) ([]domain.DashboardLocation, error)
}
