package publisher

import (
	"context"

	"github.com/Suraj8267/Tourist/module/core/domain"
)

type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert *domain.GeofenceAlert) error
}
