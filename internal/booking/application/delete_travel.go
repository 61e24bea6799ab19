package application

import (
	"context"
	"fmt"

	"github.com/viajabus/booking/internal/booking/domain"
	pkgApp "github.com/viajabus/booking/pkg/application"
)

// DeleteTravelInput identifies the travel to remove.
type DeleteTravelInput struct {
	ID int64 `json:"id"`
}

// DeleteTravel removes a scheduled travel. Passengers and buyers referencing
// it are left in place; deletion is orphaning-tolerant.
type DeleteTravel struct {
	travels domain.TravelRepository
	events  EventBus
	logger  pkgApp.AppLogger
}

func NewDeleteTravel(travels domain.TravelRepository, events EventBus, logger pkgApp.AppLogger) *DeleteTravel {
	return &DeleteTravel{travels: travels, events: events, logger: logger}
}

func (uc *DeleteTravel) Execute(ctx context.Context, input DeleteTravelInput) (*domain.Travel, error) {
	travel, err := uc.travels.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("loading travel: %w", err)
	}
	if travel == nil {
		return nil, domain.NewNotFoundError("travel not found")
	}

	deleted, err := uc.travels.Delete(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("deleting travel: %w", err)
	}

	uc.logger.Info(ctx, "travel deleted", map[string]interface{}{"travel_id": deleted.ID})
	publish(ctx, uc.events, uc.logger, NewTravelDeletedEvent(fmt.Sprintf("travel %d removed", deleted.ID)))

	return deleted, nil
}
