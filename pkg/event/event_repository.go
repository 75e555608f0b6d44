package event

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type (
	// EventRepository persists the event rows. Only the row columns are
	// stored; status, item set and requesting user are in-memory state
	// rebuilt by the event service.
	EventRepository interface {
		SaveEvent(ctx context.Context, event *entities.ScheduledEvent) error
		GetAllEvents(ctx context.Context) ([]*entities.ScheduledEvent, error)
		DeleteEvent(ctx context.Context, id string) error
	}

	eventRepository struct {
		db *gorm.DB
	}
)

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) SaveEvent(ctx context.Context, event *entities.ScheduledEvent) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		log.Printf("failed to save event %q: %v", event.Title, err)
		return fmt.Errorf("%w: save event %q: %v", domain.ErrStorageFailure, event.Title, err)
	}
	return nil
}

func (r *eventRepository) GetAllEvents(ctx context.Context) ([]*entities.ScheduledEvent, error) {
	var events []*entities.ScheduledEvent
	if err := r.db.WithContext(ctx).Order(`"startTime" asc`).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("%w: load events: %v", domain.ErrStorageFailure, err)
	}
	return events, nil
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ScheduledEvent{}).Error; err != nil {
		return fmt.Errorf("%w: delete event %s: %v", domain.ErrStorageFailure, id, err)
	}
	return nil
}
