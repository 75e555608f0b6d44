package service

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// ServiceRepository stores LocalService aggregates: the service row plus
	// its operating hours, accepted/non-accepted items and donation
	// guidelines, written and read as one consistent unit. Writes are
	// serialized; at most one aggregate transaction is in flight at a time.
	ServiceRepository interface {
		SaveServiceAggregate(ctx context.Context, service *entities.LocalService) error
		LoadServiceAggregate(ctx context.Context, id uuid.UUID) (*entities.LocalService, error)
		GetServiceByName(ctx context.Context, name string) (*entities.LocalService, error)
		GetAllServices(ctx context.Context) ([]*entities.LocalService, error)
		DeleteService(ctx context.Context, id uuid.UUID) error
	}

	serviceRepository struct {
		db *gorm.DB
		mu sync.Mutex
	}
)

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// serviceUpsertColumns are refreshed when the service name already exists.
var serviceUpsertColumns = []string{
	"description", "address", "contactInfo", "latitude", "longitude",
	"pickupAvailable", "pickupRadius", "acceptsFoodDonations", "serviceType",
}

// SaveServiceAggregate upserts the service row and fully replaces the four
// child collections inside a single transaction. Any failure rolls the whole
// aggregate back; the persisted state always mirrors the in-memory state at
// save time.
func (r *serviceRepository) SaveServiceAggregate(ctx context.Context, service *entities.LocalService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns(serviceUpsertColumns),
		}).Create(service).Error; err != nil {
			return err
		}

		// On conflict the insert does not report the existing key back;
		// re-read it so the child rows attach to the right aggregate.
		var row entities.LocalService
		if err := tx.Select("id").Where("name = ?", service.Name).First(&row).Error; err != nil {
			return err
		}
		service.ID = row.ID

		if err := replaceChildren(tx, service.ID, &entities.OperatingHour{}, hourRows(service)); err != nil {
			return err
		}
		if err := replaceChildren(tx, service.ID, &entities.AcceptedItem{}, acceptedRows(service)); err != nil {
			return err
		}
		if err := replaceChildren(tx, service.ID, &entities.NonAcceptedItem{}, nonAcceptedRows(service)); err != nil {
			return err
		}
		return replaceChildren(tx, service.ID, &entities.DonationGuideline{}, guidelineRows(service))
	})
	if err != nil {
		log.Printf("failed to save service aggregate %q: %v", service.Name, err)
		return fmt.Errorf("%w: save service aggregate %q: %v", domain.ErrStorageFailure, service.Name, err)
	}
	return nil
}

// replaceChildren deletes every child row of the aggregate and re-inserts
// the current in-memory collection. Full replace, not incremental diff.
func replaceChildren(tx *gorm.DB, serviceID uuid.UUID, model any, rows []any) error {
	if err := tx.Where(`"serviceId" = ?`, serviceID).Delete(model).Error; err != nil {
		return err
	}
	for _, row := range rows {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func hourRows(service *entities.LocalService) []any {
	rows := make([]any, 0, len(service.Hours))
	for day, slot := range service.Hours {
		rows = append(rows, &entities.OperatingHour{
			ID:        uuid.New(),
			ServiceID: service.ID,
			DayOfWeek: entities.DayIndex(day),
			OpenTime:  slot.Open,
			CloseTime: slot.Close,
		})
	}
	return rows
}

func acceptedRows(service *entities.LocalService) []any {
	rows := make([]any, 0, len(service.AcceptedItems))
	for _, name := range service.AcceptedItems {
		rows = append(rows, &entities.AcceptedItem{ID: uuid.New(), ServiceID: service.ID, ItemName: name})
	}
	return rows
}

func nonAcceptedRows(service *entities.LocalService) []any {
	rows := make([]any, 0, len(service.NonAcceptedItems))
	for _, name := range service.NonAcceptedItems {
		rows = append(rows, &entities.NonAcceptedItem{ID: uuid.New(), ServiceID: service.ID, ItemName: name})
	}
	return rows
}

func guidelineRows(service *entities.LocalService) []any {
	rows := make([]any, 0, len(service.DonationGuidelines))
	for _, guideline := range service.DonationGuidelines {
		rows = append(rows, &entities.DonationGuideline{ID: uuid.New(), ServiceID: service.ID, Guideline: guideline})
	}
	return rows
}

func (r *serviceRepository) LoadServiceAggregate(ctx context.Context, id uuid.UUID) (*entities.LocalService, error) {
	return r.loadOne(ctx, "id = ?", id)
}

func (r *serviceRepository) GetServiceByName(ctx context.Context, name string) (*entities.LocalService, error) {
	return r.loadOne(ctx, "name = ?", name)
}

func (r *serviceRepository) loadOne(ctx context.Context, query string, args ...any) (*entities.LocalService, error) {
	var service entities.LocalService
	if err := r.db.WithContext(ctx).Where(query, args...).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: load service: %v", domain.ErrStorageFailure, err)
	}
	if err := r.loadChildren(ctx, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) GetAllServices(ctx context.Context) ([]*entities.LocalService, error) {
	var services []*entities.LocalService
	if err := r.db.WithContext(ctx).Order("name asc").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("%w: load services: %v", domain.ErrStorageFailure, err)
	}
	for _, service := range services {
		if err := r.loadChildren(ctx, service); err != nil {
			return nil, err
		}
	}
	return services, nil
}

func (r *serviceRepository) loadChildren(ctx context.Context, service *entities.LocalService) error {
	service.City = service.CityName()
	service.Hours = entities.WeeklyHours{}
	service.AcceptedItems = nil
	service.NonAcceptedItems = nil
	service.DonationGuidelines = nil

	var hours []entities.OperatingHour
	if err := r.db.WithContext(ctx).Where(`"serviceId" = ?`, service.ID).Find(&hours).Error; err != nil {
		return fmt.Errorf("%w: load operating hours for %q: %v", domain.ErrStorageFailure, service.Name, err)
	}
	for _, row := range hours {
		day, ok := entities.WeekdayFromIndex(row.DayOfWeek)
		if !ok {
			continue
		}
		service.Hours[day] = entities.TimeSlot{Open: row.OpenTime, Close: row.CloseTime}
	}

	var accepted []entities.AcceptedItem
	if err := r.db.WithContext(ctx).Where(`"serviceId" = ?`, service.ID).Find(&accepted).Error; err != nil {
		return fmt.Errorf("%w: load accepted items for %q: %v", domain.ErrStorageFailure, service.Name, err)
	}
	for _, row := range accepted {
		service.AcceptedItems = append(service.AcceptedItems, row.ItemName)
	}

	var nonAccepted []entities.NonAcceptedItem
	if err := r.db.WithContext(ctx).Where(`"serviceId" = ?`, service.ID).Find(&nonAccepted).Error; err != nil {
		return fmt.Errorf("%w: load non-accepted items for %q: %v", domain.ErrStorageFailure, service.Name, err)
	}
	for _, row := range nonAccepted {
		service.NonAcceptedItems = append(service.NonAcceptedItems, row.ItemName)
	}

	var guidelines []entities.DonationGuideline
	if err := r.db.WithContext(ctx).Where(`"serviceId" = ?`, service.ID).Find(&guidelines).Error; err != nil {
		return fmt.Errorf("%w: load donation guidelines for %q: %v", domain.ErrStorageFailure, service.Name, err)
	}
	for _, row := range guidelines {
		service.DonationGuidelines = append(service.DonationGuidelines, row.Guideline)
	}

	return nil
}

// DeleteService removes the service row and all of its child rows in one
// transaction.
func (r *serviceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&entities.OperatingHour{}, &entities.AcceptedItem{},
			&entities.NonAcceptedItem{}, &entities.DonationGuideline{},
		} {
			if err := tx.Where(`"serviceId" = ?`, id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entities.LocalService{}).Error
	})
	if err != nil {
		log.Printf("failed to delete service %s: %v", id, err)
		return fmt.Errorf("%w: delete service %s: %v", domain.ErrStorageFailure, id, err)
	}
	return nil
}
