package service

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"strings"
	"time"
)

type (
	ServiceService interface {
		SaveService(ctx context.Context, req domain.SaveServiceRequest) (*domain.ServiceResponse, error)
		GetServices(ctx context.Context) ([]*domain.ServiceResponse, error)
		GetServiceByName(ctx context.Context, name string) (*domain.ServiceResponse, error)
		DeleteService(ctx context.Context, name string) error
	}

	serviceService struct {
		catalog ServiceCatalog
	}
)

func NewServiceService(catalog ServiceCatalog) ServiceService {
	return &serviceService{catalog: catalog}
}

func (s *serviceService) SaveService(ctx context.Context, req domain.SaveServiceRequest) (*domain.ServiceResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrServiceNameRequired
	}
	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.ContactInfo) == "" {
		return nil, domain.ErrServiceFieldsRequired
	}
	if req.PickupRadius < 0 {
		return nil, domain.ErrInvalidPickupRadius
	}

	serviceType, ok := entities.ParseServiceType(req.ServiceType)
	if !ok {
		return nil, domain.ErrInvalidServiceType
	}

	hours, err := hoursFromEntries(req.Hours)
	if err != nil {
		return nil, err
	}

	service := &entities.LocalService{
		Name:                 strings.TrimSpace(req.Name),
		Description:          req.Description,
		Address:              strings.TrimSpace(req.Address),
		ContactInfo:          strings.TrimSpace(req.ContactInfo),
		City:                 req.City,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		PickupAvailable:      req.PickupAvailable,
		PickupRadius:         req.PickupRadius,
		AcceptsFoodDonations: req.AcceptsFoodDonations,
		ServiceType:          serviceType,
		Hours:                hours,
		AcceptedItems:        trimmedList(req.AcceptedItems),
		NonAcceptedItems:     trimmedList(req.NonAcceptedItems),
		DonationGuidelines:   trimmedList(req.DonationGuidelines),
	}

	// A service saved without hours gets the default Monday-Friday 9-5.
	if len(service.Hours) == 0 {
		service.Hours = entities.DefaultWeeklyHours()
	}

	if existing := s.catalog.FindByName(service.Name); existing != nil {
		service.ID = existing.ID
	}

	if err := s.catalog.Add(ctx, service); err != nil {
		return nil, err
	}

	res := ToServiceResponse(service)
	return &res, nil
}

func (s *serviceService) GetServices(ctx context.Context) ([]*domain.ServiceResponse, error) {
	services := s.catalog.All()
	result := make([]*domain.ServiceResponse, 0, len(services))
	for _, service := range services {
		res := ToServiceResponse(service)
		result = append(result, &res)
	}
	return result, nil
}

func (s *serviceService) GetServiceByName(ctx context.Context, name string) (*domain.ServiceResponse, error) {
	service := s.catalog.FindByName(name)
	if service == nil {
		return nil, domain.ErrServiceNotFound
	}
	res := ToServiceResponse(service)
	return &res, nil
}

func (s *serviceService) DeleteService(ctx context.Context, name string) error {
	if s.catalog.FindByName(name) == nil {
		return domain.ErrServiceNotFound
	}
	return s.catalog.Remove(ctx, name)
}

func hoursFromEntries(entries []domain.HoursEntry) (entities.WeeklyHours, error) {
	hours := entities.WeeklyHours{}
	for _, entry := range entries {
		day, ok := entities.WeekdayFromIndex(entry.DayOfWeek)
		if !ok {
			return nil, domain.ErrInvalidTimeSlot
		}
		open, err := time.Parse("15:04", entry.OpenTime)
		if err != nil {
			return nil, domain.ErrInvalidTimeSlot
		}
		close_, err := time.Parse("15:04", entry.CloseTime)
		if err != nil {
			return nil, domain.ErrInvalidTimeSlot
		}
		if close_.Before(open) {
			return nil, domain.ErrInvalidTimeSlot
		}
		hours[day] = entities.TimeSlot{Open: entry.OpenTime, Close: entry.CloseTime}
	}
	return hours, nil
}

func trimmedList(values []string) []string {
	var result []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func ToServiceResponse(service *entities.LocalService) domain.ServiceResponse {
	hours := make([]domain.HoursEntry, 0, len(service.Hours))
	for day, slot := range service.Hours {
		hours = append(hours, domain.HoursEntry{
			DayOfWeek: entities.DayIndex(day),
			OpenTime:  slot.Open,
			CloseTime: slot.Close,
		})
	}

	return domain.ServiceResponse{
		ID:                   service.ID.String(),
		Name:                 service.Name,
		Description:          service.Description,
		Address:              service.Address,
		ContactInfo:          service.ContactInfo,
		City:                 service.CityName(),
		Latitude:             service.Latitude,
		Longitude:            service.Longitude,
		PickupAvailable:      service.PickupAvailable,
		PickupRadius:         service.PickupRadius,
		AcceptsFoodDonations: service.AcceptsFoodDonations,
		ServiceType:          string(service.ServiceType),
		Hours:                hours,
		AcceptedItems:        service.AcceptedItems,
		NonAcceptedItems:     service.NonAcceptedItems,
		DonationGuidelines:   service.DonationGuidelines,
		CalculatedDistance:   service.CalculatedDistance,
	}
}
