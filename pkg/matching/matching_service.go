package matching

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"GreenCompost-Backend/pkg/service"
	"GreenCompost-Backend/pkg/user"
	"context"
	"sort"
)

type (
	// MatchingService pairs users with local services. Nearby lookups use the
	// city-name estimate; recommendations use coordinate distance. The two
	// paths measure differently on purpose and may disagree.
	MatchingService interface {
		FindNearbyServices(ctx context.Context, userID string, radiusKm float64) ([]*domain.ServiceResponse, error)
		RecommendBestService(ctx context.Context, userID string, serviceType string) (*domain.ServiceResponse, error)
		FindDonationServices(ctx context.Context) ([]*domain.ServiceResponse, error)
		FindNearbyUsers(ctx context.Context, userID string, radiusKm float64) ([]*domain.UserResponse, error)
	}

	matchingService struct {
		catalog        service.ServiceCatalog
		userRepository user.UserRepository
		defaultCity    string
	}
)

func NewMatchingService(catalog service.ServiceCatalog, userRepository user.UserRepository, defaultCity string) MatchingService {
	return &matchingService{
		catalog:        catalog,
		userRepository: userRepository,
		defaultCity:    defaultCity,
	}
}

func (s *matchingService) userCity(ctx context.Context, userID string) (*entities.User, string, error) {
	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if requester == nil {
		return nil, "", domain.ErrUserNotFound
	}
	city := requester.CityName()
	if city == "" {
		city = s.defaultCity
	}
	return requester, city, nil
}

// FindNearbyServices returns every service whose estimated distance from the
// user's city falls within the radius, sorted nearest first. The estimate is
// stamped on every catalog service, inside the radius or not.
func (s *matchingService) FindNearbyServices(ctx context.Context, userID string, radiusKm float64) ([]*domain.ServiceResponse, error) {
	if radiusKm <= 0 {
		return nil, domain.ErrInvalidRadius
	}

	_, city, err := s.userCity(ctx, userID)
	if err != nil {
		return nil, err
	}

	var nearby []*entities.LocalService
	for _, svc := range s.catalog.All() {
		svc.CalculatedDistance = cityDistanceKm(city, svc.CityName())
		if svc.CalculatedDistance <= radiusKm {
			nearby = append(nearby, svc)
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].CalculatedDistance < nearby[j].CalculatedDistance
	})

	result := make([]*domain.ServiceResponse, 0, len(nearby))
	for _, svc := range nearby {
		res := service.ToServiceResponse(svc)
		result = append(result, &res)
	}
	return result, nil
}

// RecommendBestService picks the coordinate-closest service of the given
// type. Ties keep the first one seen. Returns (nil, nil) when no service of
// that type exists.
func (s *matchingService) RecommendBestService(ctx context.Context, userID string, serviceType string) (*domain.ServiceResponse, error) {
	parsed, ok := entities.ParseServiceType(serviceType)
	if !ok {
		return nil, domain.ErrInvalidServiceType
	}

	requester, _, err := s.userCity(ctx, userID)
	if err != nil {
		return nil, err
	}

	var best *entities.LocalService
	bestDistance := 0.0
	for _, svc := range s.catalog.FindByType(parsed) {
		distance := haversineKm(requester.Latitude, requester.Longitude, svc.Latitude, svc.Longitude)
		if best == nil || distance < bestDistance {
			best = svc
			bestDistance = distance
		}
	}
	if best == nil {
		return nil, nil
	}

	best.CalculatedDistance = bestDistance
	res := service.ToServiceResponse(best)
	return &res, nil
}

func (s *matchingService) FindDonationServices(ctx context.Context) ([]*domain.ServiceResponse, error) {
	var result []*domain.ServiceResponse
	for _, svc := range s.catalog.All() {
		if svc.AcceptsDonatedFood() {
			res := service.ToServiceResponse(svc)
			result = append(result, &res)
		}
	}
	return result, nil
}

// FindNearbyUsers applies the same city estimate between users, for
// neighbourhood sharing before anything reaches a service.
func (s *matchingService) FindNearbyUsers(ctx context.Context, userID string, radiusKm float64) ([]*domain.UserResponse, error) {
	if radiusKm <= 0 {
		return nil, domain.ErrInvalidRadius
	}

	requester, city, err := s.userCity(ctx, userID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	var result []*domain.UserResponse
	for _, other := range users {
		if other.ID == requester.ID {
			continue
		}
		otherCity := other.CityName()
		if otherCity == "" {
			otherCity = s.defaultCity
		}
		if cityDistanceKm(city, otherCity) > radiusKm {
			continue
		}
		result = append(result, &domain.UserResponse{
			ID:         other.ID.String(),
			Username:   other.Username,
			Name:       other.Name,
			Email:      other.Email,
			Location:   other.Location,
			City:       otherCity,
			Latitude:   other.Latitude,
			Longitude:  other.Longitude,
			RememberMe: other.RememberMe,
			CreatedAt:  other.CreatedAt,
		})
	}
	return result, nil
}
