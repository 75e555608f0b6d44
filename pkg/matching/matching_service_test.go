package matching

import (
	"GreenCompost-Backend/domain"
	"GreenCompost-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	services []*entities.LocalService
}

func (c *fakeCatalog) Rehydrate(ctx context.Context) error { return nil }
func (c *fakeCatalog) Flush(ctx context.Context) error     { return nil }

func (c *fakeCatalog) All() []*entities.LocalService { return c.services }

func (c *fakeCatalog) FindByName(name string) *entities.LocalService {
	for _, svc := range c.services {
		if svc.Name == name {
			return svc
		}
	}
	return nil
}

func (c *fakeCatalog) FindByType(serviceType entities.ServiceType) []*entities.LocalService {
	var result []*entities.LocalService
	for _, svc := range c.services {
		if svc.ServiceType == serviceType {
			result = append(result, svc)
		}
	}
	return result
}

func (c *fakeCatalog) Add(ctx context.Context, service *entities.LocalService) error {
	c.services = append(c.services, service)
	return nil
}

func (c *fakeCatalog) Remove(ctx context.Context, name string) error { return nil }

type fakeUserStore struct {
	users []*entities.User
}

func (s *fakeUserStore) SaveUser(ctx context.Context, user *entities.User) error { return nil }

func (s *fakeUserStore) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, user := range s.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return nil, nil
}

func (s *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, nil
}

func (s *fakeUserStore) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return s.users, nil
}

func (s *fakeUserStore) UpdateUserPassword(ctx context.Context, username string, password string) error {
	return nil
}

func (s *fakeUserStore) SetRememberedUser(ctx context.Context, username string, remember bool) error {
	return nil
}

func (s *fakeUserStore) GetRememberedUser(ctx context.Context) (*entities.User, error) {
	return nil, nil
}

func dublinUser() *entities.User {
	return &entities.User{
		ID:        uuid.New(),
		Username:  "aoife",
		Location:  "Dublin, Ireland",
		Latitude:  53.3498,
		Longitude: -6.2603,
	}
}

func serviceIn(name, city string, serviceType entities.ServiceType) *entities.LocalService {
	return &entities.LocalService{
		ID:          uuid.New(),
		Name:        name,
		Address:     "1 Main Street, " + city + ", Somewhere",
		ServiceType: serviceType,
	}
}

func TestCityDistanceBuckets(t *testing.T) {
	// The draws are random inside fixed buckets; many rounds pin the range.
	for i := 0; i < 200; i++ {
		same := cityDistanceKm("Dublin", "dublin")
		assert.GreaterOrEqual(t, same, 1.0)
		assert.Less(t, same, 10.0)

		domestic := cityDistanceKm("Dublin", "Cork")
		assert.GreaterOrEqual(t, domestic, 20.0)
		assert.Less(t, domestic, 100.0)

		international := cityDistanceKm("Dublin", "Paris")
		assert.GreaterOrEqual(t, international, 500.0)
		assert.Less(t, international, 5000.0)

		// A city outside every known group still gets an international
		// estimate, not the sentinel.
		unknown := cityDistanceKm("Dublin", "Atlantis")
		assert.GreaterOrEqual(t, unknown, 500.0)
		assert.Less(t, unknown, 5000.0)
	}

	// Only a missing city name yields the sentinel.
	assert.Equal(t, float64(unknownCityDistanceKm), cityDistanceKm("", "Dublin"))
	assert.Equal(t, float64(unknownCityDistanceKm), cityDistanceKm("Dublin", ""))
}

func TestHaversine(t *testing.T) {
	// Dublin to Cork is roughly 220 km.
	d := haversineKm(53.3498, -6.2603, 51.8985, -8.4756)
	assert.InDelta(t, 220, d, 15)

	assert.InDelta(t, 0, haversineKm(53.3498, -6.2603, 53.3498, -6.2603), 0.001)
}

func TestFindNearbyServices(t *testing.T) {
	user := dublinUser()
	local := serviceIn("Dublin Food Bank", "Dublin", entities.ServiceTypeFoodBank)
	far := serviceIn("Paris Food Bank", "Paris", entities.ServiceTypeFoodBank)
	catalog := &fakeCatalog{services: []*entities.LocalService{local, far}}

	svc := NewMatchingService(catalog, &fakeUserStore{users: []*entities.User{user}}, "Dublin")
	ctx := context.Background()

	_, err := svc.FindNearbyServices(ctx, user.ID.String(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRadius)

	// Same-city estimates never exceed 10 km, international never drop
	// below 500, so a 15 km radius always splits the two.
	for i := 0; i < 50; i++ {
		res, err := svc.FindNearbyServices(ctx, user.ID.String(), 15)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Dublin Food Bank", res[0].Name)
	}

	// The estimate is stamped on every service, inside the radius or not.
	assert.Greater(t, far.CalculatedDistance, 0.0)
}

func TestFindNearbyServicesUnknownUser(t *testing.T) {
	svc := NewMatchingService(&fakeCatalog{}, &fakeUserStore{}, "Dublin")

	_, err := svc.FindNearbyServices(context.Background(), uuid.New().String(), 10)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRecommendBestService(t *testing.T) {
	user := dublinUser()
	near := serviceIn("Dublin Food Bank", "Dublin", entities.ServiceTypeFoodBank)
	near.Latitude, near.Longitude = 53.35, -6.26
	farAway := serviceIn("Cork Food Bank", "Cork", entities.ServiceTypeFoodBank)
	farAway.Latitude, farAway.Longitude = 51.8985, -8.4756
	compost := serviceIn("Ringsend Composting", "Dublin", entities.ServiceTypeCompostingFacility)

	catalog := &fakeCatalog{services: []*entities.LocalService{farAway, near, compost}}
	svc := NewMatchingService(catalog, &fakeUserStore{users: []*entities.User{user}}, "Dublin")
	ctx := context.Background()

	_, err := svc.RecommendBestService(ctx, user.ID.String(), "LAUNDROMAT")
	assert.ErrorIs(t, err, domain.ErrInvalidServiceType)

	res, err := svc.RecommendBestService(ctx, user.ID.String(), "FOOD_BANK")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Dublin Food Bank", res.Name)
	assert.Greater(t, res.CalculatedDistance, 0.0)

	none, err := svc.RecommendBestService(ctx, user.ID.String(), "URBAN_FARM")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRecommendTieKeepsFirst(t *testing.T) {
	user := dublinUser()
	first := serviceIn("First", "Dublin", entities.ServiceTypeFoodBank)
	second := serviceIn("Second", "Dublin", entities.ServiceTypeFoodBank)
	first.Latitude, first.Longitude = 53.35, -6.26
	second.Latitude, second.Longitude = 53.35, -6.26

	catalog := &fakeCatalog{services: []*entities.LocalService{first, second}}
	svc := NewMatchingService(catalog, &fakeUserStore{users: []*entities.User{user}}, "Dublin")

	res, err := svc.RecommendBestService(context.Background(), user.ID.String(), "FOOD_BANK")
	require.NoError(t, err)
	assert.Equal(t, "First", res.Name)
}

func TestFindDonationServices(t *testing.T) {
	bank := serviceIn("Dublin Food Bank", "Dublin", entities.ServiceTypeFoodBank)
	compost := serviceIn("Ringsend Composting", "Dublin", entities.ServiceTypeCompostingFacility)
	garden := serviceIn("Liberties Garden", "Dublin", entities.ServiceTypeCommunityGarden)
	garden.AcceptsFoodDonations = true

	catalog := &fakeCatalog{services: []*entities.LocalService{bank, compost, garden}}
	svc := NewMatchingService(catalog, &fakeUserStore{}, "Dublin")

	res, err := svc.FindDonationServices(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)

	names := []string{res[0].Name, res[1].Name}
	assert.Contains(t, names, "Dublin Food Bank")
	assert.Contains(t, names, "Liberties Garden")
}

func TestFindNearbyUsers(t *testing.T) {
	me := dublinUser()
	neighbour := &entities.User{ID: uuid.New(), Username: "liam", Location: "Dublin, Ireland"}
	abroad := &entities.User{ID: uuid.New(), Username: "camille", Location: "Paris, France"}

	store := &fakeUserStore{users: []*entities.User{me, neighbour, abroad}}
	svc := NewMatchingService(&fakeCatalog{}, store, "Dublin")
	ctx := context.Background()

	_, err := svc.FindNearbyUsers(ctx, me.ID.String(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidRadius)

	for i := 0; i < 50; i++ {
		res, err := svc.FindNearbyUsers(ctx, me.ID.String(), 15)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "liam", res[0].Username)
	}
}
