package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceCityName(t *testing.T) {
	svc := &LocalService{Address: "12 Abbey Street, Dublin, Ireland"}
	assert.Equal(t, "Dublin", svc.CityName())

	svc = &LocalService{Address: "nowhere"}
	assert.Equal(t, "Unknown", svc.CityName())

	svc = &LocalService{Address: "12 Abbey Street, Dublin, Ireland", City: "Cork"}
	assert.Equal(t, "Cork", svc.CityName())
}

func TestAcceptsDonatedFood(t *testing.T) {
	byType := []ServiceType{
		ServiceTypeFoodBank,
		ServiceTypeFoodDonationCenter,
		ServiceTypeSoupKitchen,
		ServiceTypeFoodPantry,
	}
	for _, serviceType := range byType {
		svc := &LocalService{ServiceType: serviceType}
		assert.True(t, svc.AcceptsDonatedFood(), string(serviceType))
	}

	garden := &LocalService{ServiceType: ServiceTypeCommunityGarden}
	assert.False(t, garden.AcceptsDonatedFood())

	garden.AcceptsFoodDonations = true
	assert.True(t, garden.AcceptsDonatedFood())
}

func TestUserCityName(t *testing.T) {
	u := &User{Location: "Dublin, Ireland"}
	assert.Equal(t, "Dublin", u.CityName())

	u = &User{Location: "Galway"}
	assert.Equal(t, "Galway", u.CityName())

	u = &User{}
	assert.Equal(t, "", u.CityName())

	u = &User{Location: "Dublin, Ireland", City: "Cork"}
	assert.Equal(t, "Cork", u.CityName())
}
