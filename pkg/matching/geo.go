package matching

import (
	"math"
	"math/rand"
	"strings"
)

const earthRadiusKm = 6371.0

// haversineKm is the great-circle distance between two coordinate pairs.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// countryGroups bucket the known cities. Two cities in the same group are
// treated as domestic; anything else is international.
var countryGroups = [][]string{
	{"dublin", "cork", "galway", "limerick", "waterford"},
	{"london", "belfast", "glasgow", "edinburgh", "cardiff"},
	{"new york", "san francisco", "los angeles", "chicago", "boston"},
	{"paris", "lyon", "marseille", "bordeaux", "nice"},
	{"berlin", "munich", "hamburg", "cologne", "frankfurt"},
}

func groupOf(city string) int {
	city = strings.ToLower(strings.TrimSpace(city))
	for i, group := range countryGroups {
		for _, known := range group {
			if known == city {
				return i
			}
		}
	}
	return -1
}

const unknownCityDistanceKm = 999

// cityDistanceKm estimates the distance between two cities by name. Same
// city draws from [1, 10), same country group from [20, 100), everything
// else from [500, 5000). A missing city name gets a fixed sentinel.
func cityDistanceKm(cityA, cityB string) float64 {
	a := strings.ToLower(strings.TrimSpace(cityA))
	b := strings.ToLower(strings.TrimSpace(cityB))

	if a == "" || b == "" {
		return unknownCityDistanceKm
	}
	if a == b {
		return 1 + rand.Float64()*9
	}

	groupA, groupB := groupOf(a), groupOf(b)
	if groupA >= 0 && groupA == groupB {
		return 20 + rand.Float64()*80
	}
	return 500 + rand.Float64()*4500
}
