package calculator

import (
	"math"

	"github.com/mmynk/loofinder/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance between a and b in
// kilometers, rounded to one decimal place.
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	c = 2·atan2(√a, √(1−a))
//	d = EarthRadiusKm · c
func Distance(from, to models.Coordinate) float64 {
	dLat := degreesToRadians(to.Lat - from.Lat)
	dLon := degreesToRadians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(from.Lat))*math.Cos(degreesToRadians(to.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return RoundTenth(EarthRadiusKm * c)
}

// RoundTenth rounds x to one decimal place, halves away from zero.
func RoundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
