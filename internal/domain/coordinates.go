package domain

import "math"

const earthRadiusMiles = 3958.8

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceMiles returns the great-circle distance in miles between two
// points, computed with the haversine formula.
func (c Coordinates) DistanceMiles(other Coordinates) float64 {
	dLat := degreesToRadians(other.Lat - c.Lat)
	dLon := degreesToRadians(other.Lon - c.Lon)

	rLat1 := degreesToRadians(c.Lat)
	rLat2 := degreesToRadians(other.Lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	h := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * h
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
