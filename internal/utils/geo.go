package utils

import (
	"math"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EncodeCell converts a location to a geohash cell at the given precision
func EncodeCell(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CellNeighbors returns the 8 neighboring cells of a geohash cell
func CellNeighbors(cell string) []string {
	return geohash.Neighbors(cell)
}

// SearchCells returns the pickup's own cell plus its 8 neighbors, the
// coarse candidate area for a proximity search.
func SearchCells(location models.Location, precision uint) []string {
	cell := EncodeCell(location, precision)
	return append([]string{cell}, CellNeighbors(cell)...)
}

// PlanarDistance computes the squared Euclidean distance between two
// points in raw coordinate-degree space. It is not a geodesic distance;
// it only has to produce a stable nearest-first ordering over the short
// ranges local dispatch operates at, and the squared form preserves
// that ordering without the sqrt.
func PlanarDistance(a, b models.Location) float64 {
	dLat := a.Latitude - b.Latitude
	dLng := a.Longitude - b.Longitude
	return dLat*dLat + dLng*dLng
}

// HaversineKm calculates the great-circle distance between two points
// in kilometers. Used for radius bounds, not for candidate ordering.
func HaversineKm(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
