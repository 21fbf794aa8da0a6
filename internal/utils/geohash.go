package utils

import (
	"math"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean Earth radius used for great-circle distances
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates in kilometers
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// LocationDistanceKm is DistanceKm for two Location values
func LocationDistanceKm(from, to models.Location) float64 {
	return DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CoveringPrecision returns the longest geohash precision, at most
// maxPrecision, whose 3x3 cell block around location holds every point within
// radiusKm of it. Zero means no precision qualifies and the search must not be
// prefiltered by geohash.
func CoveringPrecision(location models.Location, radiusKm float64, maxPrecision uint) uint {
	if radiusKm <= 0 {
		return 0
	}
	for p := maxPrecision; p > 0; p-- {
		box := geohash.BoundingBox(EncodeLocation(location, p))
		height := box.MaxLat - box.MinLat
		width := box.MaxLng - box.MinLng

		// the driver may sit on any edge of the center cell, so one neighbor
		// row or column is all the reach there is
		if DistanceKm(0, 0, height, 0) < radiusKm {
			continue
		}
		poleward := math.Min(90, math.Max(math.Abs(box.MinLat-height), math.Abs(box.MaxLat+height)))
		if DistanceKm(poleward, 0, poleward, width) < radiusKm {
			continue
		}
		return p
	}
	return 0
}

// CoveringPrefixes returns the geohash cell of the location plus its eight
// neighbors, so a radius search near a cell border still sees nearby rows.
func CoveringPrefixes(location models.Location, precision uint) []string {
	center := EncodeLocation(location, precision)
	prefixes := make([]string, 0, 9)
	prefixes = append(prefixes, center)
	prefixes = append(prefixes, geohash.Neighbors(center)...)
	return prefixes
}
