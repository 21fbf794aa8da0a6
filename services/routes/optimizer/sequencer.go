package optimizer

import (
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
)

// Sequence orders stops for visiting. ASAP pickups come first, visited by
// nearest neighbor from the start point. Each one is followed, in the same
// order, by its ASAP delivery. Everything left is visited by nearest
// neighbor from the last placed stop. A delivery never precedes the pickup
// of its own order. Distance ties keep the earlier stop.
//
// The start point is the driver location when known, otherwise the first
// input stop. The input slice is not modified.
func Sequence(stops []models.DeliveryStop, start *models.Location) []models.DeliveryStop {
	if len(stops) <= 1 {
		return append([]models.DeliveryStop(nil), stops...)
	}

	pos := stops[0].Location()
	if start != nil {
		pos = *start
	}

	var asapPickups, asapDeliveries, rest []models.DeliveryStop
	for _, s := range stops {
		switch {
		case s.Priority == models.PriorityASAP && s.Type == models.StopTypePickup:
			asapPickups = append(asapPickups, s)
		case s.Priority == models.PriorityASAP:
			asapDeliveries = append(asapDeliveries, s)
		default:
			rest = append(rest, s)
		}
	}

	ordered := make([]models.DeliveryStop, 0, len(stops))

	var placedPickups []models.DeliveryStop
	for len(asapPickups) > 0 {
		i := nearest(pos, asapPickups, nil)
		next := asapPickups[i]
		asapPickups = append(asapPickups[:i], asapPickups[i+1:]...)

		ordered = append(ordered, next)
		placedPickups = append(placedPickups, next)
		pos = next.Location()
	}

	for _, pickup := range placedPickups {
		for i, d := range asapDeliveries {
			if d.OrderID == pickup.OrderID {
				ordered = append(ordered, d)
				pos = d.Location()
				asapDeliveries = append(asapDeliveries[:i], asapDeliveries[i+1:]...)
				break
			}
		}
	}

	remaining := append(rest, asapDeliveries...)
	for len(remaining) > 0 {
		i := nearest(pos, remaining, remaining)
		next := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)

		ordered = append(ordered, next)
		pos = next.Location()
	}

	return ordered
}

// nearest returns the index of the candidate closest to pos. When pending is
// set, deliveries whose pickup is still in pending are skipped.
func nearest(pos models.Location, candidates, pending []models.DeliveryStop) int {
	best := -1
	bestDist := 0.0

	for i, c := range candidates {
		if pending != nil && blockedByPickup(c, pending) {
			continue
		}
		d := utils.DistanceKm(pos.Latitude, pos.Longitude, c.Latitude, c.Longitude)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	// Unreachable with well formed input, every delivery's pickup is a candidate too.
	if best == -1 {
		return 0
	}
	return best
}

func blockedByPickup(stop models.DeliveryStop, pending []models.DeliveryStop) bool {
	if stop.Type != models.StopTypeDelivery {
		return false
	}
	for _, p := range pending {
		if p.Type == models.StopTypePickup && p.OrderID == stop.OrderID {
			return true
		}
	}
	return false
}
