package optimizer

import (
	"math"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
)

// Defaults for Params
const (
	DefaultFuelCostPerKm  = 0.8
	DefaultBaselineFactor = 1.3
	DefaultMinutesPerKm   = 2.0

	baseEfficiencyScore = 60
	asapScoreBonus      = 15
	maxEfficiencyScore  = 95
)

// Params tunes metric estimation
type Params struct {
	FuelCostPerKm float64
	// BaselineFactor approximates the distance an unoptimized visit order
	// would cover, as a multiple of the sequenced distance.
	BaselineFactor float64
	MinutesPerKm   float64
}

// DefaultParams returns the production defaults
func DefaultParams() Params {
	return Params{
		FuelCostPerKm:  DefaultFuelCostPerKm,
		BaselineFactor: DefaultBaselineFactor,
		MinutesPerKm:   DefaultMinutesPerKm,
	}
}

func (p Params) withDefaults() Params {
	if p.FuelCostPerKm <= 0 {
		p.FuelCostPerKm = DefaultFuelCostPerKm
	}
	if p.BaselineFactor < 1 {
		p.BaselineFactor = DefaultBaselineFactor
	}
	if p.MinutesPerKm <= 0 {
		p.MinutesPerKm = DefaultMinutesPerKm
	}
	return p
}

// Estimate computes the metrics of an already sequenced stop list
func Estimate(stops []models.DeliveryStop, params Params) models.RouteMetrics {
	params = params.withDefaults()

	metrics := models.RouteMetrics{
		RouteCoordinates: make([]models.Coordinate, 0, len(stops)),
	}

	hasASAP := false
	for i, stop := range stops {
		metrics.RouteCoordinates = append(metrics.RouteCoordinates, models.Coordinate{
			Lat: stop.Latitude,
			Lng: stop.Longitude,
		})
		metrics.TotalDuration += float64(stop.EstimatedDuration)
		if stop.Priority == models.PriorityASAP {
			hasASAP = true
		}

		if i+1 < len(stops) {
			next := stops[i+1]
			leg := utils.DistanceKm(stop.Latitude, stop.Longitude, next.Latitude, next.Longitude)
			metrics.TotalDistance += leg
			metrics.TotalDuration += leg * params.MinutesPerKm
		}
	}

	metrics.FuelCost = metrics.TotalDistance * params.FuelCostPerKm

	baseline := metrics.TotalDistance * params.BaselineFactor
	metrics.TimeSavings = nonNegativeRound((baseline - metrics.TotalDistance) * params.MinutesPerKm)
	if baseline > 0 {
		metrics.FuelSavings = nonNegativeRound((baseline - metrics.TotalDistance) / baseline * 100)
	}

	score := baseEfficiencyScore + metrics.FuelSavings
	if hasASAP {
		score += asapScoreBonus
	}
	metrics.EfficiencyScore = min(maxEfficiencyScore, score)

	return metrics
}

func nonNegativeRound(v float64) int {
	return int(math.Max(0, math.Round(v)))
}
