package optimizer

import (
	"fmt"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// PickupStopID and DeliveryStopID derive stable stop ids from the order id
func PickupStopID(orderID string) string   { return fmt.Sprintf("%s-pickup", orderID) }
func DeliveryStopID(orderID string) string { return fmt.Sprintf("%s-delivery", orderID) }

// ProjectStops expands orders into route stops. An order yields a pickup stop
// when both pickup coordinates are set and a delivery stop when both delivery
// coordinates are set, pickup first. Orders are processed in input order.
func ProjectStops(orders []*models.TripRequest) []models.DeliveryStop {
	stops := make([]models.DeliveryStop, 0, len(orders)*2)

	for _, order := range orders {
		if order == nil {
			continue
		}

		priority := models.PriorityFlexible
		if order.IsASAP() {
			priority = models.PriorityASAP
		}
		materials := order.MaterialNames()

		if lat, lng, ok := order.Pickup.Coordinates(); ok {
			stops = append(stops, models.DeliveryStop{
				ID:                PickupStopID(order.ID),
				OrderID:           order.ID,
				Type:              models.StopTypePickup,
				Address:           order.Pickup.Address,
				Latitude:          lat,
				Longitude:         lng,
				Priority:          priority,
				EstimatedDuration: models.PickupStopMinutes,
				CustomerName:      order.CustomerName,
				CustomerPhone:     order.CustomerPhone,
				Materials:         materials,
			})
		}

		if lat, lng, ok := order.Delivery.Coordinates(); ok {
			stops = append(stops, models.DeliveryStop{
				ID:                DeliveryStopID(order.ID),
				OrderID:           order.ID,
				Type:              models.StopTypeDelivery,
				Address:           order.Delivery.Address,
				Latitude:          lat,
				Longitude:         lng,
				Priority:          priority,
				EstimatedDuration: models.DeliveryStopMinutes,
				CustomerName:      order.CustomerName,
				CustomerPhone:     order.CustomerPhone,
				Materials:         materials,
			})
		}
	}

	return stops
}
