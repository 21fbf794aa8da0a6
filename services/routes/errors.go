package routes

import "errors"

var (
	// ErrNotEnoughOrders is returned when fewer than two orders are submitted
	ErrNotEnoughOrders = errors.New("at least 2 orders required for multi-stop optimization")
	// ErrNoRoutableStops is returned when no order carries usable coordinates
	ErrNoRoutableStops = errors.New("no order has routable coordinates")
)
