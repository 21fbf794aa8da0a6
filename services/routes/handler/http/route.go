package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes"
)

// RouteHandler handles HTTP requests for multi-stop routes
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{routeUC: routeUC}
}

// RegisterRoutes registers the route endpoints under /drivers/:driverID
func (h *RouteHandler) RegisterRoutes(g *echo.Group) {
	g.PUT("/location", h.UpdateLocation)

	routeGroup := g.Group("/routes")
	routeGroup.POST("/optimize", h.OptimizeRoute)
	routeGroup.GET("/active", h.GetActiveRoute)
	routeGroup.DELETE("/active", h.ClearRoute)
	routeGroup.GET("/next-stop", h.GetNextStop)
	routeGroup.POST("/start", h.StartRoute)
	routeGroup.POST("/:routeID/accept", h.AcceptRoute)
	routeGroup.POST("/stops/:stopID/complete", h.CompleteStop)
}

// OptimizeRoute builds a new route from the driver's assigned trips
func (h *RouteHandler) OptimizeRoute(c echo.Context) error {
	var req models.OptimizeRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.CurrentLocation != nil && !req.CurrentLocation.Valid() {
		return utils.BadRequestResponse(c, "current_location is out of range")
	}

	route, err := h.routeUC.OptimizeAssignedTrips(c.Request().Context(), c.Param("driverID"), req.TripIDs, req.CurrentLocation)
	if err != nil {
		return h.handleError(c, err, "Failed to optimize route")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Route optimized", route)
}

// GetActiveRoute returns the driver's current route
func (h *RouteHandler) GetActiveRoute(c echo.Context) error {
	route, err := h.routeUC.GetActiveRoute(c.Request().Context(), c.Param("driverID"))
	if err != nil {
		return h.handleError(c, err, "Failed to get active route")
	}
	if route == nil {
		return utils.NotFoundResponse(c, "No active route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", route)
}

// AcceptRoute accepts the pending route with the given id
func (h *RouteHandler) AcceptRoute(c echo.Context) error {
	ok, err := h.routeUC.AcceptRoute(c.Request().Context(), c.Param("driverID"), c.Param("routeID"))
	if err != nil {
		return h.handleError(c, err, "Failed to accept route")
	}
	if !ok {
		return utils.ConflictResponse(c, "Route is not the pending active route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route accepted", nil)
}

// StartRoute starts the accepted route
func (h *RouteHandler) StartRoute(c echo.Context) error {
	ok, err := h.routeUC.StartRoute(c.Request().Context(), c.Param("driverID"))
	if err != nil {
		return h.handleError(c, err, "Failed to start route")
	}
	if !ok {
		return utils.ConflictResponse(c, "No accepted route to start")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route started", nil)
}

// CompleteStop marks a stop of the in-progress route as served
func (h *RouteHandler) CompleteStop(c echo.Context) error {
	stop, err := h.routeUC.CompleteStop(c.Request().Context(), c.Param("driverID"), c.Param("stopID"))
	if err != nil {
		return h.handleError(c, err, "Failed to complete stop")
	}
	if stop == nil {
		return utils.ConflictResponse(c, "Stop is not on an in-progress route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stop completed", stop)
}

// GetNextStop returns the next stop to serve
func (h *RouteHandler) GetNextStop(c echo.Context) error {
	stop, err := h.routeUC.GetNextStop(c.Request().Context(), c.Param("driverID"))
	if err != nil {
		return h.handleError(c, err, "Failed to get next stop")
	}
	if stop == nil {
		return utils.NotFoundResponse(c, "No remaining stops")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", stop)
}

// ClearRoute discards the driver's route
func (h *RouteHandler) ClearRoute(c echo.Context) error {
	if err := h.routeUC.ClearRoute(c.Request().Context(), c.Param("driverID")); err != nil {
		return h.handleError(c, err, "Failed to clear route")
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateLocation records the driver's current position
func (h *RouteHandler) UpdateLocation(c echo.Context) error {
	var loc models.Location
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if !loc.Valid() {
		return utils.BadRequestResponse(c, "latitude or longitude is out of range")
	}

	update := models.LocationUpdate{DriverID: c.Param("driverID"), Location: loc}
	if err := h.routeUC.UpdateDriverLocation(c.Request().Context(), update); err != nil {
		return h.handleError(c, err, "Failed to update location")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *RouteHandler) handleError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, routes.ErrNotEnoughOrders):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, routes.ErrNoRoutableStops):
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg,
		logger.String("driver_id", c.Param("driverID")),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
