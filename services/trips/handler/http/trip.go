package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// RegisterRoutes registers the trip routes under /drivers/:driverID/trips
func (h *TripHandler) RegisterRoutes(g *echo.Group) {
	tripGroup := g.Group("/trips")
	tripGroup.GET("/available", h.ListAvailableTrips)
	tripGroup.GET("/:tripID/compatibility", h.CheckCompatibility)
	tripGroup.POST("/:tripID/claim", h.ClaimTrip)
}

// ListAvailableTrips returns the open trips feed around ?lat=&lng=
func (h *TripHandler) ListAvailableTrips(c echo.Context) error {
	driverID := c.Param("driverID")

	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng query parameters are required")
	}
	location := models.Location{Latitude: lat, Longitude: lng}
	if !location.Valid() {
		return utils.BadRequestResponse(c, "lat or lng is out of range")
	}

	feed, err := h.tripUC.ListAvailableTrips(c.Request().Context(), driverID, location)
	if err != nil {
		return h.handleError(c, err, "Failed to list available trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", feed)
}

// CheckCompatibility reports whether the driver's trucks fit the trip
func (h *TripHandler) CheckCompatibility(c echo.Context) error {
	report, err := h.tripUC.CheckCompatibility(c.Request().Context(), c.Param("tripID"), c.Param("driverID"))
	if err != nil {
		return h.handleError(c, err, "Failed to check compatibility")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", report)
}

// ClaimTrip lets the driver take a pending trip
func (h *TripHandler) ClaimTrip(c echo.Context) error {
	result, err := h.tripUC.ClaimTrip(c.Request().Context(), c.Param("tripID"), c.Param("driverID"))
	if err != nil {
		return h.handleError(c, err, "Failed to claim trip")
	}

	switch result.Outcome {
	case models.ClaimOutcomeClaimed:
		return utils.SuccessResponse(c, http.StatusOK, "Trip claimed", result)
	case models.ClaimOutcomeAlreadyTaken:
		return utils.ErrorResponseWithData(c, http.StatusConflict, "Trip already taken by another driver", result)
	case models.ClaimOutcomeIncompatible:
		return utils.ErrorResponseWithData(c, http.StatusUnprocessableEntity, "Truck type not compatible with this trip", result)
	case models.ClaimOutcomeNotApproved:
		return utils.ErrorResponseWithData(c, http.StatusForbidden, "Driver is not approved", result)
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}

func (h *TripHandler) handleError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, trips.ErrTripNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, trips.ErrDriverNotFound):
		return utils.NotFoundResponse(c, "Driver not found")
	}

	logger.ErrorCtx(c.Request().Context(), msg,
		logger.String("driver_id", c.Param("driverID")),
		logger.String("trip_id", c.Param("tripID")),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
