package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tripplanner/internal/service"
)

type TripHandler struct {
	svc service.TripService
}

func NewTripHandler(svc service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/trips", h.ListTrips)
	e.GET("/api/v1/trips/:id", h.GetTrip)
}

func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.svc.ListTrips(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load trips")
	}
	return c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.svc.GetTrip(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "trip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load trip")
	}
	return c.JSON(http.StatusOK, trip)
}
