package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripplanner/internal/dto"
	"tripplanner/internal/service"
)

type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/sessions/:id/checkout", h.Checkout)
}

// Checkout runs the mock payment and persists the trip and its booking.
// Card fields are presence-checked only; nothing is charged or stored.
// On failure the planning session is left untouched so the whole form can
// be resubmitted.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.CardholderName == "" || req.CardNumber == "" || req.Expiry == "" || req.CVV == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "all payment fields are required")
	}

	trip, booking, err := h.svc.Checkout(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return sessionError(err)
	}

	return c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Trip:    *trip,
		Booking: dto.ToBookingResponse(booking),
	})
}
