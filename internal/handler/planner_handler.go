package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tripplanner/internal/dto"
	"tripplanner/internal/export"
	"tripplanner/internal/planner"
	"tripplanner/internal/service"
)

type PlannerHandler struct {
	svc service.PlannerService
}

func NewPlannerHandler(svc service.PlannerService) *PlannerHandler {
	return &PlannerHandler{svc: svc}
}

func (h *PlannerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/sessions")
	g.POST("", h.CreateSession)
	g.GET("/:id", h.GetSession)
	g.DELETE("/:id", h.CancelSession)
	g.PUT("/:id/draft", h.SaveDraft)
	g.PUT("/:id/selections/:day", h.SetSelections)
	g.GET("/:id/itinerary", h.GetItinerary)
	g.GET("/:id/itinerary.pdf", h.DownloadItinerary)
}

func (h *PlannerHandler) CreateSession(c echo.Context) error {
	sess, err := h.svc.CreateSession(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToSessionResponse(sess))
}

func (h *PlannerHandler) GetSession(c echo.Context) error {
	sess, err := h.svc.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

func (h *PlannerHandler) CancelSession(c echo.Context) error {
	if err := h.svc.CancelSession(c.Request().Context(), c.Param("id")); err != nil {
		return sessionError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlannerHandler) SaveDraft(c echo.Context) error {
	var req dto.DraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.State == "" || len(req.Cities) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "state and at least one city are required")
	}
	if req.NumPeople <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "num_people must be greater than zero")
	}
	if req.BudgetPerPerson <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "budget_per_person must be greater than zero")
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD or RFC 3339")
	}

	draft := planner.Draft{
		State:           req.State,
		Cities:          req.Cities,
		NumPeople:       req.NumPeople,
		BudgetPerPerson: req.BudgetPerPerson,
		StartDate:       startDate,
	}

	sess, err := h.svc.SaveDraft(c.Request().Context(), c.Param("id"), draft)
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

func (h *PlannerHandler) SetSelections(c echo.Context) error {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid day index")
	}

	var req dto.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HotelID == "" && req.TransportID == "" && req.GuideID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one of hotel_id, transport_id, guide_id is required")
	}

	sess, err := h.svc.SetSelections(c.Request().Context(), c.Param("id"), day, req.HotelID, req.TransportID, req.GuideID)
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

func (h *PlannerHandler) GetItinerary(c echo.Context) error {
	sess, days, err := h.svc.BuildItinerary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionError(err)
	}

	draft := sess.Draft
	return c.JSON(http.StatusOK, dto.ItineraryResponse{
		SessionID:       sess.ID,
		State:           draft.State,
		NumPeople:       draft.NumPeople,
		BudgetPerPerson: draft.BudgetPerPerson,
		TotalBudget:     float64(draft.NumPeople) * draft.BudgetPerPerson,
		Days:            days,
	})
}

func (h *PlannerHandler) DownloadItinerary(c echo.Context) error {
	sess, days, err := h.svc.BuildItinerary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sessionError(err)
	}

	pdf, err := export.ItineraryPDF(sess.Draft, days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render itinerary PDF")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="itinerary.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// sessionError maps planner/service sentinel errors to HTTP statuses.
// ErrDraftRequired is a 409 so clients can route back to the planning step.
func sessionError(err error) error {
	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDraftRequired):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSelectionIncomplete):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidDay):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
