package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripplanner/internal/repository"
)

// diagTables is the fixed set of tables the diagnostics endpoint reports
// on, in display order.
var diagTables = []string{"hotels", "transport_options", "guides", "trips", "bookings"}

type StatusHandler struct {
	repo repository.StatusRepository
}

func NewStatusHandler(repo repository.StatusRepository) *StatusHandler {
	return &StatusHandler{repo: repo}
}

func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/status/db", h.DBStatus)
}

// DBStatus reports a per-table row count, or the error that check hit. One
// failing table does not hide the others. A trips_select entry additionally
// probes the columns the trip reader selects, so a schema mismatch is
// visible here before it breaks the trip list.
func (h *StatusHandler) DBStatus(c echo.Context) error {
	ctx := c.Request().Context()
	results := make(map[string]any, len(diagTables)+1)

	for _, table := range diagTables {
		count, err := h.repo.CountRows(ctx, table)
		if err != nil {
			results[table] = map[string]string{"error": err.Error()}
			continue
		}
		results[table] = map[string]int64{"count": count}
	}

	if trip, err := h.repo.ProbeTrips(ctx); err != nil {
		results["trips_select"] = map[string]string{"error": err.Error()}
	} else if trip != nil {
		results["trips_select"] = map[string]any{"sample": trip}
	} else {
		results["trips_select"] = map[string]string{"status": "ok"}
	}

	return c.JSON(http.StatusOK, results)
}
