package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tripplanner/internal/models"
)

// --- Mock StatusRepository ---

type mockStatusRepo struct {
	countFn func(ctx context.Context, table string) (int64, error)
	probeFn func(ctx context.Context) (*models.Trip, error)
}

func (m *mockStatusRepo) CountRows(ctx context.Context, table string) (int64, error) {
	return m.countFn(ctx, table)
}
func (m *mockStatusRepo) ProbeTrips(ctx context.Context) (*models.Trip, error) {
	if m.probeFn != nil {
		return m.probeFn(ctx)
	}
	return nil, nil
}

func statusContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/status/db", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// --- Tests ---

func TestDBStatus_AllHealthy(t *testing.T) {
	repo := &mockStatusRepo{
		countFn: func(ctx context.Context, table string) (int64, error) { return 5, nil },
		probeFn: func(ctx context.Context) (*models.Trip, error) {
			return &models.Trip{ID: 1, BudgetPerPerson: 12000, TotalDays: 2}, nil
		},
	}

	c, rec := statusContext()
	assert.NoError(t, NewStatusHandler(repo).DBStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, table := range diagTables {
		assert.Equal(t, float64(5), resp[table]["count"], table)
	}
	assert.Contains(t, resp, "trips_select")
}

func TestDBStatus_OneFailingTableDoesNotHideOthers(t *testing.T) {
	repo := &mockStatusRepo{
		countFn: func(ctx context.Context, table string) (int64, error) {
			if table == "guides" {
				return 0, errors.New(`relation "guides" does not exist`)
			}
			return 3, nil
		},
	}

	c, rec := statusContext()
	assert.NoError(t, NewStatusHandler(repo).DBStatus(c))

	var resp map[string]map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["guides"]["error"], "does not exist")
	assert.Equal(t, float64(3), resp["hotels"]["count"])
	assert.Equal(t, float64(3), resp["bookings"]["count"])
}

func TestDBStatus_ProbeErrorReported(t *testing.T) {
	repo := &mockStatusRepo{
		countFn: func(ctx context.Context, table string) (int64, error) { return 0, nil },
		probeFn: func(ctx context.Context) (*models.Trip, error) {
			return nil, errors.New("column total_days does not exist")
		},
	}

	c, rec := statusContext()
	assert.NoError(t, NewStatusHandler(repo).DBStatus(c))

	var resp map[string]map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["trips_select"]["error"], "total_days")
}

func TestDBStatus_EmptyTripsTableIsOK(t *testing.T) {
	repo := &mockStatusRepo{
		countFn: func(ctx context.Context, table string) (int64, error) { return 0, nil },
	}

	c, rec := statusContext()
	assert.NoError(t, NewStatusHandler(repo).DBStatus(c))

	var resp map[string]map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["trips_select"]["status"])
}
