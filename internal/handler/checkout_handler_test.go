package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"tripplanner/internal/dto"
	"tripplanner/internal/models"
	"tripplanner/internal/planner"
	"tripplanner/internal/service"
)

// --- Mock CheckoutService ---

type mockCheckoutService struct {
	checkoutFn func(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error)
}

func (m *mockCheckoutService) Checkout(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error) {
	return m.checkoutFn(ctx, sessionID, userID)
}

const validCard = `{"cardholder_name":"A Traveler","card_number":"4111111111111111","expiry":"12/28","cvv":"123"}`

func checkoutContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("sess-1")
	return c, rec
}

// --- Tests ---

func TestCheckout_Handler_Success(t *testing.T) {
	svc := &mockCheckoutService{
		checkoutFn: func(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error) {
			trip := &models.Trip{
				ID:              10,
				Title:           "Goa Trip",
				State:           "Goa",
				Cities:          pq.StringArray{"Calangute", "Panaji"},
				StartDate:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
				BudgetPerPerson: 12000,
				TotalDays:       2,
			}
			booking := &models.Booking{
				ID:          1,
				TripID:      10,
				Status:      models.StatusPending,
				BookedAt:    time.Now(),
				TotalAmount: 36000,
			}
			return trip, booking, nil
		},
	}

	c, rec := checkoutContext(validCard)
	assert.NoError(t, NewCheckoutHandler(svc).Checkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CheckoutResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(10), resp.Trip.ID)
	assert.Equal(t, uint(1), resp.Booking.ID)
	assert.Equal(t, models.StatusPending, resp.Booking.Status)
	assert.Equal(t, 36000.0, resp.Booking.TotalAmount)
}

func TestCheckout_Handler_MissingCardFields(t *testing.T) {
	cases := map[string]string{
		"empty body":  `{}`,
		"no cvv":      `{"cardholder_name":"A","card_number":"4111","expiry":"12/28"}`,
		"no name":     `{"card_number":"4111","expiry":"12/28","cvv":"123"}`,
		"blank field": `{"cardholder_name":"A","card_number":"","expiry":"12/28","cvv":"123"}`,
	}

	for name, body := range cases {
		c, _ := checkoutContext(body)
		err := NewCheckoutHandler(&mockCheckoutService{}).Checkout(c)

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok, name)
		assert.Equal(t, http.StatusBadRequest, he.Code, name)
	}
}

func TestCheckout_Handler_SessionNotFound(t *testing.T) {
	svc := &mockCheckoutService{
		checkoutFn: func(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error) {
			return nil, nil, planner.ErrSessionNotFound
		},
	}

	c, _ := checkoutContext(validCard)
	err := NewCheckoutHandler(svc).Checkout(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCheckout_Handler_IncompleteSelections(t *testing.T) {
	svc := &mockCheckoutService{
		checkoutFn: func(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error) {
			return nil, nil, service.ErrSelectionIncomplete
		},
	}

	c, _ := checkoutContext(validCard)
	err := NewCheckoutHandler(svc).Checkout(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCheckout_Handler_PassesUserID(t *testing.T) {
	var captured *string
	svc := &mockCheckoutService{
		checkoutFn: func(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error) {
			captured = userID
			return &models.Trip{ID: 10}, &models.Booking{ID: 1, TripID: 10}, nil
		},
	}

	body := `{"user_id":"user-7","cardholder_name":"A","card_number":"4111","expiry":"12/28","cvv":"123"}`
	c, _ := checkoutContext(body)
	assert.NoError(t, NewCheckoutHandler(svc).Checkout(c))
	assert.NotNil(t, captured)
	assert.Equal(t, "user-7", *captured)
}
