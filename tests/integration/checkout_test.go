//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"
)

// memorySessionStore keeps sessions in a map so the tests exercise the real
// database path without needing Redis.
type memorySessionStore struct {
	sessions map[string]*planner.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*planner.Session)}
}

func (m *memorySessionStore) Create(ctx context.Context) (*planner.Session, error) {
	sess := &planner.Session{
		ID:         time.Now().Format("150405.000000000"),
		Selections: planner.NewSelections(),
		CreatedAt:  time.Now(),
	}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *memorySessionStore) Get(ctx context.Context, id string) (*planner.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, planner.ErrSessionNotFound
	}
	return sess, nil
}

func (m *memorySessionStore) Save(ctx context.Context, sess *planner.Session) error {
	m.sessions[sess.ID] = sess
	return nil
}

func (m *memorySessionStore) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func completedSession(t *testing.T, store *memorySessionStore) *planner.Session {
	t.Helper()
	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	sess.Draft = &planner.Draft{
		State:           "Goa",
		Cities:          []string{"Calangute", "Panaji"},
		NumPeople:       3,
		BudgetPerPerson: 12000,
		StartDate:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}
	sess.Select(0, "7", "3", "2")
	sess.Select(1, "8", "3", "5")
	require.NoError(t, store.Save(context.Background(), sess))
	return sess
}

func newCheckoutService(store *memorySessionStore) service.CheckoutService {
	tripRepo := repository.NewTripRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	return service.NewCheckoutService(store, tripRepo, bookingRepo, nil)
}

func TestCheckout_PersistsTripAndBooking(t *testing.T) {
	cleanTables()
	store := newMemorySessionStore()
	sess := completedSession(t, store)
	svc := newCheckoutService(store)

	trip, booking, err := svc.Checkout(context.Background(), sess.ID, nil)
	require.NoError(t, err)

	assert.NotZero(t, trip.ID)
	assert.Equal(t, trip.ID, booking.TripID)
	assert.Equal(t, "Goa Trip", trip.Title)
	assert.Equal(t, 2, trip.TotalDays)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, 36000.0, booking.TotalAmount)

	// Selections JSON carries the traveler count for the trip reader.
	var sel struct {
		Hotels    map[string]string `json:"hotels"`
		NumPeople int               `json:"num_people"`
	}
	require.NoError(t, json.Unmarshal([]byte(booking.Selections), &sel))
	assert.Equal(t, 3, sel.NumPeople)
	assert.Equal(t, "7", sel.Hotels["0"])

	// Session cleared after commit
	_, err = store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, planner.ErrSessionNotFound)

	var tripCount, bookingCount int64
	testDB.Model(&models.Trip{}).Count(&tripCount)
	testDB.Model(&models.Booking{}).Count(&bookingCount)
	assert.Equal(t, int64(1), tripCount)
	assert.Equal(t, int64(1), bookingCount)
}

func TestCheckout_IncompleteSelectionsWriteNothing(t *testing.T) {
	cleanTables()
	store := newMemorySessionStore()
	sess := completedSession(t, store)
	delete(sess.Selections.Guides, 1)
	svc := newCheckoutService(store)

	_, _, err := svc.Checkout(context.Background(), sess.ID, nil)
	assert.ErrorIs(t, err, service.ErrSelectionIncomplete)

	// No orphaned trip, session still intact for a retry
	var tripCount int64
	testDB.Model(&models.Trip{}).Count(&tripCount)
	assert.Equal(t, int64(0), tripCount)

	_, err = store.Get(context.Background(), sess.ID)
	assert.NoError(t, err)
}

func TestTripList_JoinsBookingsToTrips(t *testing.T) {
	cleanTables()
	store := newMemorySessionStore()
	sess := completedSession(t, store)
	_, _, err := newCheckoutService(store).Checkout(context.Background(), sess.ID, nil)
	require.NoError(t, err)

	tripRepo := repository.NewTripRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	tripSvc := service.NewTripService(bookingRepo, tripRepo)

	trips, err := tripSvc.ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)

	assert.Equal(t, "Goa Trip", trips[0].Title)
	assert.Equal(t, "Goa", trips[0].State)
	assert.Equal(t, []string{"Calangute", "Panaji"}, trips[0].Cities)
	assert.Equal(t, 3, trips[0].NumPeople)
	assert.Equal(t, 12000.0, trips[0].BudgetPerPerson)
	assert.NotNil(t, trips[0].Selections)
}

func TestTripList_MissingTripRowRendersFromBooking(t *testing.T) {
	cleanTables()
	store := newMemorySessionStore()
	sess := completedSession(t, store)
	trip, _, err := newCheckoutService(store).Checkout(context.Background(), sess.ID, nil)
	require.NoError(t, err)

	// Simulate a trip row lost out from under its booking.
	require.NoError(t, testDB.Delete(&models.Trip{}, trip.ID).Error)

	tripRepo := repository.NewTripRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	tripSvc := service.NewTripService(bookingRepo, tripRepo)

	trips, err := tripSvc.ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)

	assert.Equal(t, "Trip", trips[0].Title)
	assert.Equal(t, 3, trips[0].NumPeople)
	assert.Equal(t, 36000.0, trips[0].TotalAmount)
	assert.Equal(t, 12000.0, trips[0].BudgetPerPerson)
}

func TestTripList_NewestFirst(t *testing.T) {
	cleanTables()
	store := newMemorySessionStore()
	svc := newCheckoutService(store)

	first := completedSession(t, store)
	_, b1, err := svc.Checkout(context.Background(), first.ID, nil)
	require.NoError(t, err)

	// Push the second booking later in time.
	second := completedSession(t, store)
	second.Draft.State = "Rajasthan"
	second.Draft.Cities = []string{"Jaipur", "Udaipur"}
	require.NoError(t, store.Save(context.Background(), second))
	_, b2, err := svc.Checkout(context.Background(), second.ID, nil)
	require.NoError(t, err)
	testDB.Model(&models.Booking{}).Where("id = ?", b2.ID).
		Update("booked_at", b1.BookedAt.Add(time.Minute))

	tripRepo := repository.NewTripRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	tripSvc := service.NewTripService(bookingRepo, tripRepo)

	trips, err := tripSvc.ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Rajasthan Trip", trips[0].Title)
	assert.Equal(t, "Goa Trip", trips[1].Title)
}
