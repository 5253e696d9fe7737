package service

import (
	"context"
	"encoding/json"
	"fmt"

	"tripplanner/internal/dto"
	"tripplanner/internal/models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repository"
)

// tripListLimit caps the trip list at the 100 most recent bookings.
const tripListLimit = 100

type TripService interface {
	ListTrips(ctx context.Context) ([]dto.TripSummary, error)
	GetTrip(ctx context.Context, bookingID uint) (*dto.TripSummary, error)
}

type tripService struct {
	bookingRepo repository.BookingRepository
	tripRepo    repository.TripRepository
}

func NewTripService(bookingRepo repository.BookingRepository, tripRepo repository.TripRepository) TripService {
	return &tripService{bookingRepo: bookingRepo, tripRepo: tripRepo}
}

// ListTrips loads recent bookings with their trips. Bookings whose trip the
// join could not resolve get a second chance: their trips are batch-fetched
// by id and merged here. Bookings still missing a trip after that are kept,
// with defaults filled from the booking row alone.
func (s *tripService) ListTrips(ctx context.Context) ([]dto.TripSummary, error) {
	bookings, err := s.bookingRepo.ListRecent(ctx, tripListLimit)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	var missing []uint
	for _, b := range bookings {
		if b.Trip == nil && b.TripID != 0 {
			missing = append(missing, b.TripID)
		}
	}

	tripsByID := make(map[uint]*models.Trip)
	if len(missing) > 0 {
		trips, err := s.tripRepo.FindByIDs(ctx, missing)
		if err == nil {
			for i := range trips {
				tripsByID[trips[i].ID] = &trips[i]
			}
		}
		// A failed fallback fetch is tolerated; those rows render from
		// booking fields only.
	}

	summaries := make([]dto.TripSummary, 0, len(bookings))
	for _, b := range bookings {
		trip := b.Trip
		if trip == nil {
			trip = tripsByID[b.TripID]
		}
		summaries = append(summaries, summarize(&b, trip))
	}
	return summaries, nil
}

func (s *tripService) GetTrip(ctx context.Context, bookingID uint) (*dto.TripSummary, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	trip := booking.Trip
	if trip == nil && booking.TripID != 0 {
		if t, err := s.tripRepo.FindByID(ctx, booking.TripID); err == nil {
			trip = t
		}
	}

	summary := summarize(booking, trip)
	return &summary, nil
}

// summarize merges one booking with its (possibly absent) trip into the
// display shape, applying the defaults from the original flow: party count
// falls back to the selections traveler count then 1, per-person budget to
// total amount divided by party count, status to pending.
func summarize(b *models.Booking, trip *models.Trip) dto.TripSummary {
	var sel struct {
		planner.Selections
		NumPeople int `json:"num_people"`
	}
	if b.Selections != "" {
		// Malformed selections JSON is tolerated, not surfaced.
		_ = json.Unmarshal([]byte(b.Selections), &sel)
	}

	numPeople := sel.NumPeople
	if numPeople <= 0 {
		numPeople = 1
	}

	out := dto.TripSummary{
		BookingID:   b.ID,
		Title:       "Trip",
		Cities:      []string{},
		NumPeople:   numPeople,
		StartDate:   b.BookedAt,
		BookedAt:    b.BookedAt,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
	if out.Status == "" {
		out.Status = models.StatusPending
	}
	if sel.Hotels != nil || sel.Transport != nil || sel.Guides != nil {
		out.Selections = &planner.Selections{
			Hotels:    sel.Hotels,
			Transport: sel.Transport,
			Guides:    sel.Guides,
		}
	}

	if trip != nil {
		if trip.Title != "" {
			out.Title = trip.Title
		}
		out.State = trip.State
		if trip.Cities != nil {
			out.Cities = trip.Cities
		}
		if !trip.StartDate.IsZero() {
			out.StartDate = trip.StartDate
		}
		out.BudgetPerPerson = trip.BudgetPerPerson
	}
	if out.BudgetPerPerson == 0 && numPeople > 0 {
		out.BudgetPerPerson = b.TotalAmount / float64(numPeople)
	}

	return out
}
