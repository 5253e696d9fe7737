package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"tripplanner/internal/models"
	"tripplanner/internal/repository"
)

// EventPublisher is the slice of the message broker checkout needs.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type CheckoutService interface {
	// Checkout turns a completed planning session into a trip row and a
	// pending booking row. Both writes happen in one transaction: a failed
	// booking write rolls the trip back, so no orphaned trip can persist.
	// The session is only cleared after the transaction commits; on any
	// failure it stays intact for a retry.
	Checkout(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error)
}

type checkoutService struct {
	sessions    SessionStore
	tripRepo    repository.TripRepository
	bookingRepo repository.BookingRepository
	publisher   EventPublisher
}

func NewCheckoutService(sessions SessionStore, tripRepo repository.TripRepository, bookingRepo repository.BookingRepository, publisher EventPublisher) CheckoutService {
	return &checkoutService{
		sessions:    sessions,
		tripRepo:    tripRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
	}
}

// bookingSelections is the JSON shape persisted on the booking row. The
// traveler count rides along so the trip reader can fall back to it when
// trip-level fields are absent.
type bookingSelections struct {
	Hotels    map[int]string `json:"hotels"`
	Transport map[int]string `json:"transport"`
	Guides    map[int]string `json:"guides"`
	NumPeople int            `json:"num_people"`
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID string, userID *string) (*models.Trip, *models.Booking, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Draft == nil {
		return nil, nil, ErrDraftRequired
	}
	if !sess.Complete() {
		return nil, nil, ErrSelectionIncomplete
	}
	draft := sess.Draft

	selJSON, err := json.Marshal(bookingSelections{
		Hotels:    sess.Selections.Hotels,
		Transport: sess.Selections.Transport,
		Guides:    sess.Selections.Guides,
		NumPeople: draft.NumPeople,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encode selections: %w", err)
	}

	trip := &models.Trip{
		UserID:          userID,
		Title:           draft.State + " Trip",
		State:           draft.State,
		Cities:          draft.Cities,
		StartDate:       draft.StartDate,
		BudgetPerPerson: draft.BudgetPerPerson,
		TotalDays:       len(draft.Cities),
	}
	booking := &models.Booking{
		UserID:      userID,
		Status:      models.StatusPending,
		BookedAt:    time.Now().UTC(),
		TotalAmount: float64(draft.NumPeople) * draft.BudgetPerPerson,
		Selections:  string(selJSON),
	}

	// Trip first; the booking write only runs once the trip insert
	// succeeded and has an id.
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tripRepo.Create(ctx, tx, trip); err != nil {
			return fmt.Errorf("create trip: %w", err)
		}
		booking.TripID = trip.ID
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// The booking is durable now; session cleanup and the feed event are
	// best-effort.
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("[Checkout] failed to clear session %s: %v", sessionID, err)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish("booking.created", booking); err != nil {
			log.Printf("[Checkout] failed to publish booking.created for booking %d: %v", booking.ID, err)
		}
	}

	return trip, booking, nil
}
