package service

import (
	"context"
	"errors"

	"tripplanner/internal/itinerary"
	"tripplanner/internal/planner"
)

var (
	// ErrDraftRequired means the step needs a trip draft that the session
	// does not hold; clients redirect back to planning.
	ErrDraftRequired = errors.New("no trip draft in this session; plan a trip first")

	ErrInvalidDay = errors.New("day index is outside the planned trip")

	ErrSelectionIncomplete = errors.New("every day needs a hotel, transport and guide before checkout")
)

// SessionStore is the session persistence the services depend on;
// *planner.Store is the Redis-backed implementation.
type SessionStore interface {
	Create(ctx context.Context) (*planner.Session, error)
	Get(ctx context.Context, id string) (*planner.Session, error)
	Save(ctx context.Context, sess *planner.Session) error
	Delete(ctx context.Context, id string) error
}

type PlannerService interface {
	CreateSession(ctx context.Context) (*planner.Session, error)
	GetSession(ctx context.Context, id string) (*planner.Session, error)
	CancelSession(ctx context.Context, id string) error
	SaveDraft(ctx context.Context, id string, draft planner.Draft) (*planner.Session, error)
	SetSelections(ctx context.Context, id string, day int, hotelID, transportID, guideID string) (*planner.Session, error)
	// BuildItinerary regenerates the day-by-day plan from the session draft.
	// Returns ErrDraftRequired when the draft is missing or unusable.
	BuildItinerary(ctx context.Context, id string) (*planner.Session, []itinerary.DayPlan, error)
}

type plannerService struct {
	sessions SessionStore
}

func NewPlannerService(sessions SessionStore) PlannerService {
	return &plannerService{sessions: sessions}
}

func (s *plannerService) CreateSession(ctx context.Context) (*planner.Session, error) {
	return s.sessions.Create(ctx)
}

func (s *plannerService) GetSession(ctx context.Context, id string) (*planner.Session, error) {
	return s.sessions.Get(ctx, id)
}

func (s *plannerService) CancelSession(ctx context.Context, id string) error {
	if _, err := s.sessions.Get(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

func (s *plannerService) SaveDraft(ctx context.Context, id string, draft planner.Draft) (*planner.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Draft = &draft
	// A new draft may change the trip length; stale day indices would gate
	// completion on days that no longer exist.
	for _, m := range []map[int]string{sess.Selections.Hotels, sess.Selections.Transport, sess.Selections.Guides} {
		for day := range m {
			if day >= len(draft.Cities) {
				delete(m, day)
			}
		}
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *plannerService) SetSelections(ctx context.Context, id string, day int, hotelID, transportID, guideID string) (*planner.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Draft == nil {
		return nil, ErrDraftRequired
	}
	if day < 0 || day >= sess.TotalDays() {
		return nil, ErrInvalidDay
	}

	sess.Select(day, hotelID, transportID, guideID)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *plannerService) BuildItinerary(ctx context.Context, id string) (*planner.Session, []itinerary.DayPlan, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if sess.Draft == nil || len(sess.Draft.Cities) == 0 || sess.Draft.StartDate.IsZero() {
		return nil, nil, ErrDraftRequired
	}
	return sess, itinerary.BuildPlan(sess.Draft.Cities, sess.Draft.StartDate), nil
}
