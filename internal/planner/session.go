// Package planner owns the planning session: the in-progress trip draft
// and the per-day hotel/transport/guide selections. A session is created
// when planning starts and destroyed at checkout success or explicit
// cancellation; it is the single owner of that state.
package planner

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("planning session not found")

// Draft is the not-yet-submitted trip configuration.
type Draft struct {
	State           string    `json:"state"`
	Cities          []string  `json:"cities"` // visit order
	NumPeople       int       `json:"num_people"`
	BudgetPerPerson float64   `json:"budget_per_person"`
	StartDate       time.Time `json:"start_date"`
}

// Selections maps a 0-based day index to a chosen catalog item id, one map
// per category. Map keys marshal as strings, matching the booking row's
// selections JSON.
type Selections struct {
	Hotels    map[int]string `json:"hotels"`
	Transport map[int]string `json:"transport"`
	Guides    map[int]string `json:"guides"`
}

func NewSelections() Selections {
	return Selections{
		Hotels:    make(map[int]string),
		Transport: make(map[int]string),
		Guides:    make(map[int]string),
	}
}

type Session struct {
	ID         string     `json:"id"`
	Draft      *Draft     `json:"draft,omitempty"`
	Selections Selections `json:"selections"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TotalDays is the trip length: one day per planned city.
func (s *Session) TotalDays() int {
	if s.Draft == nil {
		return 0
	}
	return len(s.Draft.Cities)
}

// Select records choices for one day. Empty ids leave the existing choice
// untouched; non-empty ids overwrite without confirmation or undo.
func (s *Session) Select(day int, hotelID, transportID, guideID string) {
	if hotelID != "" {
		s.Selections.Hotels[day] = hotelID
	}
	if transportID != "" {
		s.Selections.Transport[day] = transportID
	}
	if guideID != "" {
		s.Selections.Guides[day] = guideID
	}
}

// DayComplete reports whether all three categories are chosen for day.
func (s *Session) DayComplete(day int) bool {
	return s.Selections.Hotels[day] != "" &&
		s.Selections.Transport[day] != "" &&
		s.Selections.Guides[day] != ""
}

// Complete reports whether every day of the drafted trip has all three
// categories chosen. A session without a draft is never complete.
func (s *Session) Complete() bool {
	if s.Draft == nil || len(s.Draft.Cities) == 0 {
		return false
	}
	for i := 0; i < len(s.Draft.Cities); i++ {
		if !s.DayComplete(i) {
			return false
		}
	}
	return true
}
