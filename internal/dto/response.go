package dto

import (
	"encoding/json"
	"time"

	"tripplanner/internal/itinerary"
	"tripplanner/internal/models"
	"tripplanner/internal/planner"
)

type SessionResponse struct {
	ID         string             `json:"id"`
	Draft      *planner.Draft     `json:"draft,omitempty"`
	Selections planner.Selections `json:"selections"`
	TotalDays  int                `json:"total_days"`
	Complete   bool               `json:"complete"`
}

func ToSessionResponse(s *planner.Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		Draft:      s.Draft,
		Selections: s.Selections,
		TotalDays:  s.TotalDays(),
		Complete:   s.Complete(),
	}
}

type ItineraryResponse struct {
	SessionID       string              `json:"session_id"`
	State           string              `json:"state"`
	NumPeople       int                 `json:"num_people"`
	BudgetPerPerson float64             `json:"budget_per_person"`
	TotalBudget     float64             `json:"total_budget"`
	Days            []itinerary.DayPlan `json:"days"`
}

type HotelResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
}

type TransportResponse struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
}

type GuideResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	PricePerDay float64  `json:"price_per_day"`
	Languages   []string `json:"languages"`
}

type CatalogResponse struct {
	Hotels    []HotelResponse     `json:"hotels"`
	Transport []TransportResponse `json:"transport"`
	Guides    []GuideResponse     `json:"guides"`
}

func ToHotelResponse(h models.Hotel) HotelResponse {
	resp := HotelResponse{ID: h.ID, Name: h.Name, Rating: h.Rating}
	if h.PricePerNight != nil {
		resp.PricePerNight = *h.PricePerNight
	}
	return resp
}

// ToTransportResponse prefers the price_per_day column and falls back to a
// "price" key inside the features JSON; rows carrying neither price as 0.
func ToTransportResponse(t models.TransportOption) TransportResponse {
	resp := TransportResponse{ID: t.ID, Type: t.Type, Name: t.Name}
	switch {
	case t.PricePerDay != nil:
		resp.PricePerDay = *t.PricePerDay
	case t.Features != "":
		var features struct {
			Price float64 `json:"price"`
		}
		if err := json.Unmarshal([]byte(t.Features), &features); err == nil {
			resp.PricePerDay = features.Price
		}
	}
	return resp
}

func ToGuideResponse(g models.Guide) GuideResponse {
	resp := GuideResponse{
		ID:        g.ID,
		Name:      g.Name,
		Rating:    g.Rating,
		Languages: make([]string, 0, len(g.Languages)),
	}
	if g.PricePerDay != nil {
		resp.PricePerDay = *g.PricePerDay
	}
	for _, lang := range g.Languages {
		resp.Languages = append(resp.Languages, lang.Language)
	}
	return resp
}

type BookingResponse struct {
	ID          uint                 `json:"id"`
	TripID      uint                 `json:"trip_id"`
	UserID      *string              `json:"user_id,omitempty"`
	Status      models.BookingStatus `json:"status"`
	BookedAt    time.Time            `json:"booked_at"`
	TotalAmount float64              `json:"total_amount"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		TripID:      b.TripID,
		UserID:      b.UserID,
		Status:      b.Status,
		BookedAt:    b.BookedAt,
		TotalAmount: b.TotalAmount,
	}
}

type CheckoutResponse struct {
	Trip    models.Trip     `json:"trip"`
	Booking BookingResponse `json:"booking"`
}

// TripSummary is the display shape the trip list and detail views consume:
// trip fields merged with the booking that references them.
type TripSummary struct {
	BookingID       uint                 `json:"id"`
	Title           string               `json:"title"`
	State           string               `json:"state"`
	Cities          []string             `json:"cities"`
	NumPeople       int                  `json:"num_people"`
	BudgetPerPerson float64              `json:"budget_per_person"`
	StartDate       time.Time            `json:"start_date"`
	BookedAt        time.Time            `json:"booked_at"`
	Status          models.BookingStatus `json:"status"`
	TotalAmount     float64              `json:"total_amount"`
	Selections      *planner.Selections  `json:"selections,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
