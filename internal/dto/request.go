package dto

type DraftRequest struct {
	State           string   `json:"state" validate:"required"`
	Cities          []string `json:"cities" validate:"required,min=1"`
	NumPeople       int      `json:"num_people" validate:"required,gt=0"`
	BudgetPerPerson float64  `json:"budget_per_person" validate:"required,gt=0"`
	// StartDate accepts "2006-01-02" or RFC 3339.
	StartDate string `json:"start_date" validate:"required"`
}

// SelectionRequest carries choices for one day index. Empty fields leave
// that category's existing choice untouched.
type SelectionRequest struct {
	HotelID     string `json:"hotel_id"`
	TransportID string `json:"transport_id"`
	GuideID     string `json:"guide_id"`
}

// CheckoutRequest is the mock payment form. Card fields are checked for
// presence only and never stored or charged.
type CheckoutRequest struct {
	UserID         *string `json:"user_id,omitempty"`
	CardholderName string  `json:"cardholder_name"`
	CardNumber     string  `json:"card_number"`
	Expiry         string  `json:"expiry"`
	CVV            string  `json:"cvv"`
}
