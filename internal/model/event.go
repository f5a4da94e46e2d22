package model

// Friend is a minimal reference to another user shown on event cards.
type Friend struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Event is a discoverable activity. Events are seeded into the catalog at
// startup and are immutable afterwards; there is no event-editing operation.
type Event struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Location         string   `json:"location"`
	Venue            string   `json:"venue"`
	Price            float64  `json:"price"`
	Attendees        int      `json:"attendees"`
	Category         []string `json:"category"`
	Image            string   `json:"image"`
	Description      string   `json:"description"`
	FriendsAttending []Friend `json:"friends_attending,omitempty"`
}

// EventFilters is a conjunctive filter. Nil/empty criteria are not applied.
type EventFilters struct {
	Category   []string    `json:"category,omitempty"`
	PriceRange *[2]float64 `json:"price_range,omitempty"`
	Location   string      `json:"location,omitempty"`
}
