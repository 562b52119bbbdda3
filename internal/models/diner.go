package models

// Order represents a single dish ordered by a reservation's party.
// One order record covers the whole party, not one seat.
type Order struct {
	Item        string   `json:"item"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// KitchenNote is a single agent-generated annotation for a dish on a
// reservation.
type KitchenNote struct {
	Note    string   `json:"note"`
	Dish    string   `json:"dish"`
	Urgency Urgency  `json:"urgency"`
	Tags    []string `json:"tags,omitempty"`
}

// CoordinatorSummary is the primary location for kitchen notes inside
// an agent analysis, plus opaque pass-through sections the core never
// transforms.
type CoordinatorSummary struct {
	KitchenNotes           []KitchenNote `json:"kitchen_notes,omitempty"`
	PriorityAlerts         interface{}   `json:"priority_alerts,omitempty"`
	GuestProfile           interface{}   `json:"guest_profile,omitempty"`
	ServiceRecommendations interface{}   `json:"service_recommendations,omitempty"`
}

// AgentAnalysis carries the agent-generated annotations for a
// reservation. Kitchen notes live in one of two alternative places:
// CoordinatorSummary.KitchenNotes (preferred) or ChefNotes (fallback).
type AgentAnalysis struct {
	CoordinatorSummary *CoordinatorSummary `json:"coordinator_summary,omitempty"`
	ChefNotes          []KitchenNote       `json:"chef_notes,omitempty"`
}

// Reservation is a single booking belonging to one diner.
type Reservation struct {
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	NumberOfPeople int            `json:"number_of_people"`
	Orders         []Order        `json:"orders"`
	AgentAnalysis  *AgentAnalysis `json:"agent_analysis,omitempty"`
}

// Email is part of the raw dataset but unused by the aggregation core.
type Email struct {
	Date           string `json:"date"`
	Subject        string `json:"subject"`
	CombinedThread string `json:"combined_thread"`
}

// Review is part of the raw dataset but unused by the aggregation core.
type Review struct {
	RestaurantName string  `json:"restaurant_name"`
	Date           string  `json:"date"`
	Rating         float64 `json:"rating"`
	Content        string  `json:"content"`
}

// Diner is one guest with their reservation history.
type Diner struct {
	Name         string        `json:"name"`
	Reservations []Reservation `json:"reservations,omitempty"`
	Reviews      []Review      `json:"reviews,omitempty"`
	Emails       []Email       `json:"emails,omitempty"`
}

// DinersList is the root of the raw dataset.
type DinersList struct {
	Diners []Diner `json:"diners"`
}
