package models

// DefaultEventPoints is awarded when an event is created without points
const DefaultEventPoints = 10

// Event represents a club event
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// CreateEventRequest represents an event creation request.
// Points is a pointer so an absent field can be told apart from zero.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Category    string `json:"category"`
	Points      *int   `json:"points"`
	Description string `json:"description"`
}
