package models

type Venue struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	VenueType    string  `json:"venue_type"`
	Image        string  `json:"image,omitempty"`
	Description  string  `json:"description,omitempty"`
}
