package models

type CreateEventInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	EventDate        string   `json:"event_date"` // YYYY-MM-DD
	StartTime        string   `json:"start_time"` // HH:MM:SS
	EndTime          string   `json:"end_time"`   // HH:MM:SS
	Venue            string   `json:"venue"`
	LocationOverride string   `json:"location_override"`
	AddressOverride  string   `json:"address_override"`
	Organizer        string   `json:"organizer"`
	Image            string   `json:"image"`
	Status           string   `json:"status"`
	Category         string   `json:"category"`
	Size             string   `json:"size"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price"`
	Highlights       []string `json:"highlights"`
	Tags             []string `json:"tags"`
	MaxAttendees     int      `json:"max_attendees"`
}

type CreateVenueInput struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	VenueType    string  `json:"venue_type"`
}

type CreateUserInput struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	OrganizationName string `json:"organization_name"`
	ProfileImage     string `json:"profile_image"`
}

type CreateNotificationInput struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	User    string `json:"user"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
