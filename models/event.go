package models

// Event is the normalized view-model shape the UI consumes. Raw backend
// rows are looser; the services mappers are the validation boundary that
// produces this shape.
type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Date           string   `json:"date"`
	DateISO        string   `json:"date_iso"`
	Time           string   `json:"time"`
	Location       string   `json:"location"`
	Address        string   `json:"address"`
	Size           string   `json:"size"`
	Attendees      string   `json:"attendees"`
	AttendeesCount int      `json:"attendees_count"`
	MaxAttendees   int      `json:"max_attendees"`
	Status         string   `json:"status"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Organizer      string   `json:"organizer"`
	OrganizerName  string   `json:"organizer_name"`
	OrganizerImage string   `json:"organizerImage"`
	Price          float64  `json:"price"`
	OriginalPrice  *float64 `json:"original_price"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Highlights     []string `json:"highlights"`
	Agenda         []any    `json:"agenda"`
	Speakers       []any    `json:"speakers"`
	Comments       []any    `json:"comments"`
	VenueName      string   `json:"venue_name"`
}
