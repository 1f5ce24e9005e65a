package models

// Organizer is a profile row with a non-empty organization name.
type Organizer struct {
	ID               string `json:"id"`
	OrganizationName string `json:"organization_name"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ProfileImage     string `json:"profile_image"`
	Name             string `json:"name"`
	Image            string `json:"image"`
}

// Attendee is a profile row without an organization name.
type Attendee struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	TicketType string `json:"ticketType"`
	CheckedIn  bool   `json:"checkedIn"`
	Location   string `json:"location"`
	Avatar     string `json:"avatar"`
}

// Profile merges the auth record's own fields with the optional profiles
// row; the profiles row wins when present.
type Profile struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	CreatedAt        string `json:"created_at"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	OrganizationName string `json:"organization_name"`
	ProfileImage     string `json:"profile_image"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
