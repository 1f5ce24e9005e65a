package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveImage(t *testing.T) {
	assert.Equal(t, "", ResolveImage("https://api.example.com", ""))
	assert.Equal(t, "https://cdn.example.com/a.png", ResolveImage("https://api.example.com", "https://cdn.example.com/a.png"))
	assert.Equal(t, "https://api.example.com/api/files/u/a.png", ResolveImage("https://api.example.com", "/api/files/u/a.png"))
	assert.Equal(t, "/api/files/u/a.png", ResolveImage("", "/api/files/u/a.png"))
	assert.Equal(t, "a.png", ResolveImage("https://api.example.com", "a.png"))
}

func TestIndexByID(t *testing.T) {
	rows := []map[string]any{
		{"id": "v1", "name": "Hall A"},
		{"id": 7, "name": "Hall B"},
		{"name": "no id"},
	}
	index := IndexByID(rows)
	require.Len(t, index, 2)
	assert.Equal(t, "Hall A", index["v1"]["name"])
	// numeric ids are keyed by their string form
	assert.Equal(t, "Hall B", index["7"]["name"])
}

func TestMapEventRowVenueJoin(t *testing.T) {
	venues := map[string]map[string]any{
		"v1": {"id": "v1", "name": "Grand Hall", "address": "1 Main St", "city": "Vienna"},
	}
	row := map[string]any{
		"id":         "e1",
		"title":      "GopherCon",
		"event_date": "2025-03-01",
		"start_time": "09:00",
		"end_time":   "17:00",
		"venue":      "v1",
		"price":      25.0,
	}
	event := MapEventRow(row, venues, nil)

	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "March 1, 2025", event.Date)
	assert.Equal(t, "2025-03-01", event.DateISO)
	assert.Equal(t, "09:00 AM - 05:00 PM", event.Time)
	assert.Equal(t, "Vienna, Grand Hall", event.Location)
	assert.Equal(t, "Grand Hall, 1 Main St, Vienna", event.Address)
	assert.Equal(t, "Grand Hall", event.VenueName)
	assert.Equal(t, 25.0, event.Price)
	assert.Equal(t, "General", event.Category)
}

func TestMapEventRowLocationFallback(t *testing.T) {
	event := MapEventRow(map[string]any{"id": "e1", "title": "Orphan"}, nil, nil)
	assert.Equal(t, "TBD", event.Location)
	assert.Equal(t, "", event.Address)
}

func TestMapEventRowInlineVenue(t *testing.T) {
	row := map[string]any{
		"id":    "e1",
		"title": "Inline",
		"venue": map[string]any{"id": "v9", "name": "Pop-up", "city": "Graz"},
	}
	event := MapEventRow(row, nil, nil)
	assert.Equal(t, "Graz, Pop-up", event.Location)
	assert.Equal(t, "Pop-up", event.VenueName)
}

func TestMapEventRowOrganizerResolution(t *testing.T) {
	users := map[string]map[string]any{
		"7": {"id": 7, "organization_name": "Acme", "first_name": "Ada", "last_name": "Lovelace", "profile_image": "/f/acme.png"},
	}
	// numeric foreign key resolves against the string-keyed index
	row := map[string]any{"id": "e1", "title": "Expo", "organizer": 7}
	event := MapEventRow(row, nil, users)

	assert.Equal(t, "7", event.Organizer)
	assert.Equal(t, "Acme", event.OrganizerName)
	assert.Equal(t, "/f/acme.png", event.OrganizerImage)
}

func TestMapEventRowOrganizerNameFallsBackToFullName(t *testing.T) {
	users := map[string]map[string]any{
		"u1": {"id": "u1", "first_name": "Ada", "last_name": "Lovelace"},
	}
	event := MapEventRow(map[string]any{"id": "e1", "organizer": "u1"}, nil, users)
	assert.Equal(t, "Ada Lovelace", event.OrganizerName)
}

func TestMapEventRowAttendeePrecedence(t *testing.T) {
	// explicit count wins over the label
	event := MapEventRow(map[string]any{
		"id": "e1", "attendees_count": 200.0, "attendees": "150 Attendees",
	}, nil, nil)
	assert.Equal(t, 200, event.AttendeesCount)
	assert.Equal(t, "150 Attendees", event.Attendees)

	// registrations count is second in line
	event = MapEventRow(map[string]any{"id": "e1", "registrations_count": 80.0}, nil, nil)
	assert.Equal(t, 80, event.AttendeesCount)
	assert.Equal(t, "80 Attendees", event.Attendees)

	// finally the label itself is parsed
	event = MapEventRow(map[string]any{"id": "e1", "attendees": "150 Attendees"}, nil, nil)
	assert.Equal(t, 150, event.AttendeesCount)
}

func TestMapEventRowRatingAndReviews(t *testing.T) {
	comments := []any{
		map[string]any{"rating": 4.0},
		map[string]any{"rating": 5.0},
	}
	event := MapEventRow(map[string]any{"id": "e1", "comments": comments}, nil, nil)
	assert.Equal(t, 4.5, event.Rating)
	assert.Equal(t, 2, event.Reviews)

	// stored numeric values override the derived ones
	event = MapEventRow(map[string]any{
		"id": "e1", "comments": comments, "rating": 3.0, "reviews": 10.0,
	}, nil, nil)
	assert.Equal(t, 3.0, event.Rating)
	assert.Equal(t, 10, event.Reviews)

	// non-numeric stored values do not
	event = MapEventRow(map[string]any{
		"id": "e1", "comments": comments, "rating": "great", "reviews": "many",
	}, nil, nil)
	assert.Equal(t, 4.5, event.Rating)
	assert.Equal(t, 2, event.Reviews)
}

func TestMapUserToOrganizer(t *testing.T) {
	org := MapUserToOrganizer(map[string]any{
		"id":                "u1",
		"organization_name": "Acme",
		"first_name":        "Ada",
		"last_name":         "Lovelace",
		"profile_image":     "/f/a.png",
	})
	assert.Equal(t, "Acme", org.Name)
	assert.Equal(t, "/f/a.png", org.Image)

	// without an organization name the person's name stands in
	org = MapUserToOrganizer(map[string]any{"id": "u2", "first_name": "Ada", "last_name": "Lovelace"})
	assert.Equal(t, "Ada Lovelace", org.Name)
}

func TestMapUserToAttendeeDefaults(t *testing.T) {
	attendee := MapUserToAttendee("https://api.example.com", map[string]any{"id": "u1"})
	assert.Equal(t, "User", attendee.Name)
	assert.Equal(t, "Unknown", attendee.Company)
	assert.Equal(t, "Attendee", attendee.Position)
	assert.Equal(t, "confirmed", attendee.Status)
	assert.Equal(t, "Standard", attendee.TicketType)
	assert.Equal(t, "Unknown", attendee.Location)
	assert.False(t, attendee.CheckedIn)
	assert.Equal(t, "", attendee.Avatar)
}

func TestMapUserToAttendeeAvatar(t *testing.T) {
	attendee := MapUserToAttendee("https://api.example.com", map[string]any{
		"id":            "u1",
		"first_name":    "Ada",
		"profile_image": "/api/files/u1/a.png",
		"checked_in":    true,
	})
	assert.Equal(t, "Ada", attendee.Name)
	assert.Equal(t, "https://api.example.com/api/files/u1/a.png", attendee.Avatar)
	assert.True(t, attendee.CheckedIn)
}

func TestBuildFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", BuildFullName(map[string]any{"first_name": "Ada", "last_name": "Lovelace"}))
	assert.Equal(t, "Ada", BuildFullName(map[string]any{"first_name": "Ada"}))
	assert.Equal(t, "Explicit", BuildFullName(map[string]any{"full_name": "Explicit", "first_name": "Ada"}))
	assert.Equal(t, "", BuildFullName(nil))
}

func TestMapNotificationRow(t *testing.T) {
	n := MapNotificationRow(map[string]any{
		"id":      "n1",
		"title":   "Heads up",
		"message": "Event moved",
		"type":    "info",
		"read":    false,
		"created": "2025-03-01 10:00:00.000Z",
		"user":    "u1",
	})
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "Heads up", n.Title)
	assert.False(t, n.Read)
	assert.Equal(t, "2025-03-01 10:00:00.000Z", n.CreatedAt)
	assert.Equal(t, "u1", n.User)
}
