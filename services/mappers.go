package services

import (
	"fmt"
	"strings"

	"eventdesk/models"
)

// ResolveImage turns a stored image path into something a browser can
// load: absolute URLs pass through, root-relative paths get the backend's
// public origin prefixed, everything else is left alone.
func ResolveImage(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if baseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return baseURL + path
	}
	return path
}

// IndexByID builds a lookup index keyed by the string-cast row id, used to
// resolve foreign-key references without extra backend round-trips.
func IndexByID(rows []map[string]any) map[string]map[string]any {
	index := make(map[string]map[string]any, len(rows))
	for _, row := range rows {
		if id := idString(row["id"]); id != "" {
			index[id] = row
		}
	}
	return index
}

// BuildFullName concatenates first and last name, trimmed, preferring an
// explicit full_name field.
func BuildFullName(row map[string]any) string {
	if row == nil {
		return ""
	}
	if full := rowString(row, "full_name"); full != "" {
		return full
	}
	return strings.TrimSpace(joinNonEmpty(" ",
		rowString(row, "first_name"),
		rowString(row, "last_name"),
	))
}

// MapEventRow transforms a raw event row plus the venue/user lookup
// indices into the stable Event view-model. Field precedence follows the
// row's own values first, then the resolved relation, then a derived
// default.
func MapEventRow(row map[string]any, venuesByID, usersByID map[string]map[string]any) models.Event {
	venue, _ := resolveRelation(row, "venue", "venue_id", venuesByID)
	organizer, organizerID := resolveRelation(row, "organizer", "organizer_id", usersByID)

	tags := NormalizeArray(row["tags"])
	highlights := NormalizeArray(row["highlights"])
	agenda := NormalizeArray(row["agenda"])
	speakers := NormalizeArray(row["speakers"])
	comments := NormalizeArray(row["comments"])

	dateISO := ""
	if v, ok := nonNil(row, "event_date", "date_iso", "date"); ok {
		dateISO = ToIsoDate(v)
	}
	dateLabel := ""
	if v, ok := nonNil(row, "date"); ok {
		dateLabel = stringValue(v)
	} else if dateISO != "" {
		dateLabel = FormatDateLabel(dateISO)
	} else {
		dateLabel = FormatDateLabel(row["event_date"])
	}
	timeLabel := ""
	if v, ok := nonNil(row, "time"); ok {
		timeLabel = stringValue(v)
	} else {
		timeLabel = FormatTimeRange(row["start_time"], row["end_time"])
	}

	var location string
	if v, ok := nonNil(row, "location"); ok {
		location = stringValue(v)
	} else if venue != nil {
		location = joinNonEmpty(", ", stringValue(venue["city"]), stringValue(venue["name"]))
	} else if override := rowString(row, "location_override"); override != "" {
		location = override
	} else {
		location = "TBD"
	}

	var address string
	if v, ok := nonNil(row, "address"); ok {
		address = stringValue(v)
	} else if venue != nil {
		address = joinNonEmpty(", ",
			stringValue(venue["name"]),
			stringValue(venue["address"]),
			stringValue(venue["city"]),
		)
	} else {
		address = rowString(row, "address_override")
	}

	var attendeesCount int
	if v, ok := nonNil(row, "attendees_count"); ok {
		attendeesCount = int(ToNumber(v))
	} else if v, ok := nonNil(row, "registrations_count"); ok {
		attendeesCount = int(ToNumber(v))
	} else {
		attendeesCount = ParseAttendees(row["attendees"])
	}
	attendeesLabel := fmt.Sprintf("%d Attendees", attendeesCount)
	if s, ok := row["attendees"].(string); ok {
		attendeesLabel = s
	}

	organizerName := rowString(row, "organizer_name")
	if organizerName == "" && organizer != nil {
		organizerName = rowString(organizer, "organization_name")
		if organizerName == "" {
			organizerName = BuildFullName(organizer)
		}
	}
	organizerImage := rowString(row, "organizerImage")
	if organizerImage == "" && organizer != nil {
		organizerImage = rowString(organizer, "profile_image")
	}

	reviews := len(comments)
	if v, ok := nonNil(row, "reviews"); ok && isNumeric(v) {
		reviews = int(ToNumber(v))
	}
	rating := ComputeRating(comments)
	if v, ok := nonNil(row, "rating"); ok && isNumeric(v) {
		rating = ToNumber(v)
	}

	category := "General"
	if v, ok := nonNil(row, "category"); ok {
		category = stringValue(v)
	}

	var originalPrice *float64
	if v, ok := nonNil(row, "original_price"); ok {
		price := ToNumber(v)
		originalPrice = &price
	}

	venueName := rowString(row, "venue_name")
	if venueName == "" && venue != nil {
		venueName = stringValue(venue["name"])
	}

	return models.Event{
		ID:             idString(row["id"]),
		Title:          rowString(row, "title"),
		Date:           dateLabel,
		DateISO:        dateISO,
		Time:           timeLabel,
		Location:       location,
		Address:        address,
		Size:           rowString(row, "size"),
		Attendees:      attendeesLabel,
		AttendeesCount: attendeesCount,
		MaxAttendees:   int(ToNumber(row["max_attendees"])),
		Status:         rowString(row, "status"),
		Image:          rowString(row, "image"),
		Description:    rowString(row, "description"),
		Organizer:      organizerID,
		OrganizerName:  organizerName,
		OrganizerImage: organizerImage,
		Price:          ToNumber(row["price"]),
		OriginalPrice:  originalPrice,
		Category:       category,
		Tags:           toStringList(tags),
		Rating:         rating,
		Reviews:        reviews,
		Highlights:     toStringList(highlights),
		Agenda:         agenda,
		Speakers:       speakers,
		Comments:       comments,
		VenueName:      venueName,
	}
}

// resolveRelation prefers an inline related object; otherwise it resolves
// the foreign-key id against the supplied lookup index.
func resolveRelation(row map[string]any, key, idKey string, index map[string]map[string]any) (map[string]any, string) {
	if related, ok := row[key].(map[string]any); ok {
		id := idString(related["id"])
		if id == "" {
			id = idString(row[idKey])
		}
		return related, id
	}
	id := ""
	if v, ok := nonNil(row, key, idKey); ok {
		id = idString(v)
	}
	return index[id], id
}

func isNumeric(value any) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64:
		return true
	default:
		return false
	}
}

// MapUserToOrganizer derives an organizer view from a profile row; the
// organization name takes priority for the display name.
func MapUserToOrganizer(row map[string]any) models.Organizer {
	name := rowString(row, "organization_name")
	if name == "" {
		name = BuildFullName(row)
	}
	return models.Organizer{
		ID:               idString(row["id"]),
		OrganizationName: rowString(row, "organization_name"),
		FirstName:        rowString(row, "first_name"),
		LastName:         rowString(row, "last_name"),
		Email:            rowString(row, "email"),
		Phone:            rowString(row, "phone"),
		ProfileImage:     rowString(row, "profile_image"),
		Name:             name,
		Image:            rowString(row, "profile_image"),
	}
}

// MapUserToAttendee derives an attendee view from a profile row, filling
// the UI defaults for missing fields and resolving the avatar against the
// backend's public origin.
func MapUserToAttendee(baseURL string, row map[string]any) models.Attendee {
	name := BuildFullName(row)
	if name == "" {
		name = "User"
	}
	return models.Attendee{
		ID:         idString(row["id"]),
		FirstName:  rowString(row, "first_name"),
		LastName:   rowString(row, "last_name"),
		Name:       name,
		Email:      rowString(row, "email"),
		Phone:      rowString(row, "phone"),
		Company:    valueOr(row, "company", "Unknown"),
		Position:   valueOr(row, "position", "Attendee"),
		Status:     valueOr(row, "status", "confirmed"),
		TicketType: valueOr(row, "ticket_type", "Standard"),
		CheckedIn:  toBool(row["checked_in"]),
		Location:   valueOr(row, "location", "Unknown"),
		Avatar:     ResolveImage(baseURL, rowString(row, "profile_image")),
	}
}

func valueOr(row map[string]any, key, fallback string) string {
	if v, ok := nonNil(row, key); ok {
		if s := stringValue(v); s != "" {
			return s
		}
	}
	return fallback
}

// MapVenueRow normalizes a raw venue row.
func MapVenueRow(row map[string]any) models.Venue {
	return models.Venue{
		ID:           idString(row["id"]),
		Name:         rowString(row, "name"),
		Address:      rowString(row, "address"),
		City:         rowString(row, "city"),
		Capacity:     int(ToNumber(row["capacity"])),
		PricePerHour: ToNumber(row["price_per_hour"]),
		VenueType:    rowString(row, "venue_type"),
		Image:        rowString(row, "image"),
		Description:  rowString(row, "description"),
	}
}

// MapNotificationRow normalizes a raw notification row.
func MapNotificationRow(row map[string]any) models.Notification {
	return models.Notification{
		ID:        idString(row["id"]),
		Title:     rowString(row, "title"),
		Message:   rowString(row, "message"),
		Type:      rowString(row, "type"),
		Read:      toBool(row["read"]),
		CreatedAt: rowString(row, "created_at", "created"),
		User:      idString(row["user"]),
	}
}
