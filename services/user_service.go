package services

import (
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/monitoring"
)

type UserService struct {
	app     core.App
	auth    *AuthService
	baseURL string
	monitor *monitoring.Monitor
}

func NewUserService(app core.App, auth *AuthService, baseURL string, monitor *monitoring.Monitor) *UserService {
	return &UserService{app: app, auth: auth, baseURL: baseURL, monitor: monitor}
}

// FetchOrganizers returns the profiles that carry an organization name.
// A missing profiles collection yields an empty list.
func (s *UserService) FetchOrganizers() ([]models.Organizer, error) {
	rows, err := safeAll(s.app, tableProfiles)
	if err != nil {
		s.monitor.TrackOperation(tableProfiles, "list", "error")
		return nil, backendError("Failed to fetch organizers", err)
	}
	s.monitor.TrackOperation(tableProfiles, "list", "ok")
	organizers := make([]models.Organizer, 0)
	for _, row := range rows {
		if strings.TrimSpace(rowString(row, "organization_name")) == "" {
			continue
		}
		organizers = append(organizers, MapUserToOrganizer(row))
	}
	return organizers, nil
}

// FetchAttendees returns the profiles without an organization name.
func (s *UserService) FetchAttendees() ([]models.Attendee, error) {
	rows, err := safeAll(s.app, tableProfiles)
	if err != nil {
		s.monitor.TrackOperation(tableProfiles, "list", "error")
		return nil, backendError("Failed to fetch attendees", err)
	}
	s.monitor.TrackOperation(tableProfiles, "list", "ok")
	attendees := make([]models.Attendee, 0)
	for _, row := range rows {
		if strings.TrimSpace(rowString(row, "organization_name")) != "" {
			continue
		}
		attendees = append(attendees, MapUserToAttendee(s.baseURL, row))
	}
	return attendees, nil
}

// FetchUserByID resolves a profile row into the attendee view. When the
// profiles collection or row is absent and the caller asks about their
// own id, the merged auth profile stands in.
func (s *UserService) FetchUserByID(authRecord *core.Record, id string) (models.Attendee, error) {
	record, err := s.app.FindRecordById(tableProfiles, id)
	if err != nil {
		if (isMissingCollection(err) || isNoRow(err)) && authRecord != nil && authRecord.Id == id {
			profile, meErr := s.auth.Me(authRecord)
			if meErr != nil {
				return models.Attendee{}, meErr
			}
			return attendeeFromProfile(s.baseURL, profile), nil
		}
		return models.Attendee{}, backendError("Failed to fetch user", err)
	}
	return MapUserToAttendee(s.baseURL, exportRow(record)), nil
}

// CreateUser inserts a profiles row directly; it does not create an auth
// account.
func (s *UserService) CreateUser(input models.CreateUserInput) (models.Attendee, error) {
	collection, err := s.app.FindCollectionByNameOrId(tableProfiles)
	if err != nil {
		return models.Attendee{}, backendError("Failed to create user", err)
	}
	record := core.NewRecord(collection)
	record.Set("first_name", input.FirstName)
	record.Set("last_name", input.LastName)
	record.Set("email", input.Email)
	record.Set("phone", input.Phone)
	record.Set("organization_name", input.OrganizationName)
	record.Set("profile_image", input.ProfileImage)
	record.Set("full_name", strings.TrimSpace(input.FirstName+" "+input.LastName))
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableProfiles, "create", "error")
		return models.Attendee{}, backendError("Failed to create user", err)
	}
	s.monitor.TrackOperation(tableProfiles, "create", "ok")
	return MapUserToAttendee(s.baseURL, exportRow(record)), nil
}

// Fields UpdateUser will copy onto a profiles row.
var userUpdateFields = []string{
	"first_name", "last_name", "full_name", "phone",
	"organization_name", "profile_image", "email",
	"company", "position", "status", "ticket_type", "checked_in", "location",
}

// UpdateUser writes the allowed fields onto the profiles row. When the
// target is the caller's own account, the name and email fields are also
// pushed onto the auth record so the identity stays in sync.
func (s *UserService) UpdateUser(authRecord *core.Record, id string, data map[string]any) (models.Attendee, error) {
	self := authRecord != nil && authRecord.Id == id

	if self {
		for _, field := range []string{"first_name", "last_name", "phone", "organization_name", "profile_image"} {
			if v, ok := data[field]; ok {
				authRecord.Set(field, v)
			}
		}
		first := authRecord.GetString("first_name")
		last := authRecord.GetString("last_name")
		authRecord.Set("name", strings.TrimSpace(first+" "+last))
		if v, ok := data["email"].(string); ok && v != "" {
			authRecord.SetEmail(v)
		}
		if err := s.app.Save(authRecord); err != nil {
			return models.Attendee{}, backendError("Failed to update profile", err)
		}
	}

	record, err := s.app.FindRecordById(tableProfiles, id)
	if err != nil {
		if isMissingCollection(err) || isNoRow(err) {
			if self {
				if upErr := s.auth.upsertProfile(id, data); upErr != nil {
					return models.Attendee{}, backendError("Failed to update user", upErr)
				}
				profile, meErr := s.auth.Me(authRecord)
				if meErr != nil {
					return models.Attendee{}, meErr
				}
				return attendeeFromProfile(s.baseURL, profile), nil
			}
		}
		return models.Attendee{}, backendError("Failed to update user", err)
	}
	for _, field := range userUpdateFields {
		if v, ok := data[field]; ok {
			record.Set(field, v)
		}
	}
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableProfiles, "update", "error")
		return models.Attendee{}, backendError("Failed to update user", err)
	}
	s.monitor.TrackOperation(tableProfiles, "update", "ok")
	return MapUserToAttendee(s.baseURL, exportRow(record)), nil
}

// DeleteUser removes the profiles row; an already-absent row or
// collection counts as done.
func (s *UserService) DeleteUser(id string) error {
	record, err := s.app.FindRecordById(tableProfiles, id)
	if err != nil {
		if isMissingCollection(err) || isNoRow(err) {
			return nil
		}
		return backendError("Failed to delete user", err)
	}
	if err := s.app.Delete(record); err != nil {
		s.monitor.TrackOperation(tableProfiles, "delete", "error")
		return backendError("Failed to delete user", err)
	}
	s.monitor.TrackOperation(tableProfiles, "delete", "ok")
	return nil
}

func attendeeFromProfile(baseURL string, p models.Profile) models.Attendee {
	name := p.FullName
	if name == "" {
		name = "User"
	}
	return models.Attendee{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Name:       name,
		Email:      p.Email,
		Phone:      p.Phone,
		Company:    "Unknown",
		Position:   "Attendee",
		Status:     "confirmed",
		TicketType: "Standard",
		Location:   "Unknown",
		Avatar:     ResolveImage(baseURL, p.ProfileImage),
	}
}
