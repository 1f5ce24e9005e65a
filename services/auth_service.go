package services

import (
	"log/slog"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"eventdesk/internal/status"
	"eventdesk/models"
	"eventdesk/monitoring"
	"eventdesk/utils"
)

// Profile fields that live on the optional profiles collection in
// addition to the auth record itself.
var profileFields = []string{
	"first_name", "last_name", "full_name", "phone",
	"organization_name", "profile_image",
}

type AuthService struct {
	app     core.App
	baseURL string
	monitor *monitoring.Monitor
}

func NewAuthService(app core.App, baseURL string, monitor *monitoring.Monitor) *AuthService {
	return &AuthService{app: app, baseURL: baseURL, monitor: monitor}
}

// Login authenticates by email and password and returns a fresh token
// plus the merged profile. Invalid credentials come back as a sentinel
// so the handler can map them to 401 without leaking which half failed.
func (s *AuthService) Login(email, password string) (models.AuthResponse, error) {
	record, err := s.app.FindAuthRecordByEmail(authCollection, email)
	if err != nil {
		if isNoRow(err) {
			return models.AuthResponse{}, status.ErrInvalidCredentials
		}
		return models.AuthResponse{}, backendError("Failed to sign in", err)
	}
	if !record.ValidatePassword(password) {
		return models.AuthResponse{}, status.ErrInvalidCredentials
	}
	token, err := record.NewAuthToken()
	if err != nil {
		return models.AuthResponse{}, backendError("Failed to sign in", err)
	}
	profile, err := s.Me(record)
	if err != nil {
		return models.AuthResponse{}, err
	}
	s.monitor.TrackOperation(authCollection, "login", "ok")
	return models.AuthResponse{Token: token, User: profile}, nil
}

// Register creates the auth record, splitting the display name into
// first/last halves, then mirrors the name fields onto the profiles
// collection when it exists.
func (s *AuthService) Register(input models.RegisterInput) (models.AuthResponse, error) {
	firstName, lastName := splitName(input.Name)

	collection, err := s.app.FindCollectionByNameOrId(authCollection)
	if err != nil {
		return models.AuthResponse{}, backendError("Failed to sign up", err)
	}
	record := core.NewRecord(collection)
	record.SetEmail(input.Email)
	record.SetPassword(input.Password)
	record.Set("first_name", firstName)
	record.Set("last_name", lastName)
	record.Set("name", strings.TrimSpace(firstName+" "+lastName))
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(authCollection, "register", "error")
		return models.AuthResponse{}, backendError("Failed to sign up", err)
	}
	s.monitor.TrackOperation(authCollection, "register", "ok")

	if err := s.upsertProfile(record.Id, map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
		"full_name":  strings.TrimSpace(firstName + " " + lastName),
	}); err != nil {
		slog.Warn("profile row not created on signup", "user", record.Id, "error", err)
	}

	token, err := record.NewAuthToken()
	if err != nil {
		return models.AuthResponse{}, backendError("Failed to sign up", err)
	}
	profile, err := s.Me(record)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{Token: token, User: profile}, nil
}

// Logout invalidates every token issued for the record by rotating its
// token key.
func (s *AuthService) Logout(record *core.Record) error {
	if record == nil {
		return status.ErrNotAuthenticated
	}
	record.RefreshTokenKey()
	if err := s.app.Save(record); err != nil {
		return backendError("Failed to sign out", err)
	}
	s.monitor.TrackOperation(authCollection, "logout", "ok")
	return nil
}

// Me merges the auth record with its optional profiles row. A missing
// profiles collection or row falls back to the auth record's own fields.
func (s *AuthService) Me(record *core.Record) (models.Profile, error) {
	if record == nil {
		return models.Profile{}, status.ErrNotAuthenticated
	}
	profileRow, err := s.profileRow(record.Id)
	if err != nil {
		return models.Profile{}, backendError("Failed to fetch profile", err)
	}
	return buildProfile(record, profileRow), nil
}

// UploadAvatar stores the file on the auth record and mirrors the public
// URL into the profiles row. The stored name is prefixed with a random
// code so repeated uploads never collide.
func (s *AuthService) UploadAvatar(record *core.Record, file *filesystem.File) (models.Profile, error) {
	if record == nil {
		return models.Profile{}, status.ErrNotAuthenticated
	}
	if file == nil {
		return models.Profile{}, backendError("Failed to upload avatar", nil)
	}
	code, err := utils.GenerateCode(4)
	if err != nil {
		return models.Profile{}, backendError("Failed to upload avatar", err)
	}
	file.Name = code + "_" + file.Name
	record.Set("avatar", file)

	url := "/api/files/" + record.BaseFilesPath() + "/" + file.Name
	record.Set("profile_image", url)
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(authCollection, "avatar", "error")
		return models.Profile{}, backendError("Failed to upload avatar", err)
	}
	s.monitor.TrackOperation(authCollection, "avatar", "ok")

	if err := s.upsertProfile(record.Id, map[string]any{"profile_image": url}); err != nil {
		slog.Warn("profile image not mirrored", "user", record.Id, "error", err)
	}
	return s.Me(record)
}

// ChangePassword verifies the current password before setting the new
// one; a wrong current password comes back as a sentinel.
func (s *AuthService) ChangePassword(record *core.Record, current, next string) error {
	if record == nil {
		return status.ErrNotAuthenticated
	}
	if !record.ValidatePassword(current) {
		return status.ErrWrongPassword
	}
	record.SetPassword(next)
	if err := s.app.Save(record); err != nil {
		return backendError("Failed to change password", err)
	}
	s.monitor.TrackOperation(authCollection, "password", "ok")
	return nil
}

// Session returns the minimal authenticated-identity view, or nil when
// unauthenticated.
func (s *AuthService) Session(record *core.Record) *models.Session {
	if record == nil {
		return nil
	}
	return &models.Session{UserID: record.Id, Email: record.Email()}
}

// profileRow loads the user's profiles row, tolerating both a missing
// collection and a missing row.
func (s *AuthService) profileRow(id string) (map[string]any, error) {
	if _, err := s.app.FindCollectionByNameOrId(tableProfiles); err != nil {
		if isMissingCollection(err) {
			return nil, nil
		}
		return nil, err
	}
	record, err := s.app.FindRecordById(tableProfiles, id)
	if err != nil {
		if isNoRow(err) {
			return nil, nil
		}
		return nil, err
	}
	return exportRow(record), nil
}

// upsertProfile writes fields onto the profiles row keyed by the auth
// record's id, creating the row on first write. A missing profiles
// collection is not an error.
func (s *AuthService) upsertProfile(id string, fields map[string]any) error {
	collection, err := s.app.FindCollectionByNameOrId(tableProfiles)
	if err != nil {
		if isMissingCollection(err) {
			return nil
		}
		return err
	}
	record, err := s.app.FindRecordById(tableProfiles, id)
	if err != nil {
		if !isNoRow(err) {
			return err
		}
		record = core.NewRecord(collection)
		record.Id = id
	}
	for _, field := range profileFields {
		if v, ok := fields[field]; ok {
			record.Set(field, v)
		}
	}
	return s.app.Save(record)
}

// buildProfile merges the auth record with the profiles row; profile
// fields win when present, and a fully empty name falls back to "User".
func buildProfile(record *core.Record, profileRow map[string]any) models.Profile {
	p := models.Profile{
		ID:               record.Id,
		Email:            record.Email(),
		CreatedAt:        record.GetString("created"),
		FirstName:        record.GetString("first_name"),
		LastName:         record.GetString("last_name"),
		Phone:            record.GetString("phone"),
		OrganizationName: record.GetString("organization_name"),
		ProfileImage:     record.GetString("profile_image"),
	}
	if profileRow != nil {
		if v, ok := nonNil(profileRow, "first_name"); ok {
			p.FirstName = stringValue(v)
		}
		if v, ok := nonNil(profileRow, "last_name"); ok {
			p.LastName = stringValue(v)
		}
		if v, ok := nonNil(profileRow, "phone"); ok {
			p.Phone = stringValue(v)
		}
		if v, ok := nonNil(profileRow, "organization_name"); ok {
			p.OrganizationName = stringValue(v)
		}
		if v, ok := nonNil(profileRow, "profile_image"); ok {
			p.ProfileImage = stringValue(v)
		}
	}
	p.FullName = rowString(profileRow, "full_name")
	if p.FullName == "" {
		p.FullName = strings.TrimSpace(joinNonEmpty(" ", p.FirstName, p.LastName))
	}
	if p.FullName == "" {
		p.FullName = "User"
	}
	return p
}

// splitName divides a display name into first and last halves; either
// half defaults to "User" when the input runs out of tokens.
func splitName(name string) (string, string) {
	tokens := strings.Fields(strings.TrimSpace(name))
	if len(tokens) == 0 {
		return "User", "User"
	}
	if len(tokens) == 1 {
		return tokens[0], "User"
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}
