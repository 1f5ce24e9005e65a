package services

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
)

func newAuthRecord(t *testing.T) *core.Record {
	t.Helper()
	collection := core.NewAuthCollection("users")
	collection.Fields.Add(
		&core.TextField{Name: "first_name"},
		&core.TextField{Name: "last_name"},
		&core.TextField{Name: "phone"},
		&core.TextField{Name: "organization_name"},
		&core.TextField{Name: "profile_image"},
	)
	record := core.NewRecord(collection)
	record.Id = "u1"
	record.SetEmail("ada@example.com")
	record.Set("first_name", "Ada")
	record.Set("last_name", "Lovelace")
	return record
}

func TestBuildProfileMergesProfileRow(t *testing.T) {
	record := newAuthRecord(t)
	profile := buildProfile(record, map[string]any{
		"phone":         "+43 1 23456",
		"profile_image": "/api/files/u1/a.png",
	})
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "+43 1 23456", profile.Phone)
	assert.Equal(t, "/api/files/u1/a.png", profile.ProfileImage)
	assert.Equal(t, "Ada Lovelace", profile.FullName)
}

func TestBuildProfilePrefersStoredFullName(t *testing.T) {
	record := newAuthRecord(t)
	profile := buildProfile(record, map[string]any{"full_name": "Countess of Lovelace"})
	assert.Equal(t, "Countess of Lovelace", profile.FullName)
}

func TestBuildProfileNameFallback(t *testing.T) {
	collection := core.NewAuthCollection("users")
	record := core.NewRecord(collection)
	record.Id = "u2"
	profile := buildProfile(record, nil)
	assert.Equal(t, "User", profile.FullName)
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Ada Augusta King-Noel", "Ada", "Augusta King-Noel"},
		{"Ada", "Ada", "User"},
		{"", "User", "User"},
		{"   ", "User", "User"},
	}
	for _, c := range cases {
		first, last := splitName(c.in)
		assert.Equal(t, c.first, first, c.in)
		assert.Equal(t, c.last, last, c.in)
	}
}
