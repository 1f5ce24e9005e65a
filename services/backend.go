package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// Collection names on the backend. "profiles" is optional: deployments
// that have not migrated it yet are tolerated on read paths.
const (
	tableEvents        = "events"
	tableVenues        = "venues"
	tableProfiles      = "profiles"
	tableNotifications = "notifications"
	authCollection     = "users"
)

// isMissingCollection reports whether err means the backing collection has
// not been created yet. Read paths over optional collections treat this
// the same as an empty table instead of failing.
func isMissingCollection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "missing collection") || strings.Contains(msg, "does not exist")
}

func isNoRow(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// backendError wraps a backend failure with the operation's fallback
// phrase while keeping the backend's own message visible to the caller.
func backendError(fallback string, err error) error {
	if err == nil {
		return errors.New(fallback)
	}
	if strings.TrimSpace(err.Error()) == "" {
		return errors.New(fallback)
	}
	return fmt.Errorf("%s: %w", fallback, err)
}

// exportRow flattens a record into the loose row shape the mappers consume.
func exportRow(record *core.Record) map[string]any {
	if record == nil {
		return nil
	}
	row := record.PublicExport()
	row["id"] = record.Id
	return row
}

// safeAll lists every row of a collection, tolerating a collection that
// does not exist yet by returning no rows.
func safeAll(app core.App, table string) ([]map[string]any, error) {
	if _, err := app.FindCollectionByNameOrId(table); err != nil {
		if isMissingCollection(err) {
			return nil, nil
		}
		return nil, err
	}
	records, err := app.FindAllRecords(table)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, exportRow(record))
	}
	return rows, nil
}
