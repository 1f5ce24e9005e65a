package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/monitoring"
)

// Fields a client may write on an event row. Everything else on the
// view-model is derived by the mapper.
var eventWriteFields = []string{
	"title", "description", "event_date", "start_time", "end_time",
	"venue", "location_override", "address_override", "organizer",
	"image", "status", "category", "size", "price", "original_price",
	"highlights", "tags", "max_attendees", "attendees_count", "attendees",
}

type EventService struct {
	app     core.App
	monitor *monitoring.Monitor
}

func NewEventService(app core.App, monitor *monitoring.Monitor) *EventService {
	return &EventService{app: app, monitor: monitor}
}

// FetchEvents loads every event row together with the venue and profile
// lookup tables and maps them into the joined view-model.
func (s *EventService) FetchEvents(ctx context.Context) ([]models.Event, error) {
	started := time.Now()
	records, err := s.app.FindAllRecords(tableEvents)
	if err != nil {
		s.monitor.TrackOperation(tableEvents, "list", "error")
		return nil, backendError("Failed to fetch events", err)
	}
	s.monitor.TrackOperation(tableEvents, "list", "ok")
	s.monitor.ObserveOperation(tableEvents, "list", started)

	venuesByID, usersByID, err := s.lookupIndexes(ctx)
	if err != nil {
		return nil, backendError("Failed to fetch events", err)
	}

	events := make([]models.Event, 0, len(records))
	for _, record := range records {
		events = append(events, MapEventRow(exportRow(record), venuesByID, usersByID))
	}
	return events, nil
}

// FetchEventByID returns the fully resolved view of a single event.
func (s *EventService) FetchEventByID(ctx context.Context, id string) (models.Event, error) {
	record, err := s.app.FindRecordById(tableEvents, id)
	if err != nil {
		s.monitor.TrackOperation(tableEvents, "get", "error")
		return models.Event{}, backendError("Failed to fetch event", err)
	}
	s.monitor.TrackOperation(tableEvents, "get", "ok")

	venuesByID, usersByID, err := s.lookupIndexes(ctx)
	if err != nil {
		return models.Event{}, backendError("Failed to fetch event", err)
	}
	return MapEventRow(exportRow(record), venuesByID, usersByID), nil
}

// CreateEvent writes the row and then re-fetches the canonical mapped
// record, so the caller always observes the joined view rather than the
// mutation's own return shape.
func (s *EventService) CreateEvent(ctx context.Context, input models.CreateEventInput) (models.Event, error) {
	collection, err := s.app.FindCollectionByNameOrId(tableEvents)
	if err != nil {
		return models.Event{}, backendError("Failed to create event", err)
	}
	record := core.NewRecord(collection)
	applyEventInput(record, input)
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableEvents, "create", "error")
		return models.Event{}, backendError("Failed to create event", err)
	}
	s.monitor.TrackOperation(tableEvents, "create", "ok")
	return s.FetchEventByID(ctx, record.Id)
}

// UpdateEvent applies a partial update and re-fetches the canonical view.
func (s *EventService) UpdateEvent(ctx context.Context, id string, updates map[string]any) (models.Event, error) {
	record, err := s.app.FindRecordById(tableEvents, id)
	if err != nil {
		return models.Event{}, backendError("Failed to update event", err)
	}
	for _, field := range eventWriteFields {
		if v, ok := updates[field]; ok {
			record.Set(field, v)
		}
	}
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableEvents, "update", "error")
		return models.Event{}, backendError("Failed to update event", err)
	}
	s.monitor.TrackOperation(tableEvents, "update", "ok")
	return s.FetchEventByID(ctx, record.Id)
}

func (s *EventService) DeleteEvent(id string) error {
	record, err := s.app.FindRecordById(tableEvents, id)
	if err != nil {
		if isNoRow(err) {
			return nil
		}
		return backendError("Failed to delete event", err)
	}
	if err := s.app.Delete(record); err != nil {
		s.monitor.TrackOperation(tableEvents, "delete", "error")
		return backendError("Failed to delete event", err)
	}
	s.monitor.TrackOperation(tableEvents, "delete", "ok")
	return nil
}

// lookupIndexes loads the venue and profile lookup tables concurrently
// and awaits them jointly; the two reads are independent snapshots with
// no shared state.
func (s *EventService) lookupIndexes(ctx context.Context) (map[string]map[string]any, map[string]map[string]any, error) {
	var venues, users []map[string]any
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := safeAll(s.app, tableVenues)
		if err != nil {
			return err
		}
		venues = rows
		return nil
	})
	g.Go(func() error {
		rows, err := safeAll(s.app, tableProfiles)
		if err != nil {
			return err
		}
		users = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return IndexByID(venues), IndexByID(users), nil
}

func applyEventInput(record *core.Record, input models.CreateEventInput) {
	record.Set("title", input.Title)
	record.Set("description", input.Description)
	record.Set("event_date", input.EventDate)
	record.Set("start_time", input.StartTime)
	record.Set("end_time", input.EndTime)
	if input.Venue != "" {
		record.Set("venue", input.Venue)
	}
	record.Set("location_override", input.LocationOverride)
	record.Set("address_override", input.AddressOverride)
	if input.Organizer != "" {
		record.Set("organizer", input.Organizer)
	}
	record.Set("image", input.Image)
	record.Set("status", input.Status)
	record.Set("category", input.Category)
	record.Set("size", input.Size)
	record.Set("price", input.Price)
	if input.OriginalPrice != nil {
		record.Set("original_price", *input.OriginalPrice)
	}
	record.Set("highlights", input.Highlights)
	record.Set("tags", input.Tags)
	record.Set("max_attendees", input.MaxAttendees)
}
