package services

import (
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/monitoring"
)

var venueWriteFields = []string{
	"name", "address", "city", "capacity", "price_per_hour", "venue_type",
	"image", "description",
}

type VenueService struct {
	app     core.App
	monitor *monitoring.Monitor
}

func NewVenueService(app core.App, monitor *monitoring.Monitor) *VenueService {
	return &VenueService{app: app, monitor: monitor}
}

func (s *VenueService) FetchVenues() ([]models.Venue, error) {
	records, err := s.app.FindAllRecords(tableVenues)
	if err != nil {
		s.monitor.TrackOperation(tableVenues, "list", "error")
		return nil, backendError("Failed to fetch venues", err)
	}
	s.monitor.TrackOperation(tableVenues, "list", "ok")
	venues := make([]models.Venue, 0, len(records))
	for _, record := range records {
		venues = append(venues, MapVenueRow(exportRow(record)))
	}
	return venues, nil
}

func (s *VenueService) FetchVenueByID(id string) (models.Venue, error) {
	record, err := s.app.FindRecordById(tableVenues, id)
	if err != nil {
		return models.Venue{}, backendError("Failed to fetch venue", err)
	}
	return MapVenueRow(exportRow(record)), nil
}

func (s *VenueService) CreateVenue(input models.CreateVenueInput) (models.Venue, error) {
	collection, err := s.app.FindCollectionByNameOrId(tableVenues)
	if err != nil {
		return models.Venue{}, backendError("Failed to create venue", err)
	}
	record := core.NewRecord(collection)
	record.Set("name", input.Name)
	record.Set("address", input.Address)
	record.Set("city", input.City)
	record.Set("capacity", input.Capacity)
	record.Set("price_per_hour", input.PricePerHour)
	record.Set("venue_type", input.VenueType)
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableVenues, "create", "error")
		return models.Venue{}, backendError("Failed to create venue", err)
	}
	s.monitor.TrackOperation(tableVenues, "create", "ok")
	return MapVenueRow(exportRow(record)), nil
}

func (s *VenueService) UpdateVenue(id string, updates map[string]any) (models.Venue, error) {
	record, err := s.app.FindRecordById(tableVenues, id)
	if err != nil {
		return models.Venue{}, backendError("Failed to update venue", err)
	}
	for _, field := range venueWriteFields {
		if v, ok := updates[field]; ok {
			record.Set(field, v)
		}
	}
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableVenues, "update", "error")
		return models.Venue{}, backendError("Failed to update venue", err)
	}
	s.monitor.TrackOperation(tableVenues, "update", "ok")
	return MapVenueRow(exportRow(record)), nil
}

func (s *VenueService) DeleteVenue(id string) error {
	record, err := s.app.FindRecordById(tableVenues, id)
	if err != nil {
		if isNoRow(err) {
			return nil
		}
		return backendError("Failed to delete venue", err)
	}
	if err := s.app.Delete(record); err != nil {
		s.monitor.TrackOperation(tableVenues, "delete", "error")
		return backendError("Failed to delete venue", err)
	}
	s.monitor.TrackOperation(tableVenues, "delete", "ok")
	return nil
}
