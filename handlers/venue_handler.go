package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/services"
)

type VenueHandler struct {
	venues *services.VenueService
}

func NewVenueHandler(venues *services.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

func (h *VenueHandler) List(e *core.RequestEvent) error {
	venues, err := h.venues.FetchVenues()
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) Get(e *core.RequestEvent) error {
	venue, err := h.venues.FetchVenueByID(e.Request.PathValue("id"))
	if err != nil {
		return apis.NewNotFoundError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) Create(e *core.RequestEvent) error {
	input := models.CreateVenueInput{}
	if err := e.BindBody(&input); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if input.Name == "" {
		return apis.NewBadRequestError("A name is required", nil)
	}
	venue, err := h.venues.CreateVenue(input)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) Update(e *core.RequestEvent) error {
	updates := map[string]any{}
	if err := e.BindBody(&updates); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	venue, err := h.venues.UpdateVenue(e.Request.PathValue("id"), updates)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) Delete(e *core.RequestEvent) error {
	if err := h.venues.DeleteVenue(e.Request.PathValue("id")); err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]bool{"ok": true})
}
