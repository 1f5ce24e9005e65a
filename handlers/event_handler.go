package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/services"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) List(e *core.RequestEvent) error {
	events, err := h.events.FetchEvents(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	event, err := h.events.FetchEventByID(e.Request.Context(), id)
	if err != nil {
		return apis.NewNotFoundError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(e *core.RequestEvent) error {
	input := models.CreateEventInput{}
	if err := e.BindBody(&input); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if input.Title == "" {
		return apis.NewBadRequestError("A title is required", nil)
	}
	event, err := h.events.CreateEvent(e.Request.Context(), input)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	updates := map[string]any{}
	if err := e.BindBody(&updates); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	event, err := h.events.UpdateEvent(e.Request.Context(), id, updates)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	if err := h.events.DeleteEvent(id); err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]bool{"ok": true})
}
