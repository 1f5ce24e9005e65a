package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// userScope resolves the target user for bulk operations: an explicit
// ?user= query wins, otherwise the authenticated caller.
func userScope(e *core.RequestEvent) string {
	if user := e.Request.URL.Query().Get("user"); user != "" {
		return user
	}
	if e.Auth != nil {
		return e.Auth.Id
	}
	return ""
}

func (h *NotificationHandler) List(e *core.RequestEvent) error {
	notifications, err := h.notifications.FetchNotifications(userScope(e))
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(e *core.RequestEvent) error {
	input := models.CreateNotificationInput{}
	if err := e.BindBody(&input); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if input.Title == "" {
		return apis.NewBadRequestError("A title is required", nil)
	}
	notification, err := h.notifications.CreateNotification(input)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusCreated, notification)
}

// MarkRead flips the read flag; the body may carry {"read": false} to
// mark a notification unread again, and defaults to read.
func (h *NotificationHandler) MarkRead(e *core.RequestEvent) error {
	req := struct {
		Read *bool `json:"read"`
	}{}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	read := true
	if req.Read != nil {
		read = *req.Read
	}
	notification, err := h.notifications.MarkNotificationRead(e.Request.PathValue("id"), read)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(e *core.RequestEvent) error {
	updated, err := h.notifications.MarkAllNotificationsRead(userScope(e))
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]int{"updated": updated})
}

func (h *NotificationHandler) Delete(e *core.RequestEvent) error {
	if err := h.notifications.DeleteNotification(e.Request.PathValue("id")); err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *NotificationHandler) ClearAll(e *core.RequestEvent) error {
	cleared, err := h.notifications.ClearAllNotifications(userScope(e))
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]int{"cleared": cleared})
}
