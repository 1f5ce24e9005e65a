package services

import (
	"log/slog"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	pubnub "github.com/pubnub/go"

	"eventdesk/models"
	"eventdesk/monitoring"
)

type NotificationService struct {
	app     core.App
	pubnub  *pubnub.PubNub
	monitor *monitoring.Monitor
}

func NewNotificationService(app core.App, pn *pubnub.PubNub, monitor *monitoring.Monitor) *NotificationService {
	return &NotificationService{app: app, pubnub: pn, monitor: monitor}
}

// FetchNotifications lists a user's notifications, newest first.
func (s *NotificationService) FetchNotifications(userID string) ([]models.Notification, error) {
	records, err := s.findForUser(userID)
	if err != nil {
		s.monitor.TrackOperation(tableNotifications, "list", "error")
		return nil, backendError("Failed to fetch notifications", err)
	}
	s.monitor.TrackOperation(tableNotifications, "list", "ok")
	notifications := make([]models.Notification, 0, len(records))
	for _, record := range records {
		notifications = append(notifications, MapNotificationRow(exportRow(record)))
	}
	return notifications, nil
}

// CreateNotification stores the row and, when a realtime client is
// configured, publishes it to the target user's channel. Publish
// failures are logged but never fail the write.
func (s *NotificationService) CreateNotification(input models.CreateNotificationInput) (models.Notification, error) {
	collection, err := s.app.FindCollectionByNameOrId(tableNotifications)
	if err != nil {
		return models.Notification{}, backendError("Failed to create notification", err)
	}
	record := core.NewRecord(collection)
	record.Set("title", input.Title)
	record.Set("message", input.Message)
	record.Set("type", input.Type)
	record.Set("read", false)
	if input.User != "" {
		record.Set("user", input.User)
	}
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableNotifications, "create", "error")
		return models.Notification{}, backendError("Failed to create notification", err)
	}
	s.monitor.TrackOperation(tableNotifications, "create", "ok")

	notification := MapNotificationRow(exportRow(record))
	s.publish(notification)
	return notification, nil
}

// MarkNotificationRead sets the read flag on a single notification.
func (s *NotificationService) MarkNotificationRead(id string, read bool) (models.Notification, error) {
	record, err := s.app.FindRecordById(tableNotifications, id)
	if err != nil {
		return models.Notification{}, backendError("Failed to update notification", err)
	}
	record.Set("read", read)
	if err := s.app.Save(record); err != nil {
		s.monitor.TrackOperation(tableNotifications, "update", "error")
		return models.Notification{}, backendError("Failed to update notification", err)
	}
	s.monitor.TrackOperation(tableNotifications, "update", "ok")
	return MapNotificationRow(exportRow(record)), nil
}

func (s *NotificationService) DeleteNotification(id string) error {
	record, err := s.app.FindRecordById(tableNotifications, id)
	if err != nil {
		if isNoRow(err) {
			return nil
		}
		return backendError("Failed to delete notification", err)
	}
	if err := s.app.Delete(record); err != nil {
		s.monitor.TrackOperation(tableNotifications, "delete", "error")
		return backendError("Failed to delete notification", err)
	}
	s.monitor.TrackOperation(tableNotifications, "delete", "ok")
	return nil
}

// MarkAllNotificationsRead flips every unread notification for the user
// and reports how many notifications matched overall.
func (s *NotificationService) MarkAllNotificationsRead(userID string) (int, error) {
	records, err := s.findForUser(userID)
	if err != nil {
		return 0, backendError("Failed to update notifications", err)
	}
	for _, record := range records {
		if record.GetBool("read") {
			continue
		}
		record.Set("read", true)
		if err := s.app.Save(record); err != nil {
			return 0, backendError("Failed to update notifications", err)
		}
	}
	s.monitor.TrackOperation(tableNotifications, "update", "ok")
	return len(records), nil
}

// ClearAllNotifications counts the user's notifications before deleting
// them, so the caller learns how many were removed even though the
// deletes themselves return nothing.
func (s *NotificationService) ClearAllNotifications(userID string) (int, error) {
	exprs := []dbx.Expression{}
	if userID != "" {
		exprs = append(exprs, dbx.HashExp{"user": userID})
	}
	total, err := s.app.CountRecords(tableNotifications, exprs...)
	if err != nil {
		return 0, backendError("Failed to count notifications", err)
	}
	records, err := s.findForUser(userID)
	if err != nil {
		return 0, backendError("Failed to clear notifications", err)
	}
	for _, record := range records {
		if err := s.app.Delete(record); err != nil {
			return 0, backendError("Failed to clear notifications", err)
		}
	}
	s.monitor.TrackOperation(tableNotifications, "delete", "ok")
	return int(total), nil
}

func (s *NotificationService) findForUser(userID string) ([]*core.Record, error) {
	query := s.app.RecordQuery(tableNotifications).OrderBy("created DESC")
	if userID != "" {
		query = query.AndWhere(dbx.HashExp{"user": userID})
	}
	records := []*core.Record{}
	if err := query.All(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *NotificationService) publish(n models.Notification) {
	if s.pubnub == nil {
		return
	}
	channel := "notifications"
	if n.User != "" {
		channel = "user-" + n.User
	}
	_, _, err := s.pubnub.Publish().
		Channel(channel).
		Message(n).
		Execute()
	if err != nil {
		slog.Warn("notification publish failed", "channel", channel, "error", err)
		return
	}
	s.monitor.TrackNotificationPush()
}
