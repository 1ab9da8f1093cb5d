package services

import (
	"time"

	"github.com/andikahakim/royba/internal/models"
	"github.com/google/uuid"
)

type NotificationStore interface {
	ListNotificationsFor(target string) ([]models.Notification, error)
	GetNotification(notificationID string) (models.Notification, bool, error)
	UpsertNotification(notification models.Notification) error
}

// NotificationService fans domain events out to per-user inboxes and
// the shared manager channel. Entries are append-only; only the read
// flag changes after creation.
type NotificationService struct {
	records NotificationStore
	now     func() time.Time
}

func NewNotificationService(records NotificationStore, now func() time.Time) *NotificationService {
	if now == nil {
		now = time.Now
	}
	return &NotificationService{records: records, now: now}
}

func (service *NotificationService) NotifyUser(userID string, kind string, message string) (models.Notification, error) {
	notification := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      kind,
		Message:   message,
		CreatedAt: service.now().Format(time.RFC3339),
	}
	if err := service.records.UpsertNotification(notification); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (service *NotificationService) NotifyManager(kind string, message string) (models.Notification, error) {
	return service.NotifyUser(models.ManagerChannel, kind, message)
}

func (service *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return service.records.ListNotificationsFor(userID)
}

func (service *NotificationService) ListForManager() ([]models.Notification, error) {
	return service.records.ListNotificationsFor(models.ManagerChannel)
}

func (service *NotificationService) MarkRead(notificationID string) (models.Notification, bool, error) {
	notification, found, err := service.records.GetNotification(notificationID)
	if err != nil || !found {
		return models.Notification{}, false, err
	}
	if notification.Read {
		return notification, true, nil
	}
	notification.Read = true
	if err := service.records.UpsertNotification(notification); err != nil {
		return models.Notification{}, false, err
	}
	return notification, true, nil
}

func (service *NotificationService) UnreadCount(target string) (int, error) {
	notifications, err := service.records.ListNotificationsFor(target)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, notification := range notifications {
		if !notification.Read {
			count++
		}
	}
	return count, nil
}
