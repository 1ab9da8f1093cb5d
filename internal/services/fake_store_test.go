package services

import (
	"sort"
	"testing"
	"time"

	"github.com/andikahakim/royba/internal/i18n"
	"github.com/andikahakim/royba/internal/models"
)

// fakeStore is an in-memory stand-in for the record store, mirroring
// its keyed-container semantics.
type fakeStore struct {
	users           map[string]models.User
	attendance      map[string]models.Attendance
	bundles         map[string]models.TaskBundle
	requests        map[string]models.AuthorizationRequest
	notifications   map[string]models.Notification
	bundleSaves     int
	attendanceSaves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         map[string]models.User{},
		attendance:    map[string]models.Attendance{},
		bundles:       map[string]models.TaskBundle{},
		requests:      map[string]models.AuthorizationRequest{},
		notifications: map[string]models.Notification{},
	}
}

func (fake *fakeStore) ListUsers() ([]models.User, error) {
	list := make([]models.User, 0, len(fake.users))
	for _, user := range fake.users {
		list = append(list, user)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (fake *fakeStore) GetUser(userID string) (models.User, bool, error) {
	user, found := fake.users[userID]
	return user, found, nil
}

func (fake *fakeStore) FindUserByUsername(username string) (models.User, bool, error) {
	users, _ := fake.ListUsers()
	for _, user := range users {
		if user.Username == username {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (fake *fakeStore) UpsertUser(user models.User) error {
	fake.users[user.ID] = user
	return nil
}

func (fake *fakeStore) DeleteUser(userID string) error {
	delete(fake.users, userID)
	return nil
}

func (fake *fakeStore) ListAttendance() ([]models.Attendance, error) {
	list := make([]models.Attendance, 0, len(fake.attendance))
	for _, record := range fake.attendance {
		list = append(list, record)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		if list[i].CheckIn != list[j].CheckIn {
			return list[i].CheckIn < list[j].CheckIn
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (fake *fakeStore) ListAttendanceForUser(userID string) ([]models.Attendance, error) {
	records, _ := fake.ListAttendance()
	filtered := make([]models.Attendance, 0, len(records))
	for _, record := range records {
		if record.UserID == userID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (fake *fakeStore) FindAttendance(userID string, date string) (models.Attendance, bool, error) {
	records, _ := fake.ListAttendance()
	var match models.Attendance
	found := false
	for _, record := range records {
		if record.UserID == userID && record.Date == date {
			match = record
			found = true
		}
	}
	return match, found, nil
}

func (fake *fakeStore) UpsertAttendance(record models.Attendance) error {
	fake.attendance[record.ID] = record
	fake.attendanceSaves++
	return nil
}

func (fake *fakeStore) ListTaskBundles() ([]models.TaskBundle, error) {
	list := make([]models.TaskBundle, 0, len(fake.bundles))
	for _, bundle := range fake.bundles {
		list = append(list, bundle)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UserID < list[j].UserID })
	return list, nil
}

func (fake *fakeStore) GetTaskBundle(userID string) (models.TaskBundle, bool, error) {
	bundle, found := fake.bundles[userID]
	return bundle, found, nil
}

func (fake *fakeStore) PutTaskBundle(bundle models.TaskBundle) error {
	fake.bundles[bundle.UserID] = bundle
	fake.bundleSaves++
	return nil
}

func (fake *fakeStore) PutTaskBundles(bundles []models.TaskBundle) error {
	for _, bundle := range bundles {
		fake.bundles[bundle.UserID] = bundle
	}
	fake.bundleSaves++
	return nil
}

func (fake *fakeStore) ListRequests() ([]models.AuthorizationRequest, error) {
	list := make([]models.AuthorizationRequest, 0, len(fake.requests))
	for _, request := range fake.requests {
		list = append(list, request)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt < list[j].CreatedAt
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (fake *fakeStore) GetRequest(requestID string) (models.AuthorizationRequest, bool, error) {
	request, found := fake.requests[requestID]
	return request, found, nil
}

func (fake *fakeStore) UpsertRequest(request models.AuthorizationRequest) error {
	fake.requests[request.ID] = request
	return nil
}

func (fake *fakeStore) ListNotificationsFor(target string) ([]models.Notification, error) {
	list := make([]models.Notification, 0, len(fake.notifications))
	for _, notification := range fake.notifications {
		if notification.UserID == target {
			list = append(list, notification)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt < list[j].CreatedAt
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (fake *fakeStore) GetNotification(notificationID string) (models.Notification, bool, error) {
	notification, found := fake.notifications[notificationID]
	return notification, found, nil
}

func (fake *fakeStore) UpsertNotification(notification models.Notification) error {
	fake.notifications[notification.ID] = notification
	return nil
}

func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse clock %q: %v", value, err)
	}
	return func() time.Time { return parsed }
}

func testTranslator(t *testing.T) *i18n.Manager {
	t.Helper()
	translator, err := i18n.NewManager(i18n.LangID)
	if err != nil {
		t.Fatalf("NewManager() unexpected error: %v", err)
	}
	return translator
}
