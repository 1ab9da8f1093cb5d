package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/andikahakim/royba/internal/models"
)

const (
	slotUsers         = "users"
	slotAttendance    = "attendance"
	slotTasks         = "tasks"
	slotRequests      = "authRequests"
	slotNotifications = "notifications"
)

// Store is the typed record store over the encrypted KV slots. Each
// collection is held as a map keyed by record id (task bundles by user
// id), and every mutation reloads the map, replaces one key, and saves
// the map back, so two actors touching different keys never clobber
// each other's writes.
type Store struct {
	kv    KV
	codec *Codec
}

func New(kv KV, codec *Codec) (*Store, error) {
	record := &Store{kv: kv, codec: codec}
	if err := record.seed(); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return record, nil
}

// seed writes the fixed first-run defaults when the users slot has
// never been written: the two seed accounts, one starter checklist for
// the seed employee, and empty remaining collections.
func (store *Store) seed() error {
	_, exists, err := store.kv.Get(slotUsers)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	users := map[string]models.User{
		"1": {ID: "1", Username: "hakimmanager", Password: "123456", Name: "Hakim Manager", Role: models.RoleManager},
		"2": {ID: "2", Username: "hakimkaryawan", Password: "123456", Name: "Hakim Karyawan", Role: models.RoleEmployee},
	}

	today := time.Now().Format(models.DateLayout)
	bundles := map[string]models.TaskBundle{
		"2": {
			ID:     "seed-bundle-2",
			UserID: "2",
			Date:   today,
			Shift:  1,
			Tasks: []models.TaskItem{
				{ID: "seed-task-1", Title: "Membersihkan area lobby"},
				{ID: "seed-task-2", Title: "Cek inventaris kamar"},
			},
		},
	}

	if err := saveSlot(store, slotUsers, users); err != nil {
		return err
	}
	if err := saveSlot(store, slotTasks, bundles); err != nil {
		return err
	}
	if err := saveSlot(store, slotAttendance, map[string]models.Attendance{}); err != nil {
		return err
	}
	if err := saveSlot(store, slotRequests, map[string]models.AuthorizationRequest{}); err != nil {
		return err
	}
	return saveSlot(store, slotNotifications, map[string]models.Notification{})
}

func loadSlot[T any](store *Store, slot string) (map[string]T, error) {
	raw, exists, err := store.kv.Get(slot)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", slot, err)
	}
	if !exists {
		return map[string]T{}, nil
	}

	collection := map[string]T{}
	if err := store.codec.Decode(raw, &collection); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return collection, nil
}

func saveSlot[T any](store *Store, slot string, collection map[string]T) error {
	encoded, err := store.codec.Encode(collection)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	if err := store.kv.Set(slot, encoded); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}

func upsertSlot[T any](store *Store, slot string, key string, record T) error {
	collection, err := loadSlot[T](store, slot)
	if err != nil {
		return err
	}
	collection[key] = record
	return saveSlot(store, slot, collection)
}

// Users

func (store *Store) ListUsers() ([]models.User, error) {
	users, err := loadSlot[models.User](store, slotUsers)
	if err != nil {
		return nil, err
	}
	list := make([]models.User, 0, len(users))
	for _, user := range users {
		list = append(list, user)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (store *Store) GetUser(userID string) (models.User, bool, error) {
	users, err := loadSlot[models.User](store, slotUsers)
	if err != nil {
		return models.User{}, false, err
	}
	user, found := users[userID]
	return user, found, nil
}

func (store *Store) FindUserByUsername(username string) (models.User, bool, error) {
	users, err := store.ListUsers()
	if err != nil {
		return models.User{}, false, err
	}
	for _, user := range users {
		if user.Username == username {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (store *Store) UpsertUser(user models.User) error {
	return upsertSlot(store, slotUsers, user.ID, user)
}

func (store *Store) DeleteUser(userID string) error {
	users, err := loadSlot[models.User](store, slotUsers)
	if err != nil {
		return err
	}
	delete(users, userID)
	return saveSlot(store, slotUsers, users)
}

// Attendance

func (store *Store) ListAttendance() ([]models.Attendance, error) {
	records, err := loadSlot[models.Attendance](store, slotAttendance)
	if err != nil {
		return nil, err
	}
	list := make([]models.Attendance, 0, len(records))
	for _, record := range records {
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

func (store *Store) ListAttendanceForUser(userID string) ([]models.Attendance, error) {
	records, err := store.ListAttendance()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Attendance, 0, len(records))
	for _, record := range records {
		if record.UserID == userID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// FindAttendance returns the most recent record for the (user, date)
// pair. Repeated same-day check-ins append duplicates, so the latest
// one wins here.
func (store *Store) FindAttendance(userID string, date string) (models.Attendance, bool, error) {
	records, err := store.ListAttendance()
	if err != nil {
		return models.Attendance{}, false, err
	}
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

func (store *Store) UpsertAttendance(record models.Attendance) error {
	return upsertSlot(store, slotAttendance, record.ID, record)
}

// Task bundles

func (store *Store) ListTaskBundles() ([]models.TaskBundle, error) {
	bundles, err := loadSlot[models.TaskBundle](store, slotTasks)
	if err != nil {
		return nil, err
	}
	list := make([]models.TaskBundle, 0, len(bundles))
	for _, bundle := range bundles {
		list = append(list, bundle)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UserID < list[j].UserID })
	return list, nil
}

func (store *Store) GetTaskBundle(userID string) (models.TaskBundle, bool, error) {
	bundles, err := loadSlot[models.TaskBundle](store, slotTasks)
	if err != nil {
		return models.TaskBundle{}, false, err
	}
	bundle, found := bundles[userID]
	return bundle, found, nil
}

func (store *Store) PutTaskBundle(bundle models.TaskBundle) error {
	return upsertSlot(store, slotTasks, bundle.UserID, bundle)
}

// PutTaskBundles replaces the given users' bundles in one save, so a
// template rollout lands atomically from the caller's view.
func (store *Store) PutTaskBundles(updated []models.TaskBundle) error {
	bundles, err := loadSlot[models.TaskBundle](store, slotTasks)
	if err != nil {
		return err
	}
	for _, bundle := range updated {
		bundles[bundle.UserID] = bundle
	}
	return saveSlot(store, slotTasks, bundles)
}

// Authorization requests

func (store *Store) ListRequests() ([]models.AuthorizationRequest, error) {
	requests, err := loadSlot[models.AuthorizationRequest](store, slotRequests)
	if err != nil {
		return nil, err
	}
	list := make([]models.AuthorizationRequest, 0, len(requests))
	for _, request := range requests {
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

func (store *Store) GetRequest(requestID string) (models.AuthorizationRequest, bool, error) {
	requests, err := loadSlot[models.AuthorizationRequest](store, slotRequests)
	if err != nil {
		return models.AuthorizationRequest{}, false, err
	}
	request, found := requests[requestID]
	return request, found, nil
}

func (store *Store) UpsertRequest(request models.AuthorizationRequest) error {
	return upsertSlot(store, slotRequests, request.ID, request)
}

// Notifications

func (store *Store) ListNotificationsFor(target string) ([]models.Notification, error) {
	notifications, err := loadSlot[models.Notification](store, slotNotifications)
	if err != nil {
		return nil, err
	}
	list := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
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

func (store *Store) GetNotification(notificationID string) (models.Notification, bool, error) {
	notifications, err := loadSlot[models.Notification](store, slotNotifications)
	if err != nil {
		return models.Notification{}, false, err
	}
	notification, found := notifications[notificationID]
	return notification, found, nil
}

func (store *Store) UpsertNotification(notification models.Notification) error {
	return upsertSlot(store, slotNotifications, notification.ID, notification)
}
