package services

import (
	"time"

	"github.com/andikahakim/royba/internal/models"
	"github.com/google/uuid"
)

type AttendanceStore interface {
	ListAttendance() ([]models.Attendance, error)
	ListAttendanceForUser(userID string) ([]models.Attendance, error)
	FindAttendance(userID string, date string) (models.Attendance, bool, error)
	UpsertAttendance(record models.Attendance) error
}

type AttendanceService struct {
	records AttendanceStore
	now     func() time.Time
}

func NewAttendanceService(records AttendanceStore, now func() time.Time) *AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceService{records: records, now: now}
}

// CheckIn appends a new attendance record for today at the current
// shift. Status is decided here from the lateness rule and never
// revised afterwards. A repeated check-in on the same day appends a
// second record rather than updating the first.
func (service *AttendanceService) CheckIn(userID string) (models.Attendance, error) {
	now := service.now()
	shift := CurrentShift(now)
	checkIn := now.Format(models.TimeLayout)

	status := models.StatusPresent
	if IsLate(checkIn, shift) {
		status = models.StatusLate
	}

	record := models.Attendance{
		ID:      uuid.NewString(),
		UserID:  userID,
		Date:    now.Format(models.DateLayout),
		CheckIn: checkIn,
		Status:  status,
		Shift:   shift,
	}

	if err := service.records.UpsertAttendance(record); err != nil {
		return models.Attendance{}, err
	}
	return record, nil
}

// CheckOut stamps the check-out time on today's record for the user.
// Without a prior check-in there is nothing to stamp and the store is
// left untouched.
func (service *AttendanceService) CheckOut(userID string) (models.Attendance, bool, error) {
	now := service.now()
	record, found, err := service.records.FindAttendance(userID, now.Format(models.DateLayout))
	if err != nil || !found {
		return models.Attendance{}, false, err
	}

	record.CheckOut = now.Format(models.TimeLayout)
	if err := service.records.UpsertAttendance(record); err != nil {
		return models.Attendance{}, false, err
	}
	return record, true, nil
}

func (service *AttendanceService) TodayAttendance(userID string) (models.Attendance, bool, error) {
	return service.records.FindAttendance(userID, service.now().Format(models.DateLayout))
}

func (service *AttendanceService) History(userID string) ([]models.Attendance, error) {
	return service.records.ListAttendanceForUser(userID)
}

func (service *AttendanceService) ListAll() ([]models.Attendance, error) {
	return service.records.ListAttendance()
}
