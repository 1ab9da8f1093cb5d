package services

import (
	"testing"

	"github.com/andikahakim/royba/internal/models"
)

func TestCheckInOnTime(t *testing.T) {
	fake := newFakeStore()
	service := NewAttendanceService(fake, fixedClock(t, "2026-09-01 07:00:00"))

	record, err := service.CheckIn("2")
	if err != nil {
		t.Fatalf("CheckIn() unexpected error: %v", err)
	}
	if record.Date != "2026-09-01" || record.CheckIn != "07:00:00" {
		t.Fatalf("unexpected record stamps: %+v", record)
	}
	if record.Status != models.StatusPresent {
		t.Fatalf("expected status present, got %q", record.Status)
	}
	if record.Shift != 1 {
		t.Fatalf("expected shift 1, got %d", record.Shift)
	}
	if record.CheckOut != "" {
		t.Fatalf("check-out must start empty, got %q", record.CheckOut)
	}
}

func TestCheckInLate(t *testing.T) {
	fake := newFakeStore()
	service := NewAttendanceService(fake, fixedClock(t, "2026-09-01 07:00:01"))

	record, err := service.CheckIn("2")
	if err != nil {
		t.Fatalf("CheckIn() unexpected error: %v", err)
	}
	if record.Status != models.StatusLate {
		t.Fatalf("expected status late, got %q", record.Status)
	}
}

func TestCheckInThenCheckOut(t *testing.T) {
	fake := newFakeStore()
	checkInService := NewAttendanceService(fake, fixedClock(t, "2026-09-01 07:10:00"))
	if _, err := checkInService.CheckIn("2"); err != nil {
		t.Fatalf("CheckIn() unexpected error: %v", err)
	}

	checkOutService := NewAttendanceService(fake, fixedClock(t, "2026-09-01 14:55:00"))
	record, found, err := checkOutService.CheckOut("2")
	if err != nil || !found {
		t.Fatalf("CheckOut() = found=%v, err=%v", found, err)
	}
	if record.CheckIn != "07:10:00" || record.CheckOut != "14:55:00" {
		t.Fatalf("unexpected stamps: %+v", record)
	}
	if record.CheckOut < record.CheckIn {
		t.Fatalf("check-out must not precede check-in: %+v", record)
	}
	// Lateness was decided at check-in; checking out never revises it.
	if record.Status != models.StatusLate {
		t.Fatalf("expected status fixed at check-in, got %q", record.Status)
	}
}

func TestCheckOutWithoutCheckInLeavesStoreUntouched(t *testing.T) {
	fake := newFakeStore()
	service := NewAttendanceService(fake, fixedClock(t, "2026-09-01 16:00:00"))

	_, found, err := service.CheckOut("2")
	if err != nil {
		t.Fatalf("CheckOut() unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected no record to check out of")
	}
	if fake.attendanceSaves != 0 {
		t.Fatalf("expected no writes, got %d", fake.attendanceSaves)
	}
}

func TestRepeatedCheckInAppendsDuplicate(t *testing.T) {
	fake := newFakeStore()
	service := NewAttendanceService(fake, fixedClock(t, "2026-09-01 08:00:00"))

	if _, err := service.CheckIn("2"); err != nil {
		t.Fatalf("CheckIn() unexpected error: %v", err)
	}
	if _, err := service.CheckIn("2"); err != nil {
		t.Fatalf("CheckIn() unexpected error: %v", err)
	}

	records, err := service.History("2")
	if err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected duplicate same-day records, got %d", len(records))
	}
}

func TestTodayAttendanceAbsentForOtherDay(t *testing.T) {
	fake := newFakeStore()
	fake.attendance["a1"] = models.Attendance{ID: "a1", UserID: "2", Date: "2026-08-31", CheckIn: "07:00:00", Status: models.StatusPresent, Shift: 1}

	service := NewAttendanceService(fake, fixedClock(t, "2026-09-01 09:00:00"))
	_, found, err := service.TodayAttendance("2")
	if err != nil {
		t.Fatalf("TodayAttendance() unexpected error: %v", err)
	}
	if found {
		t.Fatalf("yesterday's record must not count as today's")
	}
}
