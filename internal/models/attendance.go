package models

const (
	StatusNotPresent = "not_present"
	StatusPresent    = "present"
	StatusLate       = "late"
	StatusDayOff     = "day_off"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Attendance is one check-in/check-out record for a (user, date) pair.
// CheckOut stays empty until the user checks out; Status is fixed at
// check-in time and never revised by check-out.
type Attendance struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Status   string `json:"status"`
	Shift    int    `json:"shift"`
}
