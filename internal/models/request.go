package models

const (
	RequestTypeEditChecklist = "edit_checklist"
	RequestTypeLeave         = "leave_request"
	RequestTypeOther         = "other"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

const (
	LeaveTypeAnnual = "annual"
	LeaveTypeSick   = "sick"
	LeaveTypeUnpaid = "unpaid"
)

// AuthorizationRequest is a pending approval item requiring manager
// action. Pending is the only initial state; approved and rejected are
// terminal. Leave fields are set only for leave_request entries, TaskID
// only for edit_checklist entries.
type AuthorizationRequest struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	TaskID      string `json:"taskId,omitempty"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
	Response    string `json:"response,omitempty"`
	RespondedAt string `json:"respondedAt,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	LeaveType   string `json:"leaveType,omitempty"`
}

func (request AuthorizationRequest) IsResolved() bool {
	return request.Status == RequestStatusApproved || request.Status == RequestStatusRejected
}
