package models

// ManagerChannel is the reserved notification target for "any manager".
const ManagerChannel = "manager"

const (
	NotificationTypeEditRequest  = "edit_request"
	NotificationTypeLeaveRequest = "leave_request"
	NotificationTypeResponse     = "request_response"
)

type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}
