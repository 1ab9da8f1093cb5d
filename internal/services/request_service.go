package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/andikahakim/royba/internal/i18n"
	"github.com/andikahakim/royba/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidLeaveRange = errors.New("invalid leave range")
	ErrRequestResolved   = errors.New("request already resolved")
)

type RequestStore interface {
	ListRequests() ([]models.AuthorizationRequest, error)
	GetRequest(requestID string) (models.AuthorizationRequest, bool, error)
	UpsertRequest(request models.AuthorizationRequest) error
}

type RequestUserReader interface {
	GetUser(userID string) (models.User, bool, error)
}

type RequestNotifier interface {
	NotifyUser(userID string, kind string, message string) (models.Notification, error)
	NotifyManager(kind string, message string) (models.Notification, error)
}

type RequestTaskGate interface {
	UpdateTaskStatus(userID string, taskID string, completed bool, approvalRequestID string) (models.TaskBundle, bool, error)
}

// RequestService runs the authorization workflow: employees file
// checklist-edit or leave requests, a manager resolves each one exactly
// once. Approving a checklist edit is the only cross-entity side
// effect: the referenced task is forced back to incomplete through the
// task service's approval gate.
type RequestService struct {
	requests   RequestStore
	users      RequestUserReader
	tasks      RequestTaskGate
	notifier   RequestNotifier
	translator *i18n.Manager
	language   string
	now        func() time.Time
}

func NewRequestService(
	requests RequestStore,
	users RequestUserReader,
	tasks RequestTaskGate,
	notifier RequestNotifier,
	translator *i18n.Manager,
	language string,
	now func() time.Time,
) *RequestService {
	if now == nil {
		now = time.Now
	}
	return &RequestService{
		requests:   requests,
		users:      users,
		tasks:      tasks,
		notifier:   notifier,
		translator: translator,
		language:   language,
		now:        now,
	}
}

func (service *RequestService) RequestTaskEdit(userID string, taskID string, reason string) (models.AuthorizationRequest, error) {
	request := models.AuthorizationRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		TaskID:    taskID,
		Type:      models.RequestTypeEditChecklist,
		Status:    models.RequestStatusPending,
		Message:   reason,
		CreatedAt: service.now().Format(time.RFC3339),
	}
	if err := service.requests.UpsertRequest(request); err != nil {
		return models.AuthorizationRequest{}, err
	}

	message := fmt.Sprintf(service.translator.T(service.language, "notify.edit_request"), service.displayName(userID))
	if _, err := service.notifier.NotifyManager(models.NotificationTypeEditRequest, message); err != nil {
		return models.AuthorizationRequest{}, err
	}
	return request, nil
}

func (service *RequestService) RequestLeave(userID string, startDate string, endDate string, leaveType string, message string) (models.AuthorizationRequest, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return models.AuthorizationRequest{}, ErrInvalidLeaveRange
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil || end.Before(start) {
		return models.AuthorizationRequest{}, ErrInvalidLeaveRange
	}

	request := models.AuthorizationRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      models.RequestTypeLeave,
		Status:    models.RequestStatusPending,
		Message:   message,
		CreatedAt: service.now().Format(time.RFC3339),
		StartDate: startDate,
		EndDate:   endDate,
		LeaveType: leaveType,
	}
	if err := service.requests.UpsertRequest(request); err != nil {
		return models.AuthorizationRequest{}, err
	}

	notice := fmt.Sprintf(
		service.translator.T(service.language, "notify.leave_request"),
		service.displayName(userID), leaveType, startDate, endDate,
	)
	if _, err := service.notifier.NotifyManager(models.NotificationTypeLeaveRequest, notice); err != nil {
		return models.AuthorizationRequest{}, err
	}
	return request, nil
}

// RespondToRequest resolves a pending request. An unknown id is a
// silent no-op; a request that is already terminal refuses the second
// transition. On an approved checklist edit the referenced task is
// reset to incomplete, and the requester is notified either way.
func (service *RequestService) RespondToRequest(requestID string, approved bool, responseText string) (models.AuthorizationRequest, bool, error) {
	request, found, err := service.requests.GetRequest(requestID)
	if err != nil || !found {
		return models.AuthorizationRequest{}, false, err
	}
	if request.IsResolved() {
		return request, true, ErrRequestResolved
	}

	request.Status = models.RequestStatusRejected
	if approved {
		request.Status = models.RequestStatusApproved
	}
	request.Response = responseText
	request.RespondedAt = service.now().Format(time.RFC3339)

	if err := service.requests.UpsertRequest(request); err != nil {
		return models.AuthorizationRequest{}, false, err
	}

	if approved && request.Type == models.RequestTypeEditChecklist {
		if _, _, err := service.tasks.UpdateTaskStatus(request.UserID, request.TaskID, false, request.ID); err != nil {
			return models.AuthorizationRequest{}, false, err
		}
	}

	messageKey := "notify.request_rejected"
	if approved {
		messageKey = "notify.request_approved"
	}
	detail := responseText
	if detail == "" {
		detail = request.Message
	}
	notice := fmt.Sprintf(service.translator.T(service.language, messageKey), detail)
	if _, err := service.notifier.NotifyUser(request.UserID, models.NotificationTypeResponse, notice); err != nil {
		return models.AuthorizationRequest{}, false, err
	}
	return request, true, nil
}

func (service *RequestService) ListRequests() ([]models.AuthorizationRequest, error) {
	return service.requests.ListRequests()
}

func (service *RequestService) ListForUser(userID string) ([]models.AuthorizationRequest, error) {
	requests, err := service.requests.ListRequests()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.AuthorizationRequest, 0, len(requests))
	for _, request := range requests {
		if request.UserID == userID {
			filtered = append(filtered, request)
		}
	}
	return filtered, nil
}

func (service *RequestService) ListPending() ([]models.AuthorizationRequest, error) {
	requests, err := service.requests.ListRequests()
	if err != nil {
		return nil, err
	}
	pending := make([]models.AuthorizationRequest, 0, len(requests))
	for _, request := range requests {
		if request.Status == models.RequestStatusPending {
			pending = append(pending, request)
		}
	}
	return pending, nil
}

func (service *RequestService) displayName(userID string) string {
	user, found, err := service.users.GetUser(userID)
	if err != nil || !found {
		return userID
	}
	return user.Name
}
