package services

import (
	"errors"
	"time"

	"github.com/andikahakim/royba/internal/models"
	"github.com/google/uuid"
)

var ErrEditNotApproved = errors.New("checklist edit requires an approved request")

type TaskStore interface {
	ListTaskBundles() ([]models.TaskBundle, error)
	GetTaskBundle(userID string) (models.TaskBundle, bool, error)
	PutTaskBundle(bundle models.TaskBundle) error
	PutTaskBundles(bundles []models.TaskBundle) error
}

type TaskUserLister interface {
	ListUsers() ([]models.User, error)
}

type TaskApprovalReader interface {
	GetRequest(requestID string) (models.AuthorizationRequest, bool, error)
}

type TaskService struct {
	bundles   TaskStore
	users     TaskUserLister
	approvals TaskApprovalReader
	now       func() time.Time
}

func NewTaskService(bundles TaskStore, users TaskUserLister, approvals TaskApprovalReader, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{bundles: bundles, users: users, approvals: approvals, now: now}
}

func (service *TaskService) TodayTasks(userID string) (models.TaskBundle, bool, error) {
	return service.bundles.GetTaskBundle(userID)
}

// CompleteTask marks the named task done and stamps the completion
// time. An unknown task id leaves the bundle untouched; re-completing
// an already-done task only refreshes the stamp.
func (service *TaskService) CompleteTask(userID string, taskID string) (models.TaskBundle, bool, error) {
	bundle, found, err := service.bundles.GetTaskBundle(userID)
	if err != nil || !found {
		return models.TaskBundle{}, false, err
	}

	matched := false
	for index, task := range bundle.Tasks {
		if task.ID != taskID {
			continue
		}
		bundle.Tasks[index].Completed = true
		bundle.Tasks[index].CompletedAt = service.now().Format(time.RFC3339)
		matched = true
	}
	if !matched {
		return bundle, true, nil
	}

	if err := service.bundles.PutTaskBundle(bundle); err != nil {
		return models.TaskBundle{}, false, err
	}
	return bundle, true, nil
}

// UpdateTaskStatus sets a task's completed flag. Rolling a completed
// task back to incomplete is gated: the caller must name a resolved,
// approved edit_checklist request for that exact task and user,
// otherwise the transition is refused with ErrEditNotApproved. The
// gate lives here so no caller can bypass the approval workflow.
func (service *TaskService) UpdateTaskStatus(userID string, taskID string, completed bool, approvalRequestID string) (models.TaskBundle, bool, error) {
	bundle, found, err := service.bundles.GetTaskBundle(userID)
	if err != nil || !found {
		return models.TaskBundle{}, false, err
	}

	matched := false
	for index, task := range bundle.Tasks {
		if task.ID != taskID {
			continue
		}
		if task.Completed && !completed {
			if err := service.requireApprovedEdit(userID, taskID, approvalRequestID); err != nil {
				return models.TaskBundle{}, false, err
			}
		}
		bundle.Tasks[index].Completed = completed
		if completed {
			bundle.Tasks[index].CompletedAt = service.now().Format(time.RFC3339)
		} else {
			bundle.Tasks[index].CompletedAt = ""
		}
		matched = true
	}
	if !matched {
		return bundle, true, nil
	}

	if err := service.bundles.PutTaskBundle(bundle); err != nil {
		return models.TaskBundle{}, false, err
	}
	return bundle, true, nil
}

func (service *TaskService) requireApprovedEdit(userID string, taskID string, approvalRequestID string) error {
	if approvalRequestID == "" {
		return ErrEditNotApproved
	}
	request, found, err := service.approvals.GetRequest(approvalRequestID)
	if err != nil {
		return err
	}
	if !found ||
		request.Type != models.RequestTypeEditChecklist ||
		request.Status != models.RequestStatusApproved ||
		request.UserID != userID ||
		request.TaskID != taskID {
		return ErrEditNotApproved
	}
	return nil
}

// AddTaskTemplate appends a new task with the given title to every
// employee's checklist, creating a bundle dated today at the current
// shift for employees who have none. Managers never get a bundle. The
// rollout lands in a single save.
func (service *TaskService) AddTaskTemplate(title string) error {
	users, err := service.users.ListUsers()
	if err != nil {
		return err
	}
	existing, err := service.bundles.ListTaskBundles()
	if err != nil {
		return err
	}

	bundlesByUser := make(map[string]models.TaskBundle, len(existing))
	for _, bundle := range existing {
		bundlesByUser[bundle.UserID] = bundle
	}

	now := service.now()
	updated := make([]models.TaskBundle, 0, len(users))
	for _, user := range users {
		if user.Role != models.RoleEmployee {
			continue
		}

		bundle, found := bundlesByUser[user.ID]
		if !found {
			bundle = models.TaskBundle{
				ID:     uuid.NewString(),
				UserID: user.ID,
				Date:   now.Format(models.DateLayout),
				Shift:  CurrentShift(now),
				Tasks:  []models.TaskItem{},
			}
		}
		bundle.Tasks = append(bundle.Tasks, models.TaskItem{
			ID:    uuid.NewString(),
			Title: title,
		})
		updated = append(updated, bundle)
	}

	if len(updated) == 0 {
		return nil
	}
	return service.bundles.PutTaskBundles(updated)
}
