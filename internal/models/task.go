package models

// TaskBundle is the active checklist for one employee. Bundles are keyed
// by user id in the store; a user has at most one bundle and it is
// overwritten in place rather than versioned by date.
type TaskBundle struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Date   string     `json:"date"`
	Shift  int        `json:"shift"`
	Tasks  []TaskItem `json:"tasks"`
}

type TaskItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
}

func (bundle TaskBundle) FindTask(taskID string) (TaskItem, bool) {
	for _, task := range bundle.Tasks {
		if task.ID == taskID {
			return task, true
		}
	}
	return TaskItem{}, false
}
