package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "todo"
	TaskStatusDoing TaskStatus = "doing"
	TaskStatusDone  TaskStatus = "done"
)

// TaskStatuses lists every status a task may hold, in workflow order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusDoing, TaskStatusDone}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
}

type ReplaceTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
}

// TaskSummary holds the number of tasks per valid status.
type TaskSummary struct {
	Todo  int
	Doing int
	Done  int
}

// Total is the number of tasks counted in the summary.
func (s TaskSummary) Total() int {
	return s.Todo + s.Doing + s.Done
}
