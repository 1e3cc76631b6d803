package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

// TaskRepository persists the whole task collection as one document.
// Update loads the collection, hands it to fn and flushes whatever fn
// returns; nothing is written when fn fails.
type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, fn func(tasks []domain.Task) ([]domain.Task, error)) error
}

type TaskService interface {
	ListTasks(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ReplaceTask(ctx context.Context, id string, input domain.ReplaceTaskInput) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Summarize(ctx context.Context) (domain.TaskSummary, error)
	Ping(ctx context.Context) error
}
