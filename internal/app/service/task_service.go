package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
	newID          func() string
}

type Option func(*TaskService)

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *TaskService) {
		s.newID = newID
	}
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...Option) (*TaskService, error) {
	s := &TaskService{
		taskRepository: taskRepository,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newID == nil {
		generator, err := NewNanoIDGenerator()
		if err != nil {
			return nil, err
		}
		s.newID = generator
	}
	return s, nil
}

var _ ports.TaskService = (*TaskService)(nil)

// ListTasks returns every task in insertion order, or only those holding
// status when it is set.
func (s *TaskService) ListTasks(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error) {
	if status != nil && !status.IsValid() {
		return nil, domain.ErrInvalidStatusFilter
	}

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return tasks, nil
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == *status {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return tasks[idx], nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}

	var created domain.Task
	err := s.taskRepository.Update(ctx, func(tasks []domain.Task) ([]domain.Task, error) {
		id, err := s.uniqueID(tasks)
		if err != nil {
			return nil, err
		}
		now := s.timestamp()
		created = domain.Task{
			ID:          id,
			Title:       title,
			Description: input.Description,
			Status:      domain.TaskStatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return append(tasks, created), nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

func (s *TaskService) ReplaceTask(ctx context.Context, id string, input domain.ReplaceTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}
	if !input.Status.IsValid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	return s.mutate(ctx, id, func(task *domain.Task) {
		task.Title = title
		task.Description = input.Description
		task.Status = input.Status
	})
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	if !status.IsValid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	return s.mutate(ctx, id, func(task *domain.Task) {
		task.Status = status
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepository.Update(ctx, func(tasks []domain.Task) ([]domain.Task, error) {
		idx := indexOf(tasks, id)
		if idx < 0 {
			return nil, domain.ErrTaskNotFound
		}
		return append(tasks[:idx], tasks[idx+1:]...), nil
	})
}

// Summarize counts tasks per status. Stored tasks carrying an unknown
// status are left out of every count.
func (s *TaskService) Summarize(ctx context.Context) (domain.TaskSummary, error) {
	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return domain.TaskSummary{}, err
	}

	var summary domain.TaskSummary
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusTodo:
			summary.Todo++
		case domain.TaskStatusDoing:
			summary.Doing++
		case domain.TaskStatusDone:
			summary.Done++
		}
	}
	return summary, nil
}

// Ping checks that the task document can be loaded.
func (s *TaskService) Ping(ctx context.Context) error {
	_, err := s.taskRepository.Load(ctx)
	return err
}

func (s *TaskService) mutate(ctx context.Context, id string, apply func(task *domain.Task)) (domain.Task, error) {
	var updated domain.Task
	err := s.taskRepository.Update(ctx, func(tasks []domain.Task) ([]domain.Task, error) {
		idx := indexOf(tasks, id)
		if idx < 0 {
			return nil, domain.ErrTaskNotFound
		}
		apply(&tasks[idx])
		tasks[idx].UpdatedAt = s.touch(tasks[idx])
		updated = tasks[idx]
		return tasks, nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

// Timestamps are kept at millisecond precision, the resolution they are
// rendered with.
func (s *TaskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// touch returns the new updated_at for task, at least one millisecond after
// both created_at and the value it replaces.
func (s *TaskService) touch(task domain.Task) time.Time {
	now := s.timestamp()
	floor := task.UpdatedAt
	if floor.Before(task.CreatedAt) {
		floor = task.CreatedAt
	}
	if now.Sub(floor) < time.Millisecond {
		now = floor.Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return now
}

func (s *TaskService) uniqueID(tasks []domain.Task) (string, error) {
	const maxAttempts = 8
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id := s.newID()
		if id != "" && indexOf(tasks, id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique task id after %d attempts", maxAttempts)
}

func indexOf(tasks []domain.Task, id string) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
