package filedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tasktracker/internal/adapter/storage"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const DefaultDocument = "db.json"

// TaskRepository keeps every task in a single JSON document of the form
// {"tasks": [...]}. The document is read before each operation and written
// back in full after each mutation.
type TaskRepository struct {
	storage storage.Storage
	path    string
	mu      sync.Mutex
}

type document struct {
	Tasks []taskRecord `json:"tasks"`
}

type taskRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(s storage.Storage, path string) *TaskRepository {
	if path == "" {
		path = DefaultDocument
	}
	return &TaskRepository{storage: s, path: path}
}

func (r *TaskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	unlock, err := r.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return r.read(ctx)
}

func (r *TaskRepository) Update(ctx context.Context, fn func(tasks []domain.Task) ([]domain.Task, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	unlock, err := r.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := r.read(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(tasks)
	if err != nil {
		return err
	}

	return r.write(ctx, updated)
}

// Init writes an empty document when none exists yet.
func (r *TaskRepository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	unlock, err := r.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	exists, err := r.storage.Exists(ctx, r.path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.write(ctx, nil)
}

func (r *TaskRepository) lock(ctx context.Context) (func(), error) {
	locker, ok := r.storage.(storage.Locker)
	if !ok {
		return func() {}, nil
	}
	release, err := locker.Lock(ctx, r.path)
	if err != nil {
		return nil, err
	}
	return func() { _ = release() }, nil
}

func (r *TaskRepository) read(ctx context.Context) ([]domain.Task, error) {
	data, err := r.storage.Read(ctx, r.path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []domain.Task{}, nil
		}
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}

	tasks := make([]domain.Task, 0, len(doc.Tasks))
	for _, record := range doc.Tasks {
		tasks = append(tasks, mapRecordToDomainTask(record))
	}
	return tasks, nil
}

func (r *TaskRepository) write(ctx context.Context, tasks []domain.Task) error {
	doc := document{Tasks: make([]taskRecord, 0, len(tasks))}
	for _, task := range tasks {
		doc.Tasks = append(doc.Tasks, mapDomainTaskToRecord(task))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.path, err)
	}
	return r.storage.Write(ctx, r.path, data)
}

func mapRecordToDomainTask(record taskRecord) domain.Task {
	return domain.Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Status:      domain.TaskStatus(record.Status),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func mapDomainTaskToRecord(task domain.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}
}
