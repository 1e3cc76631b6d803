package mapper

import (
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

// TimestampLayout is ISO 8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   formatTimestamp(task.CreatedAt),
		UpdatedAt:   formatTimestamp(task.UpdatedAt),
	}
}

func ToReplaceTaskResponse(task domain.Task) dto.ReplaceTaskResponse {
	return dto.ReplaceTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
	}
}

func ToTaskStatusResponse(task domain.Task) dto.TaskStatusResponse {
	return dto.TaskStatusResponse{
		ID:     task.ID,
		Status: string(task.Status),
	}
}

func ToTaskSummary(summary domain.TaskSummary) dto.TaskSummary {
	return dto.TaskSummary{
		Todo:  summary.Todo,
		Doing: summary.Doing,
		Done:  summary.Done,
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
