package dto

type TaskItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ReplaceTaskResponse is returned by PUT /tasks/:id.
type ReplaceTaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskStatusResponse is returned by PATCH /tasks/:id/status.
type TaskStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TaskSummary struct {
	Todo  int `json:"todo"`
	Doing int `json:"doing"`
	Done  int `json:"done"`
}
