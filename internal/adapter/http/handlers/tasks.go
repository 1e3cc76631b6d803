package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	status, err := validation.ParseStatusFilter(c.Query("status"))
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "failed to get task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	raw, err := readObject(c)
	if err != nil {
		respondError(c, err, "failed to read task payload")
		return
	}

	input, err := validation.BuildCreateTaskInput(raw)
	if err != nil {
		respondError(c, err, "failed to create task")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ReplaceTask(c *gin.Context) {
	taskID := c.Param("id")

	raw, err := readObject(c)
	if err != nil {
		respondError(c, err, "failed to read task payload", zap.String("task_id", taskID))
		return
	}

	input, err := validation.BuildReplaceTaskInput(raw)
	if err != nil {
		respondError(c, err, "failed to replace task", zap.String("task_id", taskID))
		return
	}

	task, err := h.taskService.ReplaceTask(c.Request.Context(), taskID, input)
	if err != nil {
		respondError(c, err, "failed to replace task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToReplaceTaskResponse(task))
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	raw, err := readObject(c)
	if err != nil {
		respondError(c, err, "failed to read task payload", zap.String("task_id", taskID))
		return
	}

	status, err := validation.BuildTaskStatus(raw)
	if err != nil {
		respondError(c, err, "failed to update task status", zap.String("task_id", taskID))
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, status)
	if err != nil {
		respondError(c, err, "failed to update task status", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStatusResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, middleware.GetLang(c)),
	})
}

func (h *TaskHandler) GetSummary(c *gin.Context) {
	summary, err := h.taskService.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to summarize tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskSummary(summary))
}

// NoRoute answers unknown paths with the usual error body.
func NoRoute(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, lang))
}

func readObject(c *gin.Context) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, validation.ErrInvalidTaskPayload
	}
	return validation.DecodeObject(body)
}

// respondError maps domain failures to 400/404; anything else is logged
// with logMsg and answered with 500.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	code, msgKey := http.StatusInternalServerError, apierrors.MsgInternalError
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		code, msgKey = http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrTitleRequired):
		code, msgKey = http.StatusBadRequest, apierrors.MsgTitleRequired
	case errors.Is(err, domain.ErrInvalidStatusFilter):
		code, msgKey = http.StatusBadRequest, apierrors.MsgInvalidStatusFilter
	case errors.Is(err, domain.ErrInvalidStatus):
		code, msgKey = http.StatusBadRequest, apierrors.MsgInvalidStatus
	case errors.Is(err, validation.ErrInvalidTaskPayload), errors.Is(err, domain.ErrValidation):
		code, msgKey = http.StatusBadRequest, apierrors.MsgInvalidTaskPayload
	default:
		zap.L().Error(logMsg, append(fields, zap.Error(err))...)
		_ = c.Error(err)
	}

	c.JSON(code, apierrors.CreateError(code, msgKey, lang))
}
