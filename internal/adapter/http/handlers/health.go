package handlers

import (
	"context"
	"net/http"
	"time"

	"tasktracker/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthStorageTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Storage string `json:"storage"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

// Pinger reports whether the task document can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger     Pinger
	appName    string
	appVersion string
}

func NewHealthHandler(pinger Pinger, appName, appVersion string) *HealthHandler {
	if appVersion == "" {
		appVersion = "dev"
	}
	return &HealthHandler{pinger: pinger, appName: appName, appVersion: appVersion}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkStorage(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storageStatus := StatusDown
	if h.checkStorage(c.Request.Context()) {
		storageStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Storage: storageStatus,
		},
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) bool {
	if h.pinger == nil {
		return false
	}
	// Avoid hanging health checks if the storage backend stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStorageTimeout)
	defer cancel()
	if err := h.pinger.Ping(timeoutCtx); err != nil {
		zap.L().Warn("storage health check failed", zap.Error(err))
		return false
	}
	return true
}
