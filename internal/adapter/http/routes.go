package http

import (
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	r.Use(middleware.LanguageMiddleware())
	r.NoRoute(handlers.NoRoute)

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/summary", taskHandler.GetSummary)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.ReplaceTask)
		tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
