package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"tasktracker/pkg/translator"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/filedb"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	httpmiddleware "tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/storage"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("storage_type", cfg.StorageType), zap.Error(err))
	}

	taskRepository := filedb.NewTaskRepository(store, cfg.DataFile)
	if err := taskRepository.Init(ctx); err != nil {
		logger.Fatal("failed to initialize task document", zap.String("document", cfg.DataFile), zap.Error(err))
	}

	taskService, err := appservice.NewTaskService(taskRepository)
	if err != nil {
		logger.Fatal("failed to create task service", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	healthHandler := handlers.NewHealthHandler(taskService, cfg.AppName, cfg.AppVersion)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler)

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins(),
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"*"},
		}).Handler(r),
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("storage_type", cfg.StorageType),
			zap.String("document", cfg.DataFile),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			logger.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})

	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
