package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "github.com/JacobNatural/task-manager/internal/adapter/http"
	"github.com/JacobNatural/task-manager/internal/adapter/http/handlers"
	httpmiddleware "github.com/JacobNatural/task-manager/internal/adapter/http/middleware"
	"github.com/JacobNatural/task-manager/internal/adapter/http/validation"
	appservice "github.com/JacobNatural/task-manager/internal/app/service"
	"github.com/JacobNatural/task-manager/internal/config"
	"github.com/JacobNatural/task-manager/pkg/logging"
	"github.com/JacobNatural/task-manager/pkg/translator"
)

const storeConnectTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger, logCloser, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	if err := validation.RegisterGinValidators(); err != nil {
		logger.Fatal("failed to register validators", zap.Error(err))
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	st, err := openStore(connectCtx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	taskService := appservice.NewTaskService(st.tasks)
	userService := appservice.NewUserService(st.users, taskService)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestID(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(cfg.StoreDriver, st.ping),
		handlers.NewTaskHandler(taskService),
		handlers.NewUserHandler(userService),
	)

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
			"store": st.close,
		},
	)

	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	if err := logCloser.Close(); err != nil {
		exitCode = 1
	}
	os.Exit(exitCode)
}
