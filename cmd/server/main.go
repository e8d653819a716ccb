package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"helloteam.app/api/common/id"
	"helloteam.app/api/common/logger"
	"helloteam.app/api/common/otel"
	"helloteam.app/api/core/config"
	"helloteam.app/api/core/db"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/http/middleware"
	httprouter "helloteam.app/api/internal/http/router"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/queue"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "helloteam api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected", "auto_migrate", cfg.DB.AutoMigrate)

	redisOpts, err := redis.ParseURL(cfg.Mail.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Mail.RedisStream)

	mailProducer := queue.NewRedisProducer(redisClient, cfg.Mail.RedisStream, slog.Default())
	defer mailProducer.Close()

	templates, err := mail.NewTemplates()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load mail templates", "error", err)
		os.Exit(1)
	}

	signer, err := auth.NewSigner(cfg.JWT)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build token signer", "error", err)
		os.Exit(1)
	}

	var federated auth.FederatedProvider
	if cfg.WorkOS.Enabled() {
		federated = auth.NewWorkOSProvider(cfg.WorkOS)
		slog.InfoContext(ctx, "federated login enabled", "provider", cfg.WorkOS.Provider)
	} else {
		slog.InfoContext(ctx, "federated login disabled (no WorkOS credentials)")
	}

	services := service.NewServices(service.Deps{
		Stores:    store.NewStores(database.Queries()),
		TxRunner:  service.NewTxRunner(database),
		Signer:    signer,
		Federated: federated,
		Notifier:  mail.NewNotifier(mailProducer, templates),
		Config:    cfg,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// OTel span first so recovery and request logs carry the trace id.
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services)

	return router
}

const banner = `
 _          _ _       _
| |__   ___| | | ___ | |_ ___  __ _ _ __ ___
| '_ \ / _ \ | |/ _ \| __/ _ \/ _' | '_ ' _ \
| | | |  __/ | | (_) | ||  __/ (_| | | | | | |
|_| |_|\___|_|_|\___/ \__\___|\__,_|_| |_| |_|
`
