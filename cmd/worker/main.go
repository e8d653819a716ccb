package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"helloteam.app/api/common/logger"
	"helloteam.app/api/common/otel"
	"helloteam.app/api/core/config"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/queue"
	"helloteam.app/api/internal/worker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "mail worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Mail.RedisGroup,
		"consumer_name", cfg.Mail.RedisConsumer)

	redisOpts, err := redis.ParseURL(cfg.Mail.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Mail.RedisStream)

	consumer, err := queue.NewRedisConsumer(ctx, redisClient, queue.ConsumerConfig{
		Stream:       cfg.Mail.RedisStream,
		Group:        cfg.Mail.RedisGroup,
		Consumer:     cfg.Mail.RedisConsumer,
		DLQStream:    cfg.Mail.RedisDLQStream,
		BatchSize:    10,
		Block:        5 * time.Second,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	templates, err := mail.NewTemplates()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load mail templates", "error", err)
		os.Exit(1)
	}
	sender, err := mail.NewSender(cfg.Mail)
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure mail sender", "error", err, "provider", cfg.Mail.Provider)
		os.Exit(1)
	}
	deliverer := mail.NewDeliverer(templates, sender, cfg.Mail.FromAddress)

	w := worker.New(consumer, deliverer, worker.Config{
		MaxAttempts: cfg.Mail.MaxAttempts,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Mail.RedisStream,
		Group:     cfg.Mail.RedisGroup,
		Consumer:  cfg.Mail.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  time.Minute,
		BatchSize: 10,
	}, consumer, w)

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go reclaimer.Run(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.InfoContext(ctx, "received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker exited with error", "error", err)
		}
	}

	reclaimer.Stop()
	w.Stop()
	cancel()

	if telemetry != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 _          _ _       _                                          _ _
| |__   ___| | | ___ | |_ ___  __ _ _ __ ___    _ __ ___   __ _(_) |
| '_ \ / _ \ | |/ _ \| __/ _ \/ _' | '_ ' _ \  | '_ ' _ \ / _' | | |
| | | |  __/ | | (_) | ||  __/ (_| | | | | | | | | | | | | (_| | | |
|_| |_|\___|_|_|\___/ \__\___|\__,_|_| |_| |_| |_| |_| |_|\__,_|_|_|
`
