package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rifaapp/rifa-api/internal/api"
	"github.com/rifaapp/rifa-api/internal/config"
	"github.com/rifaapp/rifa-api/internal/db"
	"github.com/rifaapp/rifa-api/internal/events"
	"github.com/rifaapp/rifa-api/internal/jobs"
	"github.com/rifaapp/rifa-api/internal/logger"
	"github.com/rifaapp/rifa-api/internal/repository/dao"
)

const shutdownTimeout = 15 * time.Second

// ConfigPath is read from CONFIG_PATH when set.
func ConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	return "./cmd/app/config.yml"
}

// OpenDatabase prefers DATABASE_URL over the postgres section of the config.
func OpenDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	return db.OpenPostgres(conf.Postgres)
}

func Start() error {
	conf, err := config.Load(ConfigPath())
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}

	conf.Watch(func(updated *config.AppConfig) {
		if err := logger.SetLevel(updated.API.LogLevel); err != nil {
			zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("log_level", updated.API.LogLevel))
	}, func(err error) {
		zap.L().Warn("failed to reload config", zap.Error(err))
	})

	postgresDB, err := OpenDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(postgresDB); err != nil {
			zap.L().Warn("failed to close database", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schema := dao.NewSchema(postgresDB)
	if conf.Raffle.AutoMigrate {
		if err = schema.EnsureReady(ctx); err != nil {
			return fmt.Errorf("failed to prepare schema -> %w", err)
		}
	}

	var publisher events.Publisher
	if len(conf.Kafka.Brokers) > 0 {
		kafka := events.NewKafkaPublisher(conf.Kafka.Brokers, conf.Kafka.Topic, conf.Kafka.PublishTimeout)
		defer func() {
			if err := kafka.Close(); err != nil {
				zap.L().Warn("failed to close kafka writer", zap.Error(err))
			}
		}()
		publisher = kafka
		zap.L().Info("publishing events to kafka", zap.Strings("brokers", conf.Kafka.Brokers), zap.String("topic", conf.Kafka.Topic))
	}

	s := api.NewServer(conf, postgresDB, schema, publisher)
	go s.Hub.Run(ctx)

	if conf.Jobs.ReservationSweep != "" {
		scheduler := jobs.NewScheduler(s.Reservations, conf.Jobs.ReservationSweep, conf.Jobs.Timezone)
		if err = scheduler.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler -> %w", err)
		}
		defer scheduler.Stop()
	}

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}
