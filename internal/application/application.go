package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/careline/case-service/internal/config"
	"github.com/careline/case-service/internal/database"
	"github.com/careline/case-service/internal/handler"
	"github.com/careline/case-service/internal/kafka"
	"github.com/careline/case-service/internal/middleware"
	"github.com/careline/case-service/internal/router"
	"github.com/careline/case-service/internal/searchindex"
	"github.com/careline/case-service/internal/service"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const maxBodySize = 10 << 20 // 10 MB request body cap

// API owns the process-wide resources: the store connection, the event
// producer and the HTTP server. Everything is acquired once in NewAPI and
// released in Run's shutdown path.
type API struct {
	cfg      *config.Config
	logger   *slog.Logger
	httpSrv  *http.Server
	producer *kafka.Producer
	db       *gorm.DB
}

func NewAPI(cfg *config.Config, logger *slog.Logger) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := database.MigrateUp(cfg.DatabaseURL()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	complaintSvc := service.NewComplaintService(db)
	fraudSvc := service.NewFraudService(db)
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicRecord)
	searchClient := searchindex.NewClient(cfg.SearchServiceURL)

	complaintHandler := handler.NewComplaintHandler(complaintSvc, producer, searchClient)
	fraudHandler := handler.NewFraudHandler(fraudSvc, producer, searchClient)

	mux := router.New(complaintHandler, fraudHandler, router.Options{
		Logger:      logger,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		MaxBodySize: maxBodySize,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           cors.Default().Handler(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{
		cfg:      cfg,
		logger:   logger,
		httpSrv:  httpSrv,
		producer: producer,
		db:       db,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	a.logger.Info("http server listening", "addr", a.httpSrv.Addr)
	a.logger.Info("endpoints",
		"health", base+"/health",
		"swagger", base+"/swagger",
		"complaints", base+"/api/complaints",
		"fraud", base+"/api/fraud",
	)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("http server", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka close", "error", err)
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
