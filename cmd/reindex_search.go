package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/careline/case-service/internal/config"
	"github.com/careline/case-service/internal/database"
	"github.com/careline/case-service/internal/kafka"
	"github.com/careline/case-service/internal/model"
	"github.com/careline/case-service/internal/searchindex"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var reindexSearchCmd = &cobra.Command{
	Use:   "reindex-search",
	Short: "Reindex all complaints and fraud reports into search. Prefers Kafka; falls back to HTTP if SEARCH_SERVICE_URL set.",
	RunE:  runReindexSearch,
}

func init() {
	rootCmd.AddCommand(reindexSearchCmd)
}

func runReindexSearch(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	conn, err := database.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}

	var complaints []model.Complaint
	if err := conn.Find(&complaints).Error; err != nil {
		return fmt.Errorf("list complaints: %w", err)
	}
	var frauds []model.Fraud
	if err := conn.Find(&frauds).Error; err != nil {
		return fmt.Errorf("list frauds: %w", err)
	}
	slog.Info("reindex-search: loaded records", "complaints", len(complaints), "frauds", len(frauds))

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	// Prefer Kafka, then HTTP
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopicRecord != "" {
		slog.Info("reindex-search: using Kafka")
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicRecord)
		defer producer.Close()
		for i := range complaints {
			cp := &complaints[i]
			producer.ProduceRecordEvent(ctx, "complaint.updated", map[string]interface{}{
				"complaint_id": cp.ComplaintID,
				"phone_number": cp.PhoneNumber,
				"subject":      cp.Subject,
				"description":  cp.Description,
				"status":       string(cp.Status),
			})
		}
		for i := range frauds {
			f := &frauds[i]
			producer.ProduceRecordEvent(ctx, "fraud.updated", map[string]interface{}{
				"fraud_id":     f.FraudID,
				"phone_number": f.PhoneNumber,
				"description":  f.Description,
				"status":       string(f.Status),
			})
		}
		slog.Info("reindex-search: done", "events", len(complaints)+len(frauds))
		return nil
	}
	if cfg.SearchServiceURL != "" {
		slog.Info("reindex-search: using HTTP")
		client := searchindex.NewClient(cfg.SearchServiceURL)
		for i := range complaints {
			client.IndexComplaint(ctx, &complaints[i])
		}
		for i := range frauds {
			client.IndexFraud(ctx, &frauds[i])
		}
		slog.Info("reindex-search: done", "indexed", len(complaints)+len(frauds))
		return nil
	}
	slog.Info("reindex-search: neither KAFKA_BROKERS nor SEARCH_SERVICE_URL set, nothing reindexed")
	return nil
}
