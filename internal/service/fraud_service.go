package service

import (
	"context"
	"fmt"

	"github.com/careline/case-service/internal/model"
	"github.com/careline/case-service/internal/query"
	"gorm.io/gorm"
)

// FraudServicer is the handler-facing interface (for substitution in
// tests).
type FraudServicer interface {
	Create(ctx context.Context, f *model.Fraud) error
	GetByID(ctx context.Context, id string) (*model.Fraud, error)
	List(ctx context.Context, p query.Params) ([]model.Fraud, int64, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (*model.Fraud, error)
	Stats(ctx context.Context) (*model.FraudStats, error)
}

type FraudService struct {
	*Records[model.Fraud, *model.Fraud]
	db *gorm.DB
}

func NewFraudService(db *gorm.DB) *FraudService {
	return &FraudService{
		Records: NewRecords[model.Fraud, *model.Fraud](db, Descriptor{
			IDPrefix:   "FRAUD-",
			IDColumn:   "fraud_id",
			Resolution: model.FraudResolutionStatuses,
		}),
		db: db,
	}
}

// Stats aggregates the full fraud collection: total count, summed
// amountInvolved, and counts grouped by status and severity. Reads are
// not isolated from concurrent writes.
func (s *FraudService) Stats(ctx context.Context) (*model.FraudStats, error) {
	stats := &model.FraudStats{
		ByStatus:   make(map[string]int64),
		BySeverity: make(map[string]int64),
	}

	if err := s.db.WithContext(ctx).Model(&model.Fraud{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("count frauds: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&model.Fraud{}).
		Select("COALESCE(SUM(amount_involved), 0)").
		Scan(&stats.TotalAmount).Error; err != nil {
		return nil, fmt.Errorf("sum amounts: %w", err)
	}

	type bucket struct {
		Key   string
		Count int64
	}
	var byStatus []bucket
	if err := s.db.WithContext(ctx).Model(&model.Fraud{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("group by status: %w", err)
	}
	for _, b := range byStatus {
		stats.ByStatus[b.Key] = b.Count
	}

	var bySeverity []bucket
	if err := s.db.WithContext(ctx).Model(&model.Fraud{}).
		Select("severity AS key, COUNT(*) AS count").
		Group("severity").
		Scan(&bySeverity).Error; err != nil {
		return nil, fmt.Errorf("group by severity: %w", err)
	}
	for _, b := range bySeverity {
		stats.BySeverity[b.Key] = b.Count
	}

	return stats, nil
}
