package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careline/case-service/internal/errs"
	"github.com/careline/case-service/internal/query"
	"gorm.io/gorm"
)

// record is what a persisted type must expose so the service can assign
// the generated public id.
type record interface {
	SetRecordID(id string)
}

// Descriptor parameterizes the generic record service per resource type:
// id synthesis, lookup column, and the terminal statuses that stamp
// resolved_at.
type Descriptor struct {
	IDPrefix   string
	IDColumn   string
	Resolution []string
}

// Records implements create/get/list/update for one record type. Both
// resource services are instances of it; all concurrency safety is
// delegated to the store's single-row operations.
type Records[T any, P interface {
	*T
	record
}] struct {
	db   *gorm.DB
	desc Descriptor
}

func NewRecords[T any, P interface {
	*T
	record
}](db *gorm.DB, desc Descriptor) *Records[T, P] {
	return &Records[T, P]{db: db, desc: desc}
}

// Create assigns a fresh public id and persists the record. A unique
// violation on the id column maps to errs.ErrDuplicateID.
func (s *Records[T, P]) Create(ctx context.Context, rec P) error {
	rec.SetRecordID(NewID(s.desc.IDPrefix))
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateID
		}
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

func (s *Records[T, P]) GetByID(ctx context.Context, id string) (P, error) {
	var rec T
	err := s.db.WithContext(ctx).Where(s.desc.IDColumn+" = ?", id).First(&rec).Error
	if err != nil {
		var zero P
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.ErrRecordNotFound
		}
		return zero, fmt.Errorf("get record: %w", err)
	}
	return &rec, nil
}

// List returns one page of records plus the total count independent of
// pagination.
func (s *Records[T, P]) List(ctx context.Context, p query.Params) ([]T, int64, error) {
	var items []T
	var total int64
	tx := s.db.WithContext(ctx).Model(new(T))
	for col, v := range p.Filters {
		tx = tx.Where(col+" = ?", v)
	}
	// Count before pagination
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}
	if p.Limit > 0 {
		tx = tx.Limit(p.Limit)
	}
	if p.Offset > 0 {
		tx = tx.Offset(p.Offset)
	}
	if err := tx.Order(p.Order).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	return items, total, nil
}

// Update applies the changes to the record with the given public id and
// returns the stored result. When the new status is a terminal-resolution
// value, resolved_at is stamped with the current time; a later qualifying
// update re-stamps it.
func (s *Records[T, P]) Update(ctx context.Context, id string, changes map[string]interface{}) (P, error) {
	var zero P
	stampResolution(changes, s.desc.Resolution)

	var rec T
	err := s.db.WithContext(ctx).Where(s.desc.IDColumn+" = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.ErrRecordNotFound
		}
		return zero, fmt.Errorf("get record: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&rec).Updates(changes).Error; err != nil {
		return zero, fmt.Errorf("update record: %w", err)
	}
	// Re-read so the response reflects exactly what was stored.
	var fresh T
	if err := s.db.WithContext(ctx).Where(s.desc.IDColumn+" = ?", id).First(&fresh).Error; err != nil {
		return zero, fmt.Errorf("reload record: %w", err)
	}
	return &fresh, nil
}

// stampResolution adds resolved_at to the changes when the incoming
// status is one of the terminal-resolution values.
func stampResolution(changes map[string]interface{}, resolution []string) {
	status, ok := changes["status"].(string)
	if !ok {
		return
	}
	for _, terminal := range resolution {
		if status == terminal {
			changes["resolved_at"] = time.Now().UTC()
			return
		}
	}
}
