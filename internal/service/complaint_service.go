package service

import (
	"context"

	"github.com/careline/case-service/internal/model"
	"github.com/careline/case-service/internal/query"
	"gorm.io/gorm"
)

// ComplaintServicer is the handler-facing interface (for substitution in
// tests).
type ComplaintServicer interface {
	Create(ctx context.Context, c *model.Complaint) error
	GetByID(ctx context.Context, id string) (*model.Complaint, error)
	List(ctx context.Context, p query.Params) ([]model.Complaint, int64, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (*model.Complaint, error)
}

type ComplaintService struct {
	*Records[model.Complaint, *model.Complaint]
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{
		Records: NewRecords[model.Complaint, *model.Complaint](db, Descriptor{
			IDPrefix:   "COMP-",
			IDColumn:   "complaint_id",
			Resolution: model.ComplaintResolutionStatuses,
		}),
	}
}
