package model

import (
	"time"

	"github.com/lib/pq"
)

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "OPEN"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
	ComplaintStatusClosed     ComplaintStatus = "CLOSED"
	ComplaintStatusCancelled  ComplaintStatus = "CANCELLED"
)

type ComplaintCategory string

const (
	CategoryService   ComplaintCategory = "SERVICE"
	CategoryBilling   ComplaintCategory = "BILLING"
	CategoryTechnical ComplaintCategory = "TECHNICAL"
	CategoryProduct   ComplaintCategory = "PRODUCT"
	CategoryOther     ComplaintCategory = "OTHER"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Complaint is a customer complaint record. ComplaintID is the public key
// (COMP-XXXXXXXX); the serial ID never leaves the store.
type Complaint struct {
	ID           uint64            `gorm:"primaryKey" json:"-"`
	ComplaintID  string            `gorm:"column:complaint_id;type:varchar(16);uniqueIndex;not null" json:"complaintId"`
	PhoneNumber  string            `gorm:"type:varchar(20);index;not null" json:"phoneNumber"`
	CustomerName string            `gorm:"type:varchar(100);not null" json:"customerName"`
	Email        string            `gorm:"type:varchar(255)" json:"email,omitempty"`
	Category     ComplaintCategory `gorm:"type:varchar(32);index;not null" json:"category"`
	Priority     Priority          `gorm:"type:varchar(32);index;not null" json:"priority"`
	Status       ComplaintStatus   `gorm:"type:varchar(32);index;not null" json:"status"`
	Subject      string            `gorm:"type:varchar(200);not null" json:"subject"`
	Description  string            `gorm:"type:text;not null" json:"description"`
	Attachments  pq.StringArray    `gorm:"type:text[]" json:"attachments,omitempty"`
	AssignedTo   string            `gorm:"type:varchar(100)" json:"assignedTo,omitempty"`
	Resolution   string            `gorm:"type:text" json:"resolution,omitempty"`

	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func (c *Complaint) SetRecordID(id string) { c.ComplaintID = id }

// ComplaintResolutionStatuses are the terminal states that stamp ResolvedAt.
var ComplaintResolutionStatuses = []string{
	string(ComplaintStatusResolved),
	string(ComplaintStatusClosed),
}

var ComplaintStatuses = []string{
	string(ComplaintStatusOpen),
	string(ComplaintStatusInProgress),
	string(ComplaintStatusResolved),
	string(ComplaintStatusClosed),
	string(ComplaintStatusCancelled),
}

var ComplaintCategories = []string{
	string(CategoryService),
	string(CategoryBilling),
	string(CategoryTechnical),
	string(CategoryProduct),
	string(CategoryOther),
}

var Priorities = []string{
	string(PriorityLow),
	string(PriorityMedium),
	string(PriorityHigh),
	string(PriorityCritical),
}
