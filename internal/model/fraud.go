package model

import (
	"time"

	"github.com/lib/pq"
)

type FraudStatus string

const (
	FraudStatusReported           FraudStatus = "REPORTED"
	FraudStatusUnderInvestigation FraudStatus = "UNDER_INVESTIGATION"
	FraudStatusVerified           FraudStatus = "VERIFIED"
	FraudStatusResolved           FraudStatus = "RESOLVED"
	FraudStatusDismissed          FraudStatus = "DISMISSED"
)

type FraudType string

const (
	FraudIdentityTheft           FraudType = "IDENTITY_THEFT"
	FraudUnauthorizedTransaction FraudType = "UNAUTHORIZED_TRANSACTION"
	FraudAccountTakeover         FraudType = "ACCOUNT_TAKEOVER"
	FraudPhishing                FraudType = "PHISHING"
	FraudOther                   FraudType = "OTHER"
)

// Severity shares the priority scale.
type Severity = Priority

// Fraud is a customer fraud report. FraudID is the public key
// (FRAUD-XXXXXXXX); the serial ID never leaves the store.
type Fraud struct {
	ID             uint64         `gorm:"primaryKey" json:"-"`
	FraudID        string         `gorm:"column:fraud_id;type:varchar(16);uniqueIndex;not null" json:"fraudId"`
	PhoneNumber    string         `gorm:"type:varchar(20);index;not null" json:"phoneNumber"`
	CustomerName   string         `gorm:"type:varchar(100);not null" json:"customerName"`
	Email          string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	FraudType      FraudType      `gorm:"type:varchar(32);index;not null" json:"fraudType"`
	Severity       Severity       `gorm:"type:varchar(32);index;not null" json:"severity"`
	Status         FraudStatus    `gorm:"type:varchar(32);index;not null" json:"status"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	EvidenceFiles  pq.StringArray `gorm:"type:text[]" json:"evidenceFiles,omitempty"`
	TransactionIDs pq.StringArray `gorm:"column:transaction_ids;type:text[]" json:"transactionIds,omitempty"`

	AmountInvolved *float64  `gorm:"type:numeric(14,2)" json:"amountInvolved,omitempty"`
	Currency       string    `gorm:"type:varchar(3);not null" json:"currency"`
	IncidentDate   time.Time `gorm:"not null" json:"incidentDate"`
	ReportedDate   time.Time `gorm:"index;not null" json:"reportedDate"`

	InvestigatorID     string `gorm:"type:varchar(100)" json:"investigatorId,omitempty"`
	InvestigationNotes string `gorm:"type:text" json:"investigationNotes,omitempty"`
	Resolution         string `gorm:"type:text" json:"resolution,omitempty"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func (f *Fraud) SetRecordID(id string) { f.FraudID = id }

// FraudResolutionStatuses are the terminal states that stamp ResolvedAt.
// VERIFIED and UNDER_INVESTIGATION deliberately do not qualify.
var FraudResolutionStatuses = []string{
	string(FraudStatusResolved),
	string(FraudStatusDismissed),
}

var FraudStatuses = []string{
	string(FraudStatusReported),
	string(FraudStatusUnderInvestigation),
	string(FraudStatusVerified),
	string(FraudStatusResolved),
	string(FraudStatusDismissed),
}

var FraudTypes = []string{
	string(FraudIdentityTheft),
	string(FraudUnauthorizedTransaction),
	string(FraudAccountTakeover),
	string(FraudPhishing),
	string(FraudOther),
}

// FraudStats is the aggregate view served by GET /api/fraud/stats.
type FraudStats struct {
	Total       int64            `json:"total"`
	TotalAmount float64          `json:"totalAmount"`
	ByStatus    map[string]int64 `json:"byStatus"`
	BySeverity  map[string]int64 `json:"bySeverity"`
}
