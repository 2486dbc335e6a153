package validation

import (
	"strings"
	"time"

	"github.com/careline/case-service/internal/model"
	"github.com/lib/pq"
)

// FraudInput is the creation payload for a fraud report.
type FraudInput struct {
	PhoneNumber    string     `json:"phoneNumber"`
	CustomerName   string     `json:"customerName"`
	Email          string     `json:"email"`
	FraudType      string     `json:"fraudType"`
	Severity       string     `json:"severity"`
	Description    string     `json:"description"`
	EvidenceFiles  []string   `json:"evidenceFiles"`
	TransactionIDs []string   `json:"transactionIds"`
	AmountInvolved *float64   `json:"amountInvolved"`
	Currency       string     `json:"currency"`
	IncidentDate   *time.Time `json:"incidentDate"`
}

// FraudUpdate is the partial-update payload for a fraud report.
type FraudUpdate struct {
	Status             *string  `json:"status"`
	Severity           *string  `json:"severity"`
	InvestigatorID     *string  `json:"investigatorId"`
	InvestigationNotes *string  `json:"investigationNotes"`
	Resolution         *string  `json:"resolution"`
	EvidenceFiles      []string `json:"evidenceFiles"`
	TransactionIDs     []string `json:"transactionIds"`
	AmountInvolved     *float64 `json:"amountInvolved"`
}

// Fraud validates a creation payload and returns the normalized record
// with defaults applied (severity MEDIUM, currency USD, status REPORTED,
// reportedDate now).
func Fraud(in *FraudInput) (*model.Fraud, error) {
	var r result

	if in.PhoneNumber == "" {
		r.add("Phone number is required")
	} else if !validPhone(in.PhoneNumber) {
		r.add("Phone number must be a valid international format")
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		r.add("Customer name is required")
	} else if fieldLen(name) > 100 {
		r.add("Customer name cannot exceed 100 characters")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !validEmail(email) {
		r.add("Please provide a valid email address")
	}

	if in.FraudType == "" {
		r.add("Fraud type is required")
	} else if !enumContains(model.FraudTypes, in.FraudType) {
		r.add("Fraud type must be one of: IDENTITY_THEFT, UNAUTHORIZED_TRANSACTION, ACCOUNT_TAKEOVER, PHISHING, OTHER")
	}

	severity := in.Severity
	if severity == "" {
		severity = string(model.PriorityMedium)
	} else if !enumContains(model.Priorities, severity) {
		r.add("Severity must be one of: LOW, MEDIUM, HIGH, CRITICAL")
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		r.add("Description is required")
	} else if fieldLen(description) > 2000 {
		r.add("Description cannot exceed 2000 characters")
	}

	if in.AmountInvolved != nil && *in.AmountInvolved < 0 {
		r.add("Amount involved cannot be negative")
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = "USD"
	} else if fieldLen(currency) > 3 {
		r.add("Currency code cannot exceed 3 characters")
	}

	if in.IncidentDate == nil {
		r.add("Incident date is required")
	}

	if err := r.err(); err != nil {
		return nil, err
	}

	return &model.Fraud{
		PhoneNumber:    in.PhoneNumber,
		CustomerName:   name,
		Email:          email,
		FraudType:      model.FraudType(in.FraudType),
		Severity:       model.Severity(severity),
		Status:         model.FraudStatusReported,
		Description:    description,
		EvidenceFiles:  pq.StringArray(trimAll(in.EvidenceFiles)),
		TransactionIDs: pq.StringArray(trimAll(in.TransactionIDs)),
		AmountInvolved: in.AmountInvolved,
		Currency:       currency,
		IncidentDate:   *in.IncidentDate,
		ReportedDate:   time.Now().UTC(),
	}, nil
}

// FraudChanges validates an update payload and returns the column changes
// to apply. At least one recognized field must be present.
func FraudChanges(in *FraudUpdate) (map[string]interface{}, error) {
	var r result
	changes := make(map[string]interface{})

	if in.Status != nil {
		if !enumContains(model.FraudStatuses, *in.Status) {
			r.add("Status must be one of: REPORTED, UNDER_INVESTIGATION, VERIFIED, RESOLVED, DISMISSED")
		} else {
			changes["status"] = *in.Status
		}
	}
	if in.Severity != nil {
		if !enumContains(model.Priorities, *in.Severity) {
			r.add("Severity must be one of: LOW, MEDIUM, HIGH, CRITICAL")
		} else {
			changes["severity"] = *in.Severity
		}
	}
	if in.InvestigatorID != nil {
		changes["investigator_id"] = strings.TrimSpace(*in.InvestigatorID)
	}
	if in.InvestigationNotes != nil {
		notes := strings.TrimSpace(*in.InvestigationNotes)
		if fieldLen(notes) > 2000 {
			r.add("Investigation notes cannot exceed 2000 characters")
		} else {
			changes["investigation_notes"] = notes
		}
	}
	if in.Resolution != nil {
		res := strings.TrimSpace(*in.Resolution)
		if fieldLen(res) > 1000 {
			r.add("Resolution cannot exceed 1000 characters")
		} else {
			changes["resolution"] = res
		}
	}
	if in.EvidenceFiles != nil {
		changes["evidence_files"] = pq.StringArray(trimAll(in.EvidenceFiles))
	}
	if in.TransactionIDs != nil {
		changes["transaction_ids"] = pq.StringArray(trimAll(in.TransactionIDs))
	}
	if in.AmountInvolved != nil {
		if *in.AmountInvolved < 0 {
			r.add("Amount involved cannot be negative")
		} else {
			changes["amount_involved"] = *in.AmountInvolved
		}
	}

	if len(r.details) == 0 && len(changes) == 0 {
		r.add("At least one field must be provided for update")
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return changes, nil
}
