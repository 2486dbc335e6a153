package validation

import (
	"strings"

	"github.com/careline/case-service/internal/model"
	"github.com/lib/pq"
)

// ComplaintInput is the creation payload for a complaint.
type ComplaintInput struct {
	PhoneNumber  string   `json:"phoneNumber"`
	CustomerName string   `json:"customerName"`
	Email        string   `json:"email"`
	Category     string   `json:"category"`
	Priority     string   `json:"priority"`
	Subject      string   `json:"subject"`
	Description  string   `json:"description"`
	Attachments  []string `json:"attachments"`
	AssignedTo   string   `json:"assignedTo"`
}

// ComplaintUpdate is the partial-update payload. Pointer fields
// distinguish "absent" from "set to empty".
type ComplaintUpdate struct {
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	AssignedTo  *string  `json:"assignedTo"`
	Resolution  *string  `json:"resolution"`
	Attachments []string `json:"attachments"`
}

// Complaint validates a creation payload and returns the normalized record
// with defaults applied (priority MEDIUM, status OPEN).
func Complaint(in *ComplaintInput) (*model.Complaint, error) {
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

	if in.Category == "" {
		r.add("Category is required")
	} else if !enumContains(model.ComplaintCategories, in.Category) {
		r.add("Category must be one of: SERVICE, BILLING, TECHNICAL, PRODUCT, OTHER")
	}

	priority := in.Priority
	if priority == "" {
		priority = string(model.PriorityMedium)
	} else if !enumContains(model.Priorities, priority) {
		r.add("Priority must be one of: LOW, MEDIUM, HIGH, CRITICAL")
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		r.add("Subject is required")
	} else if fieldLen(subject) > 200 {
		r.add("Subject cannot exceed 200 characters")
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		r.add("Description is required")
	} else if fieldLen(description) > 2000 {
		r.add("Description cannot exceed 2000 characters")
	}

	if err := r.err(); err != nil {
		return nil, err
	}

	return &model.Complaint{
		PhoneNumber:  in.PhoneNumber,
		CustomerName: name,
		Email:        email,
		Category:     model.ComplaintCategory(in.Category),
		Priority:     model.Priority(priority),
		Status:       model.ComplaintStatusOpen,
		Subject:      subject,
		Description:  description,
		Attachments:  pq.StringArray(trimAll(in.Attachments)),
		AssignedTo:   strings.TrimSpace(in.AssignedTo),
	}, nil
}

// ComplaintChanges validates an update payload and returns the column
// changes to apply. At least one recognized field must be present.
func ComplaintChanges(in *ComplaintUpdate) (map[string]interface{}, error) {
	var r result
	changes := make(map[string]interface{})

	if in.Status != nil {
		if !enumContains(model.ComplaintStatuses, *in.Status) {
			r.add("Status must be one of: OPEN, IN_PROGRESS, RESOLVED, CLOSED, CANCELLED")
		} else {
			changes["status"] = *in.Status
		}
	}
	if in.Priority != nil {
		if !enumContains(model.Priorities, *in.Priority) {
			r.add("Priority must be one of: LOW, MEDIUM, HIGH, CRITICAL")
		} else {
			changes["priority"] = *in.Priority
		}
	}
	if in.AssignedTo != nil {
		changes["assigned_to"] = strings.TrimSpace(*in.AssignedTo)
	}
	if in.Resolution != nil {
		res := strings.TrimSpace(*in.Resolution)
		if fieldLen(res) > 1000 {
			r.add("Resolution cannot exceed 1000 characters")
		} else {
			changes["resolution"] = res
		}
	}
	if in.Attachments != nil {
		changes["attachments"] = pq.StringArray(trimAll(in.Attachments))
	}

	if len(r.details) == 0 && len(changes) == 0 {
		r.add("At least one field must be provided for update")
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return changes, nil
}
