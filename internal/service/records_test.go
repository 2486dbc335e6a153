package service

import (
	"testing"
	"time"

	"github.com/careline/case-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampResolutionOnTerminalStatus(t *testing.T) {
	cases := []struct {
		name       string
		resolution []string
		status     string
		stamped    bool
	}{
		{"complaint resolved", model.ComplaintResolutionStatuses, "RESOLVED", true},
		{"complaint closed", model.ComplaintResolutionStatuses, "CLOSED", true},
		{"complaint cancelled", model.ComplaintResolutionStatuses, "CANCELLED", false},
		{"complaint in progress", model.ComplaintResolutionStatuses, "IN_PROGRESS", false},
		{"fraud resolved", model.FraudResolutionStatuses, "RESOLVED", true},
		{"fraud dismissed", model.FraudResolutionStatuses, "DISMISSED", true},
		{"fraud verified", model.FraudResolutionStatuses, "VERIFIED", false},
		{"fraud under investigation", model.FraudResolutionStatuses, "UNDER_INVESTIGATION", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changes := map[string]interface{}{"status": tc.status}
			before := time.Now().UTC()
			stampResolution(changes, tc.resolution)

			if !tc.stamped {
				assert.NotContains(t, changes, "resolved_at")
				return
			}
			stamped, ok := changes["resolved_at"].(time.Time)
			require.True(t, ok, "resolved_at should be a time.Time")
			assert.False(t, stamped.Before(before))
		})
	}
}

func TestStampResolutionWithoutStatusChange(t *testing.T) {
	changes := map[string]interface{}{"resolution": "refund issued"}
	stampResolution(changes, model.ComplaintResolutionStatuses)
	assert.NotContains(t, changes, "resolved_at")
}

func TestServiceDescriptors(t *testing.T) {
	cs := NewComplaintService(nil)
	assert.Equal(t, "COMP-", cs.desc.IDPrefix)
	assert.Equal(t, "complaint_id", cs.desc.IDColumn)
	assert.ElementsMatch(t, []string{"RESOLVED", "CLOSED"}, cs.desc.Resolution)

	fs := NewFraudService(nil)
	assert.Equal(t, "FRAUD-", fs.desc.IDPrefix)
	assert.Equal(t, "fraud_id", fs.desc.IDColumn)
	assert.ElementsMatch(t, []string{"RESOLVED", "DISMISSED"}, fs.desc.Resolution)
}
