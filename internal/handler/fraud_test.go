package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/careline/case-service/internal/errs"
	"github.com/careline/case-service/internal/model"
	"github.com/careline/case-service/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFraud(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodPost, "/api/fraud", map[string]interface{}{
		"phoneNumber":    "+15559876543",
		"customerName":   "B. Jones",
		"fraudType":      "PHISHING",
		"description":    "Fake payment link",
		"amountInvolved": 250.75,
		"incidentDate":   "2024-03-10T12:00:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Fraud report created successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Regexp(t, `^FRAUD-[0-9A-F]{8}$`, data["fraudId"])
	assert.Equal(t, "REPORTED", data["status"])
	assert.Equal(t, "MEDIUM", data["severity"])
	assert.Equal(t, "USD", data["currency"])
	assert.NotEmpty(t, data["reportedDate"])
}

func TestCreateFraudValidationError(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodPost, "/api/fraud", map[string]interface{}{
		"phoneNumber":    "+15559876543",
		"customerName":   "B. Jones",
		"fraudType":      "PHISHING",
		"description":    "Fake payment link",
		"amountInvolved": -50,
		"incidentDate":   "2024-03-10T12:00:00Z",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decode(t, w)["details"].([]interface{})
	assert.Contains(t, details, "Amount involved cannot be negative")
}

func TestCreateFraudDuplicateID(t *testing.T) {
	fs := &fraudStub{
		create: func(*model.Fraud) error { return errs.ErrDuplicateID },
	}
	r := newTestRouter(&complaintStub{}, fs)

	w := do(t, r, http.MethodPost, "/api/fraud", map[string]interface{}{
		"phoneNumber":  "+15559876543",
		"customerName": "B. Jones",
		"fraudType":    "PHISHING",
		"description":  "Fake payment link",
		"incidentDate": "2024-03-10T12:00:00Z",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Duplicate fraud ID", decode(t, w)["error"])
}

func TestGetFraudNotFound(t *testing.T) {
	fs := &fraudStub{
		get: func(string) (*model.Fraud, error) { return nil, errs.ErrRecordNotFound },
	}
	r := newTestRouter(&complaintStub{}, fs)

	w := do(t, r, http.MethodGet, "/api/fraud/FRAUD-DEADBEEF", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Fraud report not found", decode(t, w)["error"])
}

func TestGetFraudsByPhone(t *testing.T) {
	var got query.Params
	fs := &fraudStub{
		list: func(p query.Params) ([]model.Fraud, int64, error) {
			got = p
			return []model.Fraud{{FraudID: "FRAUD-AAAA1111"}}, 1, nil
		},
	}
	r := newTestRouter(&complaintStub{}, fs)

	w := do(t, r, http.MethodGet, "/api/fraud/phone/%2B15559876543?fraudType=PHISHING", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+15559876543", got.Filters["phone_number"])
	assert.Equal(t, "PHISHING", got.Filters["fraud_type"])
	assert.Equal(t, "reported_date DESC", got.Order)
	assert.Equal(t, 10, got.Limit)
}

func TestListFraudsFilters(t *testing.T) {
	var got query.Params
	fs := &fraudStub{
		list: func(p query.Params) ([]model.Fraud, int64, error) {
			got = p
			return nil, 0, nil
		},
	}
	r := newTestRouter(&complaintStub{}, fs)

	w := do(t, r, http.MethodGet,
		"/api/fraud?status=VERIFIED&severity=HIGH&sortBy=amountInvolved&sortOrder=desc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "VERIFIED", got.Filters["status"])
	assert.Equal(t, "HIGH", got.Filters["severity"])
	assert.Equal(t, "amount_involved DESC", got.Order)
}

func TestUpdateFraudResolution(t *testing.T) {
	created := time.Now().UTC().Add(-time.Hour)
	resolved := time.Now().UTC()
	fs := &fraudStub{
		update: func(id string, changes map[string]interface{}) (*model.Fraud, error) {
			require.Equal(t, "FRAUD-AAAA1111", id)
			assert.Equal(t, "RESOLVED", changes["status"])
			return &model.Fraud{
				FraudID:    id,
				Status:     model.FraudStatusResolved,
				CreatedAt:  created,
				ResolvedAt: &resolved,
			}, nil
		},
	}
	r := newTestRouter(&complaintStub{}, fs)

	w := do(t, r, http.MethodPut, "/api/fraud/FRAUD-AAAA1111", map[string]interface{}{
		"status":     "RESOLVED",
		"resolution": "chargeback completed",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Fraud report updated successfully", body["message"])

	data := body["data"].(map[string]interface{})
	resolvedAt, err := time.Parse(time.RFC3339, data["resolvedAt"].(string))
	require.NoError(t, err)
	createdAt, err := time.Parse(time.RFC3339, data["createdAt"].(string))
	require.NoError(t, err)
	assert.False(t, resolvedAt.Before(createdAt))
}

func TestFraudStats(t *testing.T) {
	fs := &fraudStub{
		stats: func() (*model.FraudStats, error) {
			return &model.FraudStats{
				Total:       7,
				TotalAmount: 1234.56,
				ByStatus:    map[string]int64{"REPORTED": 4, "RESOLVED": 3},
				BySeverity:  map[string]int64{"HIGH": 2, "MEDIUM": 5},
			}, nil
		},
		// stats must not fall through to the id lookup route
		get: func(string) (*model.Fraud, error) {
			t.Fatal("GetByID should not be called for /api/fraud/stats")
			return nil, nil
		},
	}
	r := newTestRouter(&complaintStub{}, fs)

	w := do(t, r, http.MethodGet, "/api/fraud/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["total"])
	assert.Equal(t, 1234.56, data["totalAmount"])

	byStatus := data["byStatus"].(map[string]interface{})
	assert.Equal(t, float64(4), byStatus["REPORTED"])
}
