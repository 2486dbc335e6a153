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

func TestCreateComplaint(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodPost, "/api/complaints", map[string]interface{}{
		"phoneNumber":  "+15551234567",
		"customerName": "A. Smith",
		"category":     "BILLING",
		"subject":      "Overcharge",
		"description":  "Charged twice for March",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Complaint created successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Regexp(t, `^COMP-[0-9A-F]{8}$`, data["complaintId"])
	assert.Equal(t, "OPEN", data["status"])
	assert.Equal(t, "MEDIUM", data["priority"])
}

func TestCreateComplaintValidationError(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodPost, "/api/complaints", map[string]interface{}{
		"phoneNumber": "not-a-phone",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation error", body["error"])

	details := body["details"].([]interface{})
	assert.Contains(t, details, "Phone number must be a valid international format")
	assert.Contains(t, details, "Customer name is required")
	assert.Contains(t, details, "Subject is required")
}

func TestCreateComplaintDuplicateID(t *testing.T) {
	cs := &complaintStub{
		create: func(*model.Complaint) error { return errs.ErrDuplicateID },
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodPost, "/api/complaints", map[string]interface{}{
		"phoneNumber":  "+15551234567",
		"customerName": "A. Smith",
		"category":     "BILLING",
		"subject":      "Overcharge",
		"description":  "Charged twice",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Duplicate complaint ID", body["error"])
}

func TestGetComplaint(t *testing.T) {
	cs := &complaintStub{
		get: func(id string) (*model.Complaint, error) {
			require.Equal(t, "COMP-AAAA1111", id)
			return &model.Complaint{ComplaintID: id, Status: model.ComplaintStatusOpen}, nil
		},
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodGet, "/api/complaints/COMP-AAAA1111", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "COMP-AAAA1111", data["complaintId"])
}

func TestGetComplaintNotFound(t *testing.T) {
	cs := &complaintStub{
		get: func(string) (*model.Complaint, error) { return nil, errs.ErrRecordNotFound },
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodGet, "/api/complaints/COMP-DEADBEEF", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Complaint not found", body["error"])
}

func TestGetComplaintsByPhone(t *testing.T) {
	var got query.Params
	cs := &complaintStub{
		list: func(p query.Params) ([]model.Complaint, int64, error) {
			got = p
			return []model.Complaint{{ComplaintID: "COMP-AAAA1111"}, {ComplaintID: "COMP-BBBB2222"}}, 5, nil
		},
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodGet, "/api/complaints/phone/%2B15551234567?status=OPEN&limit=2&offset=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+15551234567", got.Filters["phone_number"])
	assert.Equal(t, "OPEN", got.Filters["status"])
	assert.Equal(t, "created_at DESC", got.Order)
	assert.Equal(t, 2, got.Limit)
	assert.Equal(t, 2, got.Offset)

	p := decode(t, w)["pagination"].(map[string]interface{})
	assert.Equal(t, float64(5), p["total"])
	assert.Equal(t, float64(2), p["limit"])
	assert.Equal(t, float64(2), p["offset"])
	assert.Equal(t, true, p["hasMore"])
}

func TestGetComplaintsByPhoneDefaultLimit(t *testing.T) {
	cs := &complaintStub{
		list: func(p query.Params) ([]model.Complaint, int64, error) {
			assert.Equal(t, 10, p.Limit)
			assert.Equal(t, 0, p.Offset)
			return nil, 0, nil
		},
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodGet, "/api/complaints/phone/%2B15551234567", nil)

	require.Equal(t, http.StatusOK, w.Code)
	p := decode(t, w)["pagination"].(map[string]interface{})
	assert.Equal(t, false, p["hasMore"])
}

func TestListComplaintsFilters(t *testing.T) {
	var got query.Params
	cs := &complaintStub{
		list: func(p query.Params) ([]model.Complaint, int64, error) {
			got = p
			return nil, 0, nil
		},
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodGet,
		"/api/complaints?status=OPEN&category=BILLING&priority=HIGH&sortBy=priority&sortOrder=desc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OPEN", got.Filters["status"])
	assert.Equal(t, "BILLING", got.Filters["category"])
	assert.Equal(t, "HIGH", got.Filters["priority"])
	assert.Equal(t, "priority DESC", got.Order)
	assert.Equal(t, 20, got.Limit)
}

func TestListComplaintsRejectsUnknownSortField(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodGet, "/api/complaints?sortBy=email", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation error", body["error"])
	details := body["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "sortBy must be one of: category, createdAt, priority, status, updatedAt", details[0])
}

func TestUpdateComplaint(t *testing.T) {
	resolved := time.Now().UTC()
	var gotChanges map[string]interface{}
	cs := &complaintStub{
		update: func(id string, changes map[string]interface{}) (*model.Complaint, error) {
			require.Equal(t, "COMP-AAAA1111", id)
			gotChanges = changes
			return &model.Complaint{
				ComplaintID: id,
				Status:      model.ComplaintStatusResolved,
				Resolution:  "refund issued",
				ResolvedAt:  &resolved,
			}, nil
		},
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodPut, "/api/complaints/COMP-AAAA1111", map[string]interface{}{
		"status":     "RESOLVED",
		"resolution": "refund issued",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RESOLVED", gotChanges["status"])
	assert.Equal(t, "refund issued", gotChanges["resolution"])

	body := decode(t, w)
	assert.Equal(t, "Complaint updated successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "RESOLVED", data["status"])
	assert.NotEmpty(t, data["resolvedAt"])
}

func TestUpdateComplaintEmptyPayload(t *testing.T) {
	r := newTestRouter(&complaintStub{}, &fraudStub{})

	w := do(t, r, http.MethodPut, "/api/complaints/COMP-AAAA1111", map[string]interface{}{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decode(t, w)["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "At least one field must be provided for update", details[0])
}

func TestUpdateComplaintNotFound(t *testing.T) {
	cs := &complaintStub{
		update: func(string, map[string]interface{}) (*model.Complaint, error) {
			return nil, errs.ErrRecordNotFound
		},
	}
	r := newTestRouter(cs, &fraudStub{})

	w := do(t, r, http.MethodPut, "/api/complaints/COMP-DEADBEEF", map[string]interface{}{
		"status": "CLOSED",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Complaint not found", decode(t, w)["error"])
}
