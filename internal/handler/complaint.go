package handler

import (
	"errors"
	"net/http"

	"github.com/careline/case-service/internal/errs"
	"github.com/careline/case-service/internal/kafka"
	"github.com/careline/case-service/internal/model"
	"github.com/careline/case-service/internal/query"
	"github.com/careline/case-service/internal/searchindex"
	"github.com/careline/case-service/internal/service"
	"github.com/careline/case-service/internal/validation"
	"github.com/gin-gonic/gin"
)

const (
	defaultPhoneLimit = 10
	defaultListLimit  = 20
)

type ComplaintHandler struct {
	svc    service.ComplaintServicer
	events kafka.RecordEventProducer
	search *searchindex.Client
}

func NewComplaintHandler(svc service.ComplaintServicer, events kafka.RecordEventProducer, search *searchindex.Client) *ComplaintHandler {
	return &ComplaintHandler{svc: svc, events: events, search: search}
}

func (h *ComplaintHandler) Create(c *gin.Context) {
	var in validation.ComplaintInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []string{"Request body must be valid JSON"})
		return
	}
	complaint, err := validation.Complaint(&in)
	if err != nil {
		ve, _ := errs.AsValidation(err)
		respondValidation(c, ve.Details)
		return
	}
	if err := h.svc.Create(c.Request.Context(), complaint); err != nil {
		if errors.Is(err, errs.ErrDuplicateID) {
			respondError(c, http.StatusConflict, "Duplicate complaint ID")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.events.ProduceRecordEvent(c.Request.Context(), "complaint.created", complaintEventPayload(complaint))
	h.search.IndexComplaintAsync(complaint)
	respondCreated(c, complaint, "Complaint created successfully")
}

func (h *ComplaintHandler) Get(c *gin.Context) {
	complaint, err := h.svc.GetByID(c.Request.Context(), c.Param("complaintId"))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Complaint not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, complaint)
}

func (h *ComplaintHandler) GetByPhone(c *gin.Context) {
	filters := map[string]string{"phone_number": c.Param("phoneNumber")}
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}
	limit, offset := query.Page(c.Query("limit"), c.Query("offset"), defaultPhoneLimit)
	order, _ := query.ComplaintSort.Resolve("", "")

	items, total, err := h.svc.List(c.Request.Context(), query.Params{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondList(c, items, paged(total, limit, offset))
}

func (h *ComplaintHandler) Update(c *gin.Context) {
	var in validation.ComplaintUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []string{"Request body must be valid JSON"})
		return
	}
	changes, err := validation.ComplaintChanges(&in)
	if err != nil {
		ve, _ := errs.AsValidation(err)
		respondValidation(c, ve.Details)
		return
	}
	complaint, err := h.svc.Update(c.Request.Context(), c.Param("complaintId"), changes)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Complaint not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.events.ProduceRecordEvent(c.Request.Context(), "complaint.updated", complaintEventPayload(complaint))
	h.search.IndexComplaintAsync(complaint)
	respondUpdated(c, complaint, "Complaint updated successfully")
}

func (h *ComplaintHandler) List(c *gin.Context) {
	filters := make(map[string]string)
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}
	if v := c.Query("category"); v != "" {
		filters["category"] = v
	}
	if v := c.Query("priority"); v != "" {
		filters["priority"] = v
	}
	order, err := query.ComplaintSort.Resolve(c.Query("sortBy"), c.Query("sortOrder"))
	if err != nil {
		respondValidation(c, []string{err.Error()})
		return
	}
	limit, offset := query.Page(c.Query("limit"), c.Query("offset"), defaultListLimit)

	items, total, err := h.svc.List(c.Request.Context(), query.Params{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondList(c, items, paged(total, limit, offset))
}

func complaintEventPayload(cp *model.Complaint) map[string]interface{} {
	return map[string]interface{}{
		"complaint_id": cp.ComplaintID,
		"phone_number": cp.PhoneNumber,
		"status":       string(cp.Status),
		"category":     string(cp.Category),
		"priority":     string(cp.Priority),
	}
}
