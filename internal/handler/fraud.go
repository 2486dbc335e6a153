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

type FraudHandler struct {
	svc    service.FraudServicer
	events kafka.RecordEventProducer
	search *searchindex.Client
}

func NewFraudHandler(svc service.FraudServicer, events kafka.RecordEventProducer, search *searchindex.Client) *FraudHandler {
	return &FraudHandler{svc: svc, events: events, search: search}
}

func (h *FraudHandler) Create(c *gin.Context) {
	var in validation.FraudInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []string{"Request body must be valid JSON"})
		return
	}
	fraud, err := validation.Fraud(&in)
	if err != nil {
		ve, _ := errs.AsValidation(err)
		respondValidation(c, ve.Details)
		return
	}
	if err := h.svc.Create(c.Request.Context(), fraud); err != nil {
		if errors.Is(err, errs.ErrDuplicateID) {
			respondError(c, http.StatusConflict, "Duplicate fraud ID")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.events.ProduceRecordEvent(c.Request.Context(), "fraud.created", fraudEventPayload(fraud))
	h.search.IndexFraudAsync(fraud)
	respondCreated(c, fraud, "Fraud report created successfully")
}

func (h *FraudHandler) Get(c *gin.Context) {
	fraud, err := h.svc.GetByID(c.Request.Context(), c.Param("fraudId"))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Fraud report not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, fraud)
}

func (h *FraudHandler) GetByPhone(c *gin.Context) {
	filters := map[string]string{"phone_number": c.Param("phoneNumber")}
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}
	if v := c.Query("fraudType"); v != "" {
		filters["fraud_type"] = v
	}
	limit, offset := query.Page(c.Query("limit"), c.Query("offset"), defaultPhoneLimit)
	order, _ := query.FraudSort.Resolve("", "")

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

func (h *FraudHandler) Update(c *gin.Context) {
	var in validation.FraudUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []string{"Request body must be valid JSON"})
		return
	}
	changes, err := validation.FraudChanges(&in)
	if err != nil {
		ve, _ := errs.AsValidation(err)
		respondValidation(c, ve.Details)
		return
	}
	fraud, err := h.svc.Update(c.Request.Context(), c.Param("fraudId"), changes)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Fraud report not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.events.ProduceRecordEvent(c.Request.Context(), "fraud.updated", fraudEventPayload(fraud))
	h.search.IndexFraudAsync(fraud)
	respondUpdated(c, fraud, "Fraud report updated successfully")
}

func (h *FraudHandler) List(c *gin.Context) {
	filters := make(map[string]string)
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}
	if v := c.Query("fraudType"); v != "" {
		filters["fraud_type"] = v
	}
	if v := c.Query("severity"); v != "" {
		filters["severity"] = v
	}
	order, err := query.FraudSort.Resolve(c.Query("sortBy"), c.Query("sortOrder"))
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

func (h *FraudHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, stats)
}

func fraudEventPayload(f *model.Fraud) map[string]interface{} {
	return map[string]interface{}{
		"fraud_id":     f.FraudID,
		"phone_number": f.PhoneNumber,
		"status":       string(f.Status),
		"fraud_type":   string(f.FraudType),
		"severity":     string(f.Severity),
	}
}
