// Package searchindex pushes records to an external search service for
// full-text indexing. All calls are best-effort and never block or fail
// the API request that triggered them.
package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/careline/case-service/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client. With an empty baseURL every call is a no-op.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("searchindex: marshal", "error", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		slog.Error("searchindex: new request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("searchindex: request", "path", path, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Error("searchindex: unexpected status", "path", path, "status", resp.StatusCode)
	}
}

// IndexComplaint sends a complaint to the search service.
func (c *Client) IndexComplaint(ctx context.Context, cp *model.Complaint) {
	if c.baseURL == "" {
		return
	}
	c.post(ctx, "/search/index/complaint", map[string]interface{}{
		"complaint_id":  cp.ComplaintID,
		"phone_number":  cp.PhoneNumber,
		"customer_name": cp.CustomerName,
		"subject":       cp.Subject,
		"description":   cp.Description,
		"status":        string(cp.Status),
	})
}

// IndexFraud sends a fraud report to the search service.
func (c *Client) IndexFraud(ctx context.Context, f *model.Fraud) {
	if c.baseURL == "" {
		return
	}
	c.post(ctx, "/search/index/fraud", map[string]interface{}{
		"fraud_id":      f.FraudID,
		"phone_number":  f.PhoneNumber,
		"customer_name": f.CustomerName,
		"description":   f.Description,
		"status":        string(f.Status),
	})
}

// IndexComplaintAsync indexes in a separate goroutine so the API response
// is never delayed.
func (c *Client) IndexComplaintAsync(cp *model.Complaint) {
	if c.baseURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.IndexComplaint(ctx, cp)
	}()
}

// IndexFraudAsync indexes in a separate goroutine.
func (c *Client) IndexFraudAsync(f *model.Fraud) {
	if c.baseURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.IndexFraud(ctx, f)
	}()
}
