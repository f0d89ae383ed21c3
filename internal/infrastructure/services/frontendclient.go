package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campusdesk/internal/domain/callback"
)

const maxCallbackResponseBytes = 64 * 1024

// FrontendClient delivers callback payloads to registered frontend
// endpoints over HTTP POST.
type FrontendClient struct {
	client       *http.Client
	serviceToken string
}

func NewFrontendClient(timeout time.Duration, serviceToken string) *FrontendClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FrontendClient{
		client:       &http.Client{Timeout: timeout},
		serviceToken: serviceToken,
	}
}

// Send posts the call payload to the endpoint and returns the response
// body. Any non-2xx status is a delivery failure.
func (c *FrontendClient) Send(ctx context.Context, endpoint *callback.Endpoint, call *callback.APICall) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"call_id":   call.ID(),
		"call_type": call.CallType().String(),
		"payload":   call.Payload(),
		"sent_at":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal callback body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if endpoint.RequiresAuth() {
		req.Header.Set("X-Service-Token", c.serviceToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("callback request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(resp.Body, maxCallbackResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read callback response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return string(responseBody), nil
}
