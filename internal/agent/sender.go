package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fleetwatch/fleetwatch/models"
)

// Sender posts host reports to the collector server.
type Sender struct {
	reportURL string
	client    *http.Client
}

// NewSender creates a sender for the collector at serverURL. Each push is
// bounded by timeout.
func NewSender(serverURL string, timeout time.Duration) *Sender {
	return &Sender{
		reportURL: strings.TrimRight(serverURL, "/") + "/hosts",
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts a single report. A non-2xx status is an error carrying the
// server's response body, which includes field-level validation details on
// rejection.
func (s *Sender) Send(ctx context.Context, report *models.HostReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.reportURL, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("collector rejected report (%d): %s", resp.StatusCode, string(body))
	}

	return nil
}
