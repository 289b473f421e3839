package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// WebhookNotifier posts reports as JSON to an HTTP endpoint.
type WebhookNotifier struct {
	URL        string
	Client     *http.Client
	MaxRetries int
	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration
	log     *zap.SugaredLogger
}

type webhookPayload struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// NewWebhookNotifier creates a notifier retrying failed posts up to maxRetries times.
func NewWebhookNotifier(url string, maxRetries int, log *zap.SugaredLogger) *WebhookNotifier {
	return &WebhookNotifier{
		URL:        url,
		Client:     &http.Client{Timeout: 30 * time.Second},
		MaxRetries: maxRetries,
		Backoff:    time.Second,
		log:        log,
	}
}

// Send posts a single report.
func (w *WebhookNotifier) Send(ctx context.Context, subject, text string) error {
	body, err := json.Marshal(webhookPayload{Subject: subject, Text: text})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Notify sends with exponential backoff retry.
func (w *WebhookNotifier) Notify(ctx context.Context, subject, text string) error {
	var lastErr error
	for i := 0; i <= w.MaxRetries; i++ {
		lastErr = w.Send(ctx, subject, text)
		if lastErr == nil {
			return nil
		}
		if i == w.MaxRetries {
			break
		}
		backoff := w.Backoff * time.Duration(1<<uint(i))
		w.log.Warnw("webhook send failed, retrying",
			"attempt", i+1, "of", w.MaxRetries+1, "backoff", backoff, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("all %d attempts failed: %w", w.MaxRetries+1, lastErr)
}
