package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// SyncNotifier posts run summaries to a connection's notify URL.
type SyncNotifier struct {
	client *http.Client
	logger *slog.Logger
}

func NewSyncNotifier(timeout time.Duration, logger *slog.Logger) *SyncNotifier {
	return &SyncNotifier{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Send delivers the payload once and reports a non-2xx answer as an error.
func (n *SyncNotifier) Send(ctx context.Context, callbackURL string, payload SyncCallbackPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal callback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("callback failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}

// SendAsync is best effort: failures are only logged.
func (n *SyncNotifier) SendAsync(callbackURL string, payload SyncCallbackPayload) {
	go func() {
		if err := n.Send(context.Background(), callbackURL, payload); err != nil {
			n.logger.Warn("sync callback not delivered", "url", callbackURL, "run_id", payload.RunID, "error", err)
			return
		}
		n.logger.Debug("sync callback sent", "url", callbackURL, "run_id", payload.RunID)
	}()
}
