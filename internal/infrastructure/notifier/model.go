package notifier

import "time"

type SyncCallbackPayload struct {
	RunID        string    `json:"run_id"`
	ConnectionID string    `json:"connection_id"`
	StoreName    string    `json:"store_name"`
	State        string    `json:"state"`
	Imported     int       `json:"imported"`
	Skipped      int       `json:"skipped"`
	Error        string    `json:"error,omitempty"`
	FinishedAt   time.Time `json:"finished_at"`
}
