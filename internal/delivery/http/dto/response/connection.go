package response

import (
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

// ConnectionResponse never carries the consumer secret.
type ConnectionResponse struct {
	ID                  string     `json:"id"`
	Platform            string     `json:"platform"`
	Name                string     `json:"name"`
	StoreURL            string     `json:"storeUrl"`
	ConsumerKey         string     `json:"consumerKey"`
	IsActive            bool       `json:"isActive"`
	AutoSync            bool       `json:"autoSync"`
	SyncIntervalMinutes int        `json:"syncIntervalMinutes"`
	NotifyURL           string     `json:"notifyUrl,omitempty"`
	LastSyncAt          *time.Time `json:"lastSyncAt"`
	LastOrderCount      int        `json:"lastOrderCount"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func FromConnection(c *domain.StoreConnection) ConnectionResponse {
	return ConnectionResponse{
		ID:                  c.ID,
		Platform:            c.Platform,
		Name:                c.Name,
		StoreURL:            c.StoreURL,
		ConsumerKey:         c.ConsumerKey,
		IsActive:            c.IsActive,
		AutoSync:            c.AutoSync,
		SyncIntervalMinutes: c.SyncIntervalMinutes,
		NotifyURL:           c.NotifyURL,
		LastSyncAt:          c.LastSyncAt,
		LastOrderCount:      c.LastOrderCount,
		CreatedAt:           c.CreatedAt,
	}
}

type SyncRunResponse struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Imported   int       `json:"imported"`
	Skipped    int       `json:"skipped"`
	Pages      int       `json:"pages"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

func FromSyncRuns(runs []*domain.SyncRun) []SyncRunResponse {
	out := make([]SyncRunResponse, len(runs))
	for i, r := range runs {
		out[i] = SyncRunResponse{
			ID:         r.ID,
			State:      string(r.State),
			Imported:   r.Imported,
			Skipped:    r.Skipped,
			Pages:      r.Pages,
			Error:      r.Error,
			StartedAt:  r.StartedAt,
			FinishedAt: r.FinishedAt,
		}
	}
	return out
}

type ImportFailureResponse struct {
	OrderID   string    `json:"orderId"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromFailures(failures []*domain.ImportFailure) []ImportFailureResponse {
	out := make([]ImportFailureResponse, len(failures))
	for i, f := range failures {
		out[i] = ImportFailureResponse{OrderID: f.ExternalID, Reason: f.Reason, CreatedAt: f.CreatedAt}
	}
	return out
}

// SyncRunResult is returned by a manual sync. Error is set when a page fetch
// aborted the run; the counts are still the ones gathered before it.
type SyncRunResult struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}
