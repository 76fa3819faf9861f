package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncNotifier_Send(t *testing.T) {
	var got SyncCallbackPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewSyncNotifier(time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.Send(context.Background(), srv.URL, SyncCallbackPayload{RunID: "run-1", Imported: 4, Skipped: 1})
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 4, got.Imported)
}

func TestSyncNotifier_SendRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewSyncNotifier(time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.Send(context.Background(), srv.URL, SyncCallbackPayload{RunID: "run-1"})
	assert.ErrorContains(t, err, "502")
}
