package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/request"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	connectiondto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/connection"
)

const defaultRunsLimit = 20

// SyncRunner is the part of the sync engine the HTTP layer drives.
type SyncRunner interface {
	Run(ctx context.Context, connectionID string) (domain.SyncResult, error)
	Status(ctx context.Context, platform string) (*domain.SyncStatus, error)
}

type ConnectionHandler struct {
	connections usecase.StoreConnectionUsecase
	sync        SyncRunner
	validator   *requestValidator
}

func NewConnectionHandler(connections usecase.StoreConnectionUsecase, sync SyncRunner) *ConnectionHandler {
	return &ConnectionHandler{connections: connections, sync: sync, validator: newRequestValidator()}
}

func toConnectionInput(req *request.ConnectionRequest) *connectiondto.ConnectionInput {
	return &connectiondto.ConnectionInput{
		Platform:            req.Platform,
		Name:                req.Name,
		StoreURL:            req.StoreURL,
		ConsumerKey:         req.ConsumerKey,
		ConsumerSecret:      req.ConsumerSecret,
		IsActive:            req.IsActive,
		AutoSync:            req.AutoSync,
		SyncIntervalMinutes: req.SyncIntervalMinutes,
		NotifyURL:           req.NotifyURL,
	}
}

func (h *ConnectionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	conns, err := h.connections.List(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	out := make([]response.ConnectionResponse, len(conns))
	for i, c := range conns {
		out[i] = response.FromConnection(c)
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *ConnectionHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	conn, err := h.connections.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromConnection(conn))
}

func (h *ConnectionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req request.ConnectionRequest
	if !h.validator.decode(w, r, &req) {
		return
	}
	conn, err := h.connections.Create(r.Context(), toConnectionInput(&req))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, response.FromConnection(conn))
}

func (h *ConnectionHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req request.ConnectionRequest
	if !h.validator.decode(w, r, &req) {
		return
	}
	conn, err := h.connections.Update(r.Context(), chi.URLParam(r, "id"), toConnectionInput(&req))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromConnection(conn))
}

func (h *ConnectionHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.connections.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSync runs a sync in the request. When a page fetch aborts the run
// the partial counts are returned with the upstream error. A run is not
// cancelled when the client goes away.
func (h *ConnectionHandler) handleSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.sync.Run(context.WithoutCancel(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		code := mapErrorToStatusCode(err)
		if code != http.StatusBadGateway {
			respondWithDomainError(w, r, err)
			return
		}
		respondWithJSON(w, code, response.SyncRunResult{
			Imported: result.Imported,
			Skipped:  result.Skipped,
			Error:    err.Error(),
		})
		return
	}
	respondWithJSON(w, http.StatusOK, response.SyncRunResult{Imported: result.Imported, Skipped: result.Skipped})
}

func (h *ConnectionHandler) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	runs, err := h.connections.Runs(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromSyncRuns(runs))
}

func (h *ConnectionHandler) handleFailures(w http.ResponseWriter, r *http.Request) {
	failures, err := h.connections.Failures(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromFailures(failures))
}

func (h *ConnectionHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.sync.Status(r.Context(), chi.URLParam(r, "platform"))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}
