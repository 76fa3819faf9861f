package handlers

import (
	"net/http"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/request"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
)

type LocationHandler struct {
	locations usecase.LocationUsecase
	validator *requestValidator
}

func NewLocationHandler(locations usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{locations: locations, validator: newRequestValidator()}
}

func (h *LocationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locations.ListForUser(r.Context(), currentUser(r))
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	out := make([]response.LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = response.LocationResponse{
			ID:         l.ID,
			Name:       l.Name,
			IsActive:   l.IsActive,
			OrderCount: l.OrderCount,
			CreatedAt:  l.CreatedAt,
		}
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *LocationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLocationRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	location, err := h.locations.Create(r.Context(), req.Name)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, response.LocationResponse{
		ID:        location.ID,
		Name:      location.Name,
		IsActive:  location.IsActive,
		CreatedAt: location.CreatedAt,
	})
}

func (h *LocationHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteLocationsRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	if err := h.locations.Delete(r.Context(), req.IDs); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
