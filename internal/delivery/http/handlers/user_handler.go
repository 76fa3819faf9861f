package handlers

import (
	"net/http"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/request"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	userdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/user"
)

type UserHandler struct {
	users     usecase.UserUsecase
	access    usecase.AccessUsecase
	validator *requestValidator
}

func NewUserHandler(users usecase.UserUsecase, access usecase.AccessUsecase) *UserHandler {
	return &UserHandler{users: users, access: access, validator: newRequestValidator()}
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	user, err := h.users.Create(r.Context(), &userdto.CreateUserInput{
		Username:           req.Username,
		Password:           req.Password,
		Role:               req.Role,
		IsActive:           req.IsActive,
		MustChangePassword: req.MustChangePassword,
	})
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	var req request.UpdateUserRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	user, err := h.users.Update(r.Context(), id, &userdto.UpdateUserInput{
		Username:           req.Username,
		Password:           req.Password,
		Role:               req.Role,
		IsActive:           req.IsActive,
		MustChangePassword: req.MustChangePassword,
	})
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	if err := h.users.Delete(r.Context(), currentUser(r), id); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) handleGetAccess(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	grants, err := h.access.GetGrants(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromGrants(grants))
}

func (h *UserHandler) handleReplaceLocations(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	var req request.ReplaceLocationsRequest
	if !h.validator.decode(w, r, &req) {
		return
	}
	if err := h.access.ReplaceLocations(r.Context(), id, req.LocationIDs); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) handleReplacePermissions(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	var req request.ReplacePermissionsRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	permissions := make([]domain.PagePermission, len(req.Permissions))
	for i, p := range req.Permissions {
		permissions[i] = domain.PagePermission{PageID: p.PageID, CanView: p.CanView, CanEdit: p.CanEdit}
	}
	if err := h.access.ReplacePermissions(r.Context(), id, permissions); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) handleReplaceStatuses(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	var req request.ReplaceStatusesRequest
	if !h.validator.decode(w, r, &req) {
		return
	}
	if err := h.access.ReplaceStatuses(r.Context(), id, req.Statuses); err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
