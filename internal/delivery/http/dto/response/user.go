package response

import (
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

type UserResponse struct {
	ID                 uint      `json:"id"`
	Username           string    `json:"username"`
	Role               string    `json:"role"`
	IsActive           bool      `json:"isActive"`
	MustChangePassword bool      `json:"mustChangePassword"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Role:               string(u.Role),
		IsActive:           u.IsActive,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func FromUsers(users []*domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}

type PagePermissionResponse struct {
	PageID  string `json:"pageId"`
	CanView bool   `json:"canView"`
	CanEdit bool   `json:"canEdit"`
}

type AccessResponse struct {
	LocationIDs []uint                   `json:"locationIds"`
	Permissions []PagePermissionResponse `json:"permissions"`
	Statuses    []string                 `json:"statuses"`
}

func FromGrants(g *domain.AccessGrants) AccessResponse {
	resp := AccessResponse{
		LocationIDs: append([]uint{}, g.LocationIDs...),
		Permissions: make([]PagePermissionResponse, len(g.Permissions)),
		Statuses:    make([]string, len(g.Statuses)),
	}
	for i, p := range g.Permissions {
		resp.Permissions[i] = PagePermissionResponse{PageID: p.PageID, CanView: p.CanView, CanEdit: p.CanEdit}
	}
	for i, s := range g.Statuses {
		resp.Statuses[i] = string(s)
	}
	return resp
}
