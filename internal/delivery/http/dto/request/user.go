package request

type CreateUserRequest struct {
	Username           string `json:"username" validate:"required,max=100"`
	Password           string `json:"password" validate:"required,min=6"`
	Role               string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive           *bool  `json:"isActive"`
	MustChangePassword *bool  `json:"mustChangePassword"`
}

type UpdateUserRequest struct {
	Username           *string `json:"username" validate:"omitempty,min=1,max=100"`
	Password           *string `json:"password" validate:"omitempty,min=6"`
	Role               *string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive           *bool   `json:"isActive"`
	MustChangePassword *bool   `json:"mustChangePassword"`
}

type ReplaceLocationsRequest struct {
	LocationIDs []uint `json:"locationIds" validate:"required"`
}

type PagePermission struct {
	PageID  string `json:"pageId" validate:"required"`
	CanView bool   `json:"canView"`
	CanEdit bool   `json:"canEdit"`
}

type ReplacePermissionsRequest struct {
	Permissions []PagePermission `json:"permissions" validate:"required,dive"`
}

type ReplaceStatusesRequest struct {
	Statuses []string `json:"statuses" validate:"required,dive,required"`
}
