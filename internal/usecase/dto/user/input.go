package userdto

type CreateUserInput struct {
	Username           string
	Password           string
	Role               string
	IsActive           *bool
	MustChangePassword *bool
}

// UpdateUserInput changes only the fields that are set.
type UpdateUserInput struct {
	Username           *string
	Password           *string
	Role               *string
	IsActive           *bool
	MustChangePassword *bool
}
