package request

type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type DeleteLocationsRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

type BulkDeleteOrdersRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}
