package api

// swagger:model api.CategoryRequest
type CategoryRequest struct {
	Name string `json:"name" validate:"required" example:"lighting"`
}
