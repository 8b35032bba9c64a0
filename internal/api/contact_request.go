package api

// swagger:model api.ContactRequest
type ContactRequest struct {
	Name    string `json:"name" validate:"required" example:"Jane Doe"`
	Email   string `json:"email" validate:"required,email" example:"jane@example.com"`
	Message string `json:"message" validate:"required" example:"Do you ship abroad?"`
}
