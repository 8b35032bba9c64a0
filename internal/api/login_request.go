package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
