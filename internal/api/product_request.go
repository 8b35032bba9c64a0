package api

// swagger:model api.ProductRequest
type ProductRequest struct {
	Name        string  `json:"name" validate:"required" example:"Desk lamp"`
	Description string  `json:"description" validate:"required" example:"Adjustable LED desk lamp"`
	Category    string  `json:"category" validate:"required" example:"lighting"`
	ImageURL    string  `json:"imageUrl" validate:"required" example:"/uploads/3f2a9b.png"`
	Price       float64 `json:"price" validate:"required,gt=0" example:"19.90"`
}
