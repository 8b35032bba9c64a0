package api

// swagger:model api.UploadResponse
type UploadResponse struct {
	ImageURL string `json:"imageUrl" example:"/uploads/9b3f2a1c0d4e5f6a7b8c9d0e1f2a3b4c.png"`
}
