package api

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
}
