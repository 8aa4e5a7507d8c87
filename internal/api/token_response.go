package api

// swagger:model api.TokenResponse
type TokenResponse struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in" example:"86400"`
}
