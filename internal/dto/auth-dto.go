package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MeResponse struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	FullName *string  `json:"full_name,omitempty"`
	Roles    []string `json:"roles"`
}
