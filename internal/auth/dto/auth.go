package dto

// LoginRequest carries the OAuth2 password-grant form fields. The identifier
// may be either an email address or a username.
type LoginRequest struct {
	Identifier string `form:"username" binding:"required"`
	Password   string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
