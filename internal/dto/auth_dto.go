package dto

// CreateUserRequest is the registration payload for POST /auth/.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
}

// LoginRequest is submitted form-encoded to POST /auth/token.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
