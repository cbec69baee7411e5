package dto

// RegisterRequest is posted as a form or JSON.
type RegisterRequest struct {
	FirstName   string `json:"first_name"   form:"first_name"`
	LastName    string `json:"last_name"    form:"last_name"`
	Email       string `json:"email"        form:"email"`
	Password    string `json:"password"     form:"password"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
}

// LoginRequest follows the OAuth2 password form: username carries the email.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" form:"id_token"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" form:"new_password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password"     form:"new_password"`
}
