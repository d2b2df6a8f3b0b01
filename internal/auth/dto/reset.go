package dto

type PasswordResetRequestInput struct {
	Email     string `json:"email"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type ValidateResetTokenInput struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type ResetPasswordInput struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
	IPAddress   string `json:"-"`
	UserAgent   string `json:"-"`
}
