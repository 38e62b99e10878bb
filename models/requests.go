package models

// AuthRequest is the body of the register and login endpoints.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of the forgot-password endpoint.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest carries the reset token taken from the URL path and
// the new plaintext password taken from the body.
//
// encoding/json matches keys case-insensitively, so the dashboard's legacy
// "newpassword" key is accepted as well.
type ResetPasswordRequest struct {
	Token       string `json:"-"`
	NewPassword string `json:"newPassword"`
}
