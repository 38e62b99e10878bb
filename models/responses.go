package models

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body of acknowledgments and of every error reply.
type MessageResponse struct {
	Message string `json:"message"`
}
