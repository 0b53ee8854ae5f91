package dtos

// TokenRequest is the identity payload for POST /jwt.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}
