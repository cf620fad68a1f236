package dto

import "github.com/google/uuid"

// RegistrationRequest is the body of POST /api/registration/.
// Fields are validated in the service layer so that errors come back
// keyed by field name.
type RegistrationRequest struct {
	Fullname         string `json:"fullname"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
}

// LoginRequest is the body of POST /api/login/
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by registration and login
type AuthResponse struct {
	Token    string    `json:"token"`
	Fullname string    `json:"fullname"`
	Email    string    `json:"email"`
	UserID   uuid.UUID `json:"user_id"`
}

// UserResponse is the public view of a user: id, email, and a display
// name falling back to the login identity.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Fullname string    `json:"fullname"`
}
