package auth

import "github.com/campuscard/mealcard-api/internal/domain/user"

// LoginRequest identifies a user within a role. Staff sign in by email,
// students by name; one of the two must be set.
type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Name     string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Role     string `json:"role" validate:"required,role"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the signed-in user.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	User        user.User `json:"user"`
}
