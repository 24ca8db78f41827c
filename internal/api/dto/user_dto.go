package dto

import (
	"time"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// IssueTokenRequest is the identity payload presented for token issuance.
// The upstream identity step that authenticated it is outside this service.
type IssueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse carries an issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateUserRequest payload for first-sign-in registration.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// SetRoleRequest payload for an admin role assignment.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse is the directory record shape returned to callers.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	PhotoURL  string      `json:"photo_url,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		PhotoURL:  user.PhotoURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
