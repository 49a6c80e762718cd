package dto

import (
	"time"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// RegisterRequest defines the payload for creating a new account.
// B2B registrations carry a company name and start in the pending state.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	IsB2B       bool   `json:"isB2B"`
	CompanyName string `json:"companyName" binding:"required_if=IsB2B true"`
}

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the data returned for an account.
type UserResponse struct {
	UserID        string    `json:"userID"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	B2BStatus     string    `json:"b2bStatus"`
	CompanyName   string    `json:"companyName,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          string(u.Role),
		B2BStatus:     string(u.B2BStatus),
		CompanyName:   u.CompanyName,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
