package dto

import (
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
)

// RegisterRequest enrols a new user with a name and numeric-or-text access code.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	AccessCode string `json:"accessCode" binding:"required,min=4,max=72"`
}

// LoginRequest authenticates by name and access code.
type LoginRequest struct {
	Name       string `json:"name" binding:"required"`
	AccessCode string `json:"accessCode" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// UpdateAccessCodeRequest replaces a user's access code.
type UpdateAccessCodeRequest struct {
	AccessCode string `json:"accessCode" binding:"required,min=4,max=72"`
}

type UserResponse struct {
	UserID    int64     `json:"userID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
