package dto

import "github.com/SscSPs/book_catalog_api/internal/core/domain"

// UserResponse is the public view of a user.
type UserResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	DisplayName    string          `json:"displayName"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	Role           domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:          user.GetUserID(),
		Email:       user.GetEmail(),
		DisplayName: user.GetDisplayName(),
		Role:        user.Role,
	}
	if user.ProfilePicture != nil {
		resp.ProfilePicture = *user.ProfilePicture
	}
	return resp
}
