package user

import (
	"github.com/google/uuid"

	"github.com/metrorail/docudesk/models"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// SearchUsersRequest filters the user search used by the role member picker.
// Exclusions let the client hide users already assigned.
type SearchUsersRequest struct {
	Query         string   `form:"query"`
	Limit         int      `form:"limit" binding:"omitempty,gte=1,lte=50"`
	ExcludeIDs    []string `form:"exclude_ids"`
	ExcludeEmails []string `form:"exclude_emails"`
}

// UserResponse represents the response for user data
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
}

// ToUserResponse converts a models.User to UserResponse. Permission names are
// included only when the user's roles have been loaded.
func ToUserResponse(u *models.User) *UserResponse {
	res := &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Image: u.Image,
	}

	if len(u.Roles) > 0 {
		res.Permissions = u.EffectivePermissions().Names()
	}

	return res
}

// ToUserResponseList converts a slice of models.User to UserResponse
func ToUserResponseList(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *ToUserResponse(&users[i])
	}
	return responses
}
