package roles

import (
	"time"

	"github.com/google/uuid"
	"github.com/metrorail/docudesk/models"
)

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	Name        string             `json:"name" binding:"required,max=50"`
	Permissions models.Permissions `json:"permissions" binding:"omitempty,gte=0"`
	UserIDs     []uuid.UUID        `json:"user_ids,omitempty"`
}

// UpdateRoleRequest represents the request to update a role. A nil UserIDs
// leaves the association untouched; a non-nil value replaces the full set.
type UpdateRoleRequest struct {
	Name        *string             `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Permissions *models.Permissions `json:"permissions,omitempty" binding:"omitempty,gte=0"`
	UserIDs     *[]uuid.UUID        `json:"user_ids,omitempty"`
}

// RoleStateItem is one entry of a client-observed role ordering.
type RoleStateItem struct {
	RoleID uuid.UUID `json:"role_id" binding:"required"`
	Name   string    `json:"name"`
}

// ReorderRolesRequest carries the full before/after ordering from the client.
// InitialState is what the client believes is persisted; UpdatedState is the
// order after its local drag-and-drop.
type ReorderRolesRequest struct {
	InitialState []RoleStateItem `json:"initial_state" binding:"required,dive"`
	UpdatedState []RoleStateItem `json:"updated_state" binding:"required,dive"`
}

// RoleUserResponse is the trimmed user view embedded in role payloads
type RoleUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// RoleResponse represents the response for role data
type RoleResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Permissions     models.Permissions `json:"permissions"`
	PermissionNames []string           `json:"permission_names"`
	Position        int                `json:"position"`
	Users           []RoleUserResponse `json:"users,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ToRoleResponse converts a models.Role to RoleResponse
func ToRoleResponse(role *models.Role) *RoleResponse {
	res := &RoleResponse{
		ID:              role.ID,
		Name:            role.Name,
		Permissions:     role.Permissions,
		PermissionNames: role.PermissionNames(),
		Position:        role.Position,
		CreatedAt:       role.CreatedAt,
		UpdatedAt:       role.UpdatedAt,
	}

	if len(role.Users) > 0 {
		res.Users = make([]RoleUserResponse, len(role.Users))
		for i := range role.Users {
			res.Users[i] = RoleUserResponse{
				ID:    role.Users[i].ID,
				Email: role.Users[i].Email,
			}
		}
	}

	return res
}

// ToRoleResponseList converts a slice of models.Role to RoleResponse
func ToRoleResponseList(roles []models.Role) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *ToRoleResponse(&roles[i])
	}
	return responses
}
