package roles

import (
	"context"

	"github.com/google/uuid"
	"github.com/metrorail/docudesk/models"
)

// Repository defines the interface for role data access
type Repository interface {
	// GetAll returns every role ordered by ascending position.
	GetAll(ctx context.Context) ([]models.Role, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error)
	GetMaxPosition(ctx context.Context) (int, error)
	// CreateWithUsers inserts the role and attaches users atomically.
	CreateWithUsers(ctx context.Context, role *models.Role, users []models.User) error
	Update(ctx context.Context, role *models.Role) error
	ReplaceUsers(ctx context.Context, role *models.Role, users []models.User) error
	// DeleteAndShift removes the role and closes the position gap it leaves,
	// in one transaction. The gap position is resolved inside the transaction.
	DeleteAndShift(ctx context.Context, id uuid.UUID) error
	// UpdatePositions assigns position i+1 to orderedIDs[i] for all roles, in
	// one transaction. A partial failure leaves every position unchanged.
	UpdatePositions(ctx context.Context, orderedIDs []uuid.UUID) error
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

// Service defines the interface for role business logic
type Service interface {
	ListRoles(ctx context.Context) ([]models.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*models.Role, error)
	CreateRole(ctx context.Context, req *CreateRoleRequest) (*models.Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, req *UpdateRoleRequest) (*models.Role, error)
	// DeleteRole removes the role and returns its state prior to deletion.
	DeleteRole(ctx context.Context, id uuid.UUID) (*models.Role, error)
	// ReorderRoles applies the requested ordering and returns the fresh list,
	// or ErrRoleOrderConflict when the initial state is stale.
	ReorderRoles(ctx context.Context, req *ReorderRolesRequest) ([]models.Role, error)
}
