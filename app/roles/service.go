package roles

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/internal/logger"
	"github.com/metrorail/docudesk/internal/validator"
	"github.com/metrorail/docudesk/models"
)

type service struct {
	repo Repository
	log  logger.Logger
}

// NewService creates a new role service
func NewService(repo Repository, log logger.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

// ListRoles returns all roles ordered by position
func (s *service) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.repo.GetAll(ctx)
}

// GetRole returns a single role with its users
func (s *service) GetRole(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return role, nil
}

// CreateRole creates a role at the end of the ordering
func (s *service) CreateRole(ctx context.Context, req *CreateRoleRequest) (*models.Role, error) {
	role := &models.Role{
		Name:        req.Name,
		Permissions: req.Permissions,
	}

	maxPos, err := s.repo.GetMaxPosition(ctx)
	if err != nil {
		return nil, err
	}
	role.Position = maxPos + 1

	if err := role.Validate(); err != nil {
		return nil, err
	}

	var users []models.User
	if len(req.UserIDs) > 0 {
		if !validator.NoDuplicates(req.UserIDs) {
			return nil, models.ErrDuplicateUserIDs
		}
		users, err = s.repo.GetUsersByIDs(ctx, req.UserIDs)
		if err != nil {
			return nil, err
		}
		if len(users) != len(req.UserIDs) {
			return nil, models.ErrRecordNotFound
		}
	}

	if err := s.repo.CreateWithUsers(ctx, role, users); err != nil {
		return nil, err
	}
	role.Users = users

	s.log.Info("role created", map[string]any{
		"role_id":  role.ID.String(),
		"position": role.Position,
	})

	return role, nil
}

// UpdateRole applies partial updates to a role. A nil UserIDs leaves the
// user association untouched; an empty slice clears it.
func (s *service) UpdateRole(ctx context.Context, id uuid.UUID, req *UpdateRoleRequest) (*models.Role, error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Permissions != nil {
		role.Permissions = *req.Permissions
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}

	if req.UserIDs != nil {
		users := []models.User{}
		if len(*req.UserIDs) > 0 {
			if !validator.NoDuplicates(*req.UserIDs) {
				return nil, models.ErrDuplicateUserIDs
			}
			users, err = s.repo.GetUsersByIDs(ctx, *req.UserIDs)
			if err != nil {
				return nil, err
			}
			if len(users) != len(*req.UserIDs) {
				return nil, models.ErrRecordNotFound
			}
		}
		if err := s.repo.ReplaceUsers(ctx, role, users); err != nil {
			return nil, err
		}
		role.Users = users
	}

	return role, nil
}

// DeleteRole removes a role and closes the position gap it leaves.
// The deleted role's prior state is returned to the caller.
func (s *service) DeleteRole(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteAndShift(ctx, role.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	s.log.Info("role deleted", map[string]any{
		"role_id":  role.ID.String(),
		"position": role.Position,
	})

	return role, nil
}

// ReorderRoles rewrites the role ordering. The caller sends the ordering it
// believes is current (initial state) and the ordering it wants (updated
// state). When the initial state no longer matches the database, nothing is
// written and ErrRoleOrderConflict is returned so the caller can refresh.
func (s *service) ReorderRoles(ctx context.Context, req *ReorderRolesRequest) ([]models.Role, error) {
	current, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(current) != len(req.InitialState) || len(current) != len(req.UpdatedState) {
		return nil, models.ErrRoleOrderConflict
	}

	for i, role := range current {
		if role.ID != req.InitialState[i].RoleID {
			s.log.Info("role reorder rejected, stale initial state", map[string]any{
				"position": i + 1,
				"expected": req.InitialState[i].RoleID.String(),
				"actual":   role.ID.String(),
			})
			return nil, models.ErrRoleOrderConflict
		}
	}

	orderedIDs := make([]uuid.UUID, len(req.UpdatedState))
	for i, item := range req.UpdatedState {
		orderedIDs[i] = item.RoleID
	}
	// A duplicate id cannot be a permutation of the current roles.
	if !validator.NoDuplicates(orderedIDs) {
		return nil, models.ErrRoleOrderConflict
	}

	if err := s.repo.UpdatePositions(ctx, orderedIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRoleOrderConflict
		}
		return nil, err
	}

	return s.repo.GetAll(ctx)
}
