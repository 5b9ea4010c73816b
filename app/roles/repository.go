package roles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/metrorail/docudesk/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new role repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetAll returns all roles ordered by position
func (r *repository) GetAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Order("position ASC").Find(&roles).Error
	return roles, err
}

// GetByID returns a role by ID with its associated users
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Preload("Users").Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetMaxPosition returns the highest position in use, or 0 when no roles exist
func (r *repository) GetMaxPosition(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&models.Role{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

// CreateWithUsers inserts a new role and attaches its users in one
// transaction, so a role never lands without the members it was created with.
func (r *repository) CreateWithUsers(ctx context.Context, role *models.Role, users []models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(role).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Model(role).Association("Users").Replace(&users)
	})
}

// Update saves role fields without touching associations or position
func (r *repository) Update(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(role).Error
}

// ReplaceUsers swaps the full user association set of a role
func (r *repository) ReplaceUsers(ctx context.Context, role *models.Role, users []models.User) error {
	return r.db.WithContext(ctx).Model(role).Association("Users").Replace(&users)
}

// DeleteAndShift deletes a role and decrements the position of every role
// that sat below it, so positions stay contiguous. The shift pivot comes from
// the DELETE's RETURNING clause, not a position read before the transaction,
// so a reorder committing concurrently cannot make the decrement target the
// wrong rows. Join rows are removed by the role_users FK cascade.
func (r *repository) DeleteAndShift(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deleted models.Role
		res := tx.Clauses(clause.Returning{Columns: []clause.Column{{Name: "position"}}}).
			Where("id = ?", id).
			Delete(&deleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&models.Role{}).
			Where("position > ?", deleted.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
}

// UpdatePositions rewrites every role's position from its index in orderedIDs.
// All updates run in one transaction; any failure rolls the whole set back.
func (r *repository) UpdatePositions(ctx context.Context, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			res := tx.Model(&models.Role{}).
				Where("id = ?", id).
				UpdateColumn("position", i+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// GetUsersByIDs returns the users matching ids; missing ids simply yield a
// shorter slice, which callers treat as a lookup failure.
func (r *repository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
