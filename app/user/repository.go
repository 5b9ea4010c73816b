package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Search(ctx context.Context, prefix string, limit int, excludeIDs []uuid.UUID, excludeEmails []string) ([]models.User, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})

	if prefix != "" {
		q = q.Where("email ILIKE ?", prefix+"%")
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if len(excludeEmails) > 0 {
		q = q.Where("email NOT IN ?", excludeEmails)
	}

	var users []models.User
	err := q.Order("email ASC").Limit(limit).Find(&users).Error
	return users, err
}
