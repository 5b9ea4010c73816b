package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/metrorail/docudesk/models"
)

// Repository defines the interface for user data access
type Repository interface {
	// GetByID returns the user with roles preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Search returns up to limit users whose email starts with prefix,
	// skipping the excluded ids and emails, ordered by email.
	Search(ctx context.Context, prefix string, limit int, excludeIDs []uuid.UUID, excludeEmails []string) ([]models.User, error)
}

// Service defines the interface for user business logic
type Service interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SearchUsers(ctx context.Context, req *SearchUsersRequest) ([]models.User, error)
}
