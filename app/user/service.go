package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/internal/validator"
	"github.com/metrorail/docudesk/models"
)

type service struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validator.IsEmail(email) {
		return nil, models.ErrInvalidEmail
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) SearchUsers(ctx context.Context, req *SearchUsersRequest) ([]models.User, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	excludeIDs := make([]uuid.UUID, 0, len(req.ExcludeIDs))
	for _, raw := range req.ExcludeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, models.ErrInvalidUUID
		}
		excludeIDs = append(excludeIDs, id)
	}

	prefix := strings.ToLower(strings.TrimSpace(req.Query))

	return s.repo.Search(ctx, prefix, limit, excludeIDs, req.ExcludeEmails)
}
