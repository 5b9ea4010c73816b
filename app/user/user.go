package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/internal/cache"
	"github.com/metrorail/docudesk/internal/security"
	"github.com/metrorail/docudesk/models"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	ContextUser   = "context_user"
	ContextUserID = "userID"

	sessionCacheTTL = 5 * time.Minute
)

// ContextSetUser sets the user in the context
func ContextSetUser(c *gin.Context, u *models.User) *gin.Context {
	c.Set(ContextUser, u)
	return c
}

// ContextGetUser gets the user from the context
func ContextGetUser(c *gin.Context) *models.User {
	u, ok := c.Get(ContextUser)
	if !ok {
		panic("missing user value in context")
	}
	return u.(*models.User)
}

// AuthService resolves the session user and their combined permissions.
type AuthService interface {
	GetSessionUser(ctx context.Context, userID uuid.UUID) (*models.User, models.Permissions, error)
}

type authService struct {
	repo  Repository
	cache cache.Cache[string]
}

func NewAuthService(repo Repository, cache cache.Cache[string]) AuthService {
	return &authService{repo: repo, cache: cache}
}

type cachedSession struct {
	User        *models.User       `json:"user"`
	Permissions models.Permissions `json:"permissions"`
}

// GetSessionUser loads the user and their effective permission bitfield,
// served from cache when possible. A stale cache entry at worst delays a
// permission change by sessionCacheTTL.
func (s *authService) GetSessionUser(ctx context.Context, userID uuid.UUID) (*models.User, models.Permissions, error) {
	cacheKey := fmt.Sprintf("user:%s:session", userID)

	if raw, err := s.cache.Get(ctx, cacheKey); err == nil && raw != "" {
		var session cachedSession
		if err := json.Unmarshal([]byte(raw), &session); err == nil && session.User != nil {
			return session.User, session.Permissions, nil
		}
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	permissions := u.EffectivePermissions()

	if raw, err := json.Marshal(cachedSession{User: u, Permissions: permissions}); err == nil {
		_ = s.cache.Set(ctx, cacheKey, string(raw), sessionCacheTTL)
	}

	return u, permissions, nil
}

// AuthMiddleware verifies the bearer token and stores the session user and
// their permission bitfield in the request context for api.Can.
func AuthMiddleware(tokenMaker security.Maker, authService AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}
		if payload.Scope != security.TokenScopeAccess {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		u, permissions, err := authService.GetSessionUser(c.Request.Context(), payload.UserID)
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, payload.UserID)
		c.Set(api.ContextPermissions, permissions)
		ContextSetUser(c, u)
		c.Next()
	}
}
