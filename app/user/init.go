package user

import (
	"github.com/gin-gonic/gin"

	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/internal/deps"
	"github.com/metrorail/docudesk/models"
)

const (
	UserRepoKey    = "user_repository"
	AuthServiceKey = "auth_service"
)

// MountAuthenticated mounts user routes behind authentication
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	usersGroup := r.Group("/users")
	usersGroup.GET("/me", handler.Me)
	usersGroup.GET("/by-email", api.Can(models.PermUsersView), handler.GetByEmail)
	usersGroup.GET("", api.Can(models.PermUsersView), handler.SearchUsers)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(UserRepoKey, repo)
	container.RegisterService(AuthServiceKey, NewAuthService(repo, container.Cache))
}

// GetAuthService returns the shared auth service registered by InitRepositories
func GetAuthService(container *deps.Container) AuthService {
	return container.GetService(AuthServiceKey).(AuthService)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(UserRepoKey).(Repository)
	service := NewService(repo)
	return NewHandler(service, container.Sanitizer)
}
