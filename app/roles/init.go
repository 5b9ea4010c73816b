package roles

import (
	"github.com/gin-gonic/gin"

	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/internal/deps"
	"github.com/metrorail/docudesk/models"
)

const (
	RoleRepoKey = "role_repository"
)

// MountAuthenticated mounts role routes behind authentication. Each route is
// additionally guarded by the matching role permission flag.
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	rolesGroup := r.Group("/roles")
	rolesGroup.GET("", api.Can(models.PermRolesRead), handler.ListRoles)
	rolesGroup.GET("/:id", api.Can(models.PermRolesRead), handler.GetRole)
	rolesGroup.POST("", api.Can(models.PermRolesCreate), handler.CreateRole)
	rolesGroup.POST("/reorder", api.Can(models.PermRolesUpdate), handler.ReorderRoles)
	rolesGroup.PUT("/:id", api.Can(models.PermRolesUpdate), handler.UpdateRole)
	rolesGroup.DELETE("/:id", api.Can(models.PermRolesDelete), handler.DeleteRole)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(RoleRepoKey, repo)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(RoleRepoKey).(Repository)
	service := NewService(repo, container.Logger)
	return NewHandler(service, container.Sanitizer)
}
