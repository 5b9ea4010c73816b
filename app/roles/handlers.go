package roles

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/internal/sanitizer"
	"github.com/metrorail/docudesk/models"
)

// Handler handles HTTP requests for roles
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new role handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: sanitizer,
	}
}

// ListRoles godoc
// @Summary List all roles
// @Description Get all roles ordered by their position
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]RoleResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/roles [get]
func (h *Handler) ListRoles(c *gin.Context) {
	list, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch roles")
		return
	}

	api.ListResponse(c, "Roles retrieved successfully", ToRoleResponseList(list), len(list))
}

// GetRole godoc
// @Summary Get role by ID
// @Description Get a single role with its assigned users
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Success 200 {object} api.Response{data=RoleResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/roles/{id} [get]
func (h *Handler) GetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid role ID format")
		return
	}

	role, err := h.service.GetRole(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Role")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch role")
		return
	}

	api.SuccessResponse(c, 200, "Role retrieved successfully", ToRoleResponse(role))
}

// CreateRole godoc
// @Summary Create a new role
// @Description Create a role appended at the end of the ordering
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoleRequest true "Role creation request"
// @Success 201 {object} api.Response{data=RoleResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/roles [post]
func (h *Handler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	req.Name = h.sanitizer.StripHTML(req.Name)

	role, err := h.service.CreateRole(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRoleName) ||
			errors.Is(err, models.ErrRoleNameTooLong) ||
			errors.Is(err, models.ErrInvalidPermissions) ||
			errors.Is(err, models.ErrDuplicateUserIDs) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "User")
			return
		}
		api.InternalErrorResponse(c, "Failed to create role")
		return
	}

	api.CreatedResponse(c, "Role created successfully", ToRoleResponse(role))
}

// UpdateRole godoc
// @Summary Update a role
// @Description Update a role's name, permissions, or user assignments
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Param request body UpdateRoleRequest true "Role update request"
// @Success 200 {object} api.Response{data=RoleResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/roles/{id} [put]
func (h *Handler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid role ID format")
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if req.Name != nil {
		clean := h.sanitizer.StripHTML(*req.Name)
		req.Name = &clean
	}

	role, err := h.service.UpdateRole(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Role")
			return
		}
		if errors.Is(err, models.ErrInvalidRoleName) ||
			errors.Is(err, models.ErrRoleNameTooLong) ||
			errors.Is(err, models.ErrInvalidPermissions) ||
			errors.Is(err, models.ErrDuplicateUserIDs) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to update role")
		return
	}

	api.UpdatedResponse(c, "Role updated successfully", ToRoleResponse(role))
}

// DeleteRole godoc
// @Summary Delete a role
// @Description Delete a role; roles below it shift up one position
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Success 200 {object} api.Response{data=RoleResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/roles/{id} [delete]
func (h *Handler) DeleteRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid role ID format")
		return
	}

	role, err := h.service.DeleteRole(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Role")
			return
		}
		api.InternalErrorResponse(c, "Failed to delete role")
		return
	}

	api.DeletedResponse(c, "Role deleted successfully", ToRoleResponse(role))
}

// ReorderRoles godoc
// @Summary Reorder roles
// @Description Rewrite the full role ordering. The request carries the ordering
// @Description the client last saw; when that no longer matches the database the
// @Description reorder is rejected with a conflict and nothing changes.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReorderRolesRequest true "Role reorder request"
// @Success 200 {object} api.Response{data=[]RoleResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/roles/reorder [post]
func (h *Handler) ReorderRoles(c *gin.Context) {
	var req ReorderRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	list, err := h.service.ReorderRoles(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrRoleOrderConflict) {
			api.ConflictResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to reorder roles")
		return
	}

	api.SuccessResponse(c, 200, "Roles reordered successfully", ToRoleResponseList(list))
}
