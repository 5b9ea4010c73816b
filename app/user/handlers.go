package user

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/metrorail/docudesk/app/api"
	"github.com/metrorail/docudesk/internal/sanitizer"
	"github.com/metrorail/docudesk/models"
)

// Handler handles HTTP requests for users
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new user handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: sanitizer,
	}
}

// Me godoc
// @Summary Current user
// @Description Get the authenticated user with their effective permissions
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=UserResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/me [get]
func (h *Handler) Me(c *gin.Context) {
	u := ContextGetUser(c)
	api.SuccessResponse(c, 200, "User retrieved successfully", ToUserResponse(u))
}

// GetByEmail godoc
// @Summary Get user by email
// @Description Look up a user by exact email match
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email address"
// @Success 200 {object} api.Response{data=UserResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/by-email [get]
func (h *Handler) GetByEmail(c *gin.Context) {
	email := h.sanitizer.StripHTML(c.Query("email"))

	u, err := h.service.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrInvalidEmail) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "User")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch user")
		return
	}

	api.SuccessResponse(c, 200, "User retrieved successfully", ToUserResponse(u))
}

// SearchUsers godoc
// @Summary Search users
// @Description Search users by email prefix, excluding already-assigned ids or emails
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query query string false "Email prefix"
// @Param limit query int false "Max results (default 10, max 50)"
// @Param exclude_ids query []string false "User IDs to exclude"
// @Param exclude_emails query []string false "Emails to exclude"
// @Success 200 {object} api.Response{data=[]UserResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	var req SearchUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	req.Query = h.sanitizer.StripHTML(req.Query)

	users, err := h.service.SearchUsers(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidUUID) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to search users")
		return
	}

	api.ListResponse(c, "Users retrieved successfully", ToUserResponseList(users), len(users))
}
