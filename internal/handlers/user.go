package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-service/internal/middleware"
	"github.com/taskhub/todo-service/internal/service"
)

// UserHandler handles requests for the caller's own account.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ChangePasswordRequest represents the password change payload.
type ChangePasswordRequest struct {
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Get godoc
// @Summary Get own profile
// @Description Return the authenticated caller's user record
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /user/ [get]
func (h *UserHandler) Get(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	user, err := h.userService.Get(c.Request.Context(), identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change own password
// @Description Verify the current password and store a new hash
// @Tags user
// @Security BearerAuth
// @Accept json
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /user/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), identity.UserID, req.Password, req.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
