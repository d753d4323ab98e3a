package handlers

import (
	"net/http"

	"parlorspace/models"
	"parlorspace/services/identity"
	"parlorspace/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the identity endpoints.
type UserHandler struct {
	Service identity.IdentityService
}

// NewUserHandler creates a UserHandler over the given service.
func NewUserHandler(svc identity.IdentityService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users. Login-or-create: an existing
// email answers 200 with the stored record, a new one 201.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	stored, created, err := h.Service.LoginOrCreate(user)
	if err != nil {
		utils.GetLogger().Error("user registration failed", zap.String("email", user.Email), zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, stored)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// ListUsersHandler handles GET /users?role=&status=.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Query("role"), c.Query("status"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserRoleHandler handles GET /users/:email/role, defaulting to
// "user" when the email is unknown.
func (h *UserHandler) GetUserRoleHandler(c *gin.Context) {
	role, err := h.Service.GetRoleByEmail(c.Param("email"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// UpdateUserRoleHandler handles PATCH /users/:id.
func (h *UserHandler) UpdateUserRoleHandler(c *gin.Context) {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if body.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role is required"})
		return
	}

	if err := h.Service.UpdateRole(c.Param("id"), body.Role); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

// UpdateUserStatusHandler handles PATCH /users/:id/status.
func (h *UserHandler) UpdateUserStatusHandler(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	if err := h.Service.UpdateStatus(c.Param("id"), body.Status); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// DeleteUserHandler handles DELETE /users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(c.Param("id")); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
