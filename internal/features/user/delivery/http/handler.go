package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdifek/fitziz-adminka/internal/features/user/models"
	"github.com/jdifek/fitziz-adminka/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(admin *gin.RouterGroup) {
	users := admin.Group("/users")
	{
		users.GET("", h.List)
		users.PUT("/:telegramId", h.AssignMask)
		users.DELETE("/:telegramId", h.Delete)
	}
}

// @Summary List users
// @Description List bot users, optionally filtered by telegramId substring
// @Tags users
// @Produce json
// @Security AdminToken
// @Param telegramId query string false "telegramId substring filter"
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), c.Query("telegramId"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Assign mask to user
// @Description Update accepts only maskId; telegramId is immutable
// @Tags users
// @Accept json
// @Produce json
// @Security AdminToken
// @Param telegramId path string true "Telegram ID"
// @Param update body models.UserUpdate true "Mask assignment"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /admin/users/{telegramId} [put]
func (h *UserHandler) AssignMask(c *gin.Context) {
	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.AssignMask(c.Request.Context(), c.Param("telegramId"), update.MaskID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Delete user
// @Tags users
// @Produce json
// @Security AdminToken
// @Param telegramId path string true "Telegram ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string
// @Router /admin/users/{telegramId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("telegramId")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}
