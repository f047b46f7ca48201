package user

import (
	"net/http"
	"strconv"

	"vos-erp-service/internal/domain/user"
	"vos-erp-service/internal/pkg/response"
	userService "vos-erp-service/internal/service/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account administration. Every route behind it requires
// an admin session; the password hash and session pointer are never part of a
// response body (both carry json:"-").
type UserHandler struct {
	userService *userService.UserService
	logger      *zap.Logger
}

func NewUserHandler(svc *userService.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: svc,
		logger:      logger,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	var f user.ListFilters
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid list parameters")
		return
	}

	items, total, err := h.userService.ListUsers(c.Request.Context(), &f)
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"users":  items,
		"total":  total,
		"limit":  f.Limit,
		"offset": f.Offset,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	u, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"user": u})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	u, err := h.userService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "user deleted"})
}
