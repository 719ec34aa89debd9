package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/internal/repository"
	"tripplanner/internal/service"
	"tripplanner/pkg/logger"
)

type UserHandler struct {
	svc    *service.UserService
	logger *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: log}
}

func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	profile, err := h.svc.Profile(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "User")
		return
	}
	if err != nil {
		h.log(c).Error("Failed to build user profile", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build user profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) log(c *gin.Context) *zap.Logger {
	return logger.WithTrace(c.Request.Context(), h.logger)
}
