package handlers

import (
	"context"
	"net/http"
	"time"

	"boardroom/services/backup"
	"boardroom/services/user"
	"boardroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes operational endpoints restricted to admins.
type AdminHandler struct {
	UserService user.UserService
	BackupSvc   *backup.Service
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(userSvc user.UserService, backupSvc *backup.Service) *AdminHandler {
	return &AdminHandler{UserService: userSvc, BackupSvc: backupSvc}
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// RunBackupHandler handles POST /api/admin/backup: an on-demand run of the
// same job the scheduler triggers nightly.
func (h *AdminHandler) RunBackupHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	res, err := h.BackupSvc.Run(ctx)
	if err != nil {
		utils.GetLogger().Error("On-demand backup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
