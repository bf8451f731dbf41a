package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worksbill/internal/service"
)

// BackupHandler handles table snapshot endpoints.
type BackupHandler struct {
	backupService service.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Create handles POST /api/v1/backups
// @Summary Create a backup
// @Description Uploads a JSON snapshot of contractors, works, budget and bills and returns a download link valid for one hour.
// @Tags backups
// @Produce json
// @Success 201 {object} Response{data=service.BackupResult}
// @Failure 502 {object} ErrorResponseBody
// @Router /backups [post]
func (h *BackupHandler) Create(c *gin.Context) {
	result, err := h.backupService.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Delete handles DELETE /api/v1/backups?key=
// @Summary Delete a backup
// @Tags backups
// @Produce json
// @Param key query string true "Object key returned by create"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponseBody
// @Router /backups [delete]
func (h *BackupHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key is required")
		return
	}

	if err := h.backupService.Remove(c.Request.Context(), key); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": key})
}
