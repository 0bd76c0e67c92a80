package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"teamadmin-service/internal/store"
	"teamadmin-service/pkg/config"
	"teamadmin-service/pkg/logger"
	"teamadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BackupHandler serves database backup downloads and restore uploads.
type BackupHandler struct {
	store  *store.Store
	backup config.BackupConfig
}

func NewBackupHandler(s *store.Store, backup config.BackupConfig) *BackupHandler {
	return &BackupHandler{store: s, backup: backup}
}

// Download handles GET /backup. The snapshot stays in the backup
// directory after it has been streamed.
func (h *BackupHandler) Download(c echo.Context) error {
	log := logger.FromContext(c)

	path, err := h.store.Snapshot(h.backup.Dir)
	if err != nil {
		return storeError(c, err)
	}

	prometheus.BackupCounter.Inc()
	log.Info("Database backup created", zap.String("path", path))
	return c.Attachment(path, filepath.Base(path))
}

// Restore handles POST /restore. The uploaded file is spooled to the
// upload directory, swapped in as the new backing database, and removed
// afterwards whether or not the restore succeeded.
func (h *BackupHandler) Restore(c echo.Context) error {
	log := logger.FromContext(c)

	fileHeader, err := c.FormFile("database")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No file uploaded"})
	}

	uploadPath, err := h.saveUpload(fileHeader)
	if err != nil {
		log.Error("Failed to save uploaded database", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to restore database"})
	}
	defer os.Remove(uploadPath)

	if err := h.store.Restore(uploadPath); err != nil {
		log.Error("Database restore failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to restore database"})
	}

	prometheus.RestoreCounter.Inc()
	log.Info("Database restored", zap.String("upload", fileHeader.Filename))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Database restored successfully",
	})
}

// saveUpload spools the multipart upload into the upload directory under
// a timestamped name and returns its path.
func (h *BackupHandler) saveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.backup.UploadDir, 0o755); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst := filepath.Join(h.backup.UploadDir,
		fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename)))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	if err := out.Sync(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}
